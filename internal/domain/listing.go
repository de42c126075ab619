package domain

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PerPageChoices are the only accepted page sizes. Anything else degrades to
// DefaultPerPage rather than erroring.
var PerPageChoices = []int{10, 25, 50, 100}

const DefaultPerPage = 10

// ListQuery carries the raw listing parameters for one request: free-text
// search, sort key and direction, pagination, and the caller's current view
// mode (echoed back so list controls re-render consistently).
type ListQuery struct {
	Search    string
	SortField string
	SortDir   SortDirection
	Page      int
	PerPage   int
	View      string
}

// Normalize degrades invalid parameters to safe defaults: unknown per_page
// becomes DefaultPerPage, page below one becomes one, and anything but "desc"
// sorts ascending. Sort-key validation happens against each entity's allow-list
// in the repository, where the column mapping lives.
func (q *ListQuery) Normalize() {
	valid := false
	for _, c := range PerPageChoices {
		if q.PerPage == c {
			valid = true
			break
		}
	}
	if !valid {
		q.PerPage = DefaultPerPage
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.SortDir != SortDesc {
		q.SortDir = SortAsc
	}
	if q.View == "" {
		q.View = "table"
	}
}

// PageMeta describes one page of a listing result together with the effective
// query parameters after normalization.
type PageMeta struct {
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int           `json:"total_pages"`
	Search     string        `json:"search"`
	SortField  string        `json:"sort_field"`
	SortDir    SortDirection `json:"sort_dir"`
	View       string        `json:"view"`
}

// NewPageMeta clamps the requested page into [1, totalPages] and fills the
// metadata echo. A page past the end resolves to the last page, matching
// standard paginator semantics.
func NewPageMeta(q ListQuery, totalCount int) PageMeta {
	totalPages := (totalCount + q.PerPage - 1) / q.PerPage
	if totalPages < 1 {
		totalPages = 1
	}
	page := q.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageMeta{
		TotalCount: totalCount,
		Page:       page,
		PerPage:    q.PerPage,
		TotalPages: totalPages,
		Search:     q.Search,
		SortField:  q.SortField,
		SortDir:    q.SortDir,
		View:       q.View,
	}
}
