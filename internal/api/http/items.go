package http

import (
	"net/http"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/export"
	"rentalhub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"strconv"
)

type ItemHandler struct {
	items service.RentalItemService
}

func NewItemHandler(items service.RentalItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

func pathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func itemInputFromForm(r *http.Request) (service.RentalItemInput, error) {
	rate := r.PostFormValue("daily_rate")
	if rate == "" {
		rate = "0"
	}
	dailyRate, err := decimal.NewFromString(rate)
	if err != nil {
		return service.RentalItemInput{}, err
	}
	quantity, _ := strconv.Atoi(r.PostFormValue("quantity_total"))
	return service.RentalItemInput{
		Name:          r.PostFormValue("name"),
		Code:          r.PostFormValue("code"),
		Description:   r.PostFormValue("description"),
		DailyRate:     dailyRate,
		IsAvailable:   formBool(r, "is_available"),
		IsActive:      formBool(r, "is_active"),
		Category:      r.PostFormValue("category"),
		Location:      r.PostFormValue("location"),
		QuantityTotal: int32(quantity),
	}, nil
}

func (h *ItemHandler) respondList(w http.ResponseWriter, r *http.Request, hubID uuid.UUID, q domain.ListQuery) {
	items, meta, err := h.items.List(r.Context(), hubID, q)
	if err != nil {
		handleError(w, err)
		return
	}
	if items == nil {
		items = []domain.RentalItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rental_items": items, "meta": meta})
}

// List handles GET /rental_items/. An export=csv|excel parameter short-circuits
// to a file download of the unpaginated filtered result.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	q := parseListQuery(r)

	if format, ok := export.ParseFormat(r.URL.Query().Get("export")); ok {
		ds, err := h.items.Export(r.Context(), rc.HubID, q, format)
		if err != nil {
			handleError(w, err)
			return
		}
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", `attachment; filename="`+ds.Filename+`"`)
		if err := ds.Write(w, format); err != nil {
			handleError(w, err)
		}
		return
	}

	h.respondList(w, r, rc.HubID, q)
}

func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	in, err := itemInputFromForm(r)
	if err != nil {
		handleError(w, err)
		return
	}
	if _, err := h.items.Create(r.Context(), rc.HubID, in); err != nil {
		handleError(w, err)
		return
	}
	h.respondList(w, r, rc.HubID, domain.ListQuery{})
}

func (h *ItemHandler) Edit(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		handleError(w, domain.ErrNotFound)
		return
	}
	in, err := itemInputFromForm(r)
	if err != nil {
		handleError(w, err)
		return
	}
	if _, err := h.items.Update(r.Context(), rc.HubID, id, in); err != nil {
		handleError(w, err)
		return
	}
	h.respondList(w, r, rc.HubID, domain.ListQuery{})
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		handleError(w, domain.ErrNotFound)
		return
	}
	if err := h.items.Delete(r.Context(), rc.HubID, id); err != nil {
		handleError(w, err)
		return
	}
	h.respondList(w, r, rc.HubID, domain.ListQuery{})
}

func (h *ItemHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		handleError(w, domain.ErrNotFound)
		return
	}
	if _, err := h.items.ToggleActive(r.Context(), rc.HubID, id); err != nil {
		handleError(w, err)
		return
	}
	h.respondList(w, r, rc.HubID, domain.ListQuery{})
}

// Bulk applies one action to a comma-joined id list. Unknown actions and ids
// that don't resolve are silently ignored.
func (h *ItemHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	ids := parseIDList(r.PostFormValue("ids"))
	if action, ok := domain.ParseItemBulkAction(r.PostFormValue("action")); ok {
		if err := h.items.Bulk(r.Context(), rc.HubID, ids, action); err != nil {
			handleError(w, err)
			return
		}
	}
	h.respondList(w, r, rc.HubID, domain.ListQuery{})
}

// Detail handles GET /items/{id}/: the item, its blackouts and its latest
// active or reserved rentals.
func (h *ItemHandler) Detail(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		handleError(w, domain.ErrNotFound)
		return
	}
	detail, err := h.items.Detail(r.Context(), rc.HubID, id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
