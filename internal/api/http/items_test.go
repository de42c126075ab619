package http

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/export"
	"rentalhub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemList(t *testing.T) {
	var gotHub uuid.UUID
	var gotQuery domain.ListQuery
	items := &fakeItemService{
		list: func(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, domain.PageMeta, error) {
			gotHub = hubID
			gotQuery = q
			q.Normalize()
			return nil, domain.NewPageMeta(q, 0), nil
		},
	}
	env := newTestEnv(t, items, nil, nil, nil, nil)

	t.Run("Query parameters reach the service normalized", func(t *testing.T) {
		rec := env.get(t, "/rental_items/?q=drill&sort=name&dir=desc&page=2&per_page=25")
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, env.hubID, gotHub)
		assert.Equal(t, "drill", gotQuery.Search)
		assert.Equal(t, "name", gotQuery.SortField)
		assert.Equal(t, domain.SortDesc, gotQuery.SortDir)
		assert.Equal(t, 25, gotQuery.PerPage)
	})

	t.Run("Empty result renders an empty array, not null", func(t *testing.T) {
		rec := env.get(t, "/rental_items/")
		require.Equal(t, http.StatusOK, rec.Code)

		var payload struct {
			RentalItems []domain.RentalItem `json:"rental_items"`
			Meta        domain.PageMeta     `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.NotNil(t, payload.RentalItems)
		assert.Len(t, payload.RentalItems, 0)
		assert.Equal(t, 1, payload.Meta.Page)
		assert.Contains(t, rec.Body.String(), `"rental_items":[]`)
	})

	t.Run("Unauthenticated request redirects", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rental_items/", nil)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})
}

func TestItemExport(t *testing.T) {
	items := &fakeItemService{
		exportFn: func(ctx context.Context, hubID uuid.UUID, q domain.ListQuery, format export.Format) (*export.Dataset, error) {
			ds := &export.Dataset{
				Filename: "rental_items.csv",
				Headers:  []string{"Code", "Name"},
				Rows:     [][]string{{"DRL-1", "Drill"}, {"LDR-2", "Ladder"}},
			}
			if format == export.FormatExcel {
				ds.Filename = "rental_items.xlsx"
			}
			return ds, nil
		},
	}
	env := newTestEnv(t, items, nil, nil, nil, nil)

	t.Run("CSV download", func(t *testing.T) {
		rec := env.get(t, "/rental_items/?export=csv")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="rental_items.csv"`, rec.Header().Get("Content-Disposition"))

		records, err := csv.NewReader(rec.Body).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"Code", "Name"}, records[0])
	})

	t.Run("Excel download", func(t *testing.T) {
		rec := env.get(t, "/rental_items/?export=excel")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, export.ContentTypeExcel, rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="rental_items.xlsx"`, rec.Header().Get("Content-Disposition"))
		assert.NotEmpty(t, rec.Body.Bytes())
	})
}

func TestItemAdd(t *testing.T) {
	var created service.RentalItemInput
	items := &fakeItemService{
		create: func(ctx context.Context, hubID uuid.UUID, in service.RentalItemInput) (*domain.RentalItem, error) {
			created = in
			item := &domain.RentalItem{Name: in.Name}
			item.ID = uuid.New()
			return item, nil
		},
		list: func(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, domain.PageMeta, error) {
			q.Normalize()
			return nil, domain.NewPageMeta(q, 0), nil
		},
	}
	env := newTestEnv(t, items, nil, nil, nil, nil)

	rec := env.postForm(t, "/rental_items/add/", url.Values{
		"name":           {"Pressure Washer"},
		"code":           {"PW-1"},
		"daily_rate":     {"35.00"},
		"is_available":   {"on"},
		"is_active":      {"true"},
		"quantity_total": {"2"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Pressure Washer", created.Name)
	assert.Equal(t, "35.00", created.DailyRate.StringFixed(2))
	assert.True(t, created.IsAvailable)
	assert.True(t, created.IsActive)
	assert.Equal(t, int32(2), created.QuantityTotal)
	assert.Contains(t, rec.Body.String(), `"rental_items"`)
}

func TestItemBulk(t *testing.T) {
	var gotIDs []uuid.UUID
	var gotAction domain.ItemBulkAction
	bulkCalled := false
	items := &fakeItemService{
		bulk: func(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, action domain.ItemBulkAction) error {
			bulkCalled = true
			gotIDs = ids
			gotAction = action
			return nil
		},
		list: func(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, domain.PageMeta, error) {
			q.Normalize()
			return nil, domain.NewPageMeta(q, 0), nil
		},
	}
	env := newTestEnv(t, items, nil, nil, nil, nil)

	a, b := uuid.New(), uuid.New()

	t.Run("Valid action with mixed ids", func(t *testing.T) {
		bulkCalled = false
		rec := env.postForm(t, "/rental_items/bulk/", url.Values{
			"action": {"deactivate"},
			"ids":    {a.String() + ",junk," + b.String()},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, bulkCalled)
		assert.Equal(t, []uuid.UUID{a, b}, gotIDs)
		assert.Equal(t, domain.ItemBulkDeactivate, gotAction)
	})

	t.Run("Unknown action skips the service and re-renders", func(t *testing.T) {
		bulkCalled = false
		rec := env.postForm(t, "/rental_items/bulk/", url.Values{
			"action": {"archive"},
			"ids":    {a.String()},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, bulkCalled)
		assert.Contains(t, rec.Body.String(), `"rental_items"`)
	})
}

func TestItemDetail(t *testing.T) {
	itemID := uuid.New()
	items := &fakeItemService{
		detail: func(ctx context.Context, hubID, id uuid.UUID) (*service.ItemDetail, error) {
			if id != itemID {
				return nil, domain.ErrNotFound
			}
			item := &domain.RentalItem{Name: "Generator"}
			item.ID = id
			return &service.ItemDetail{
				Item:           item,
				Blackouts:      []domain.RentalBlackout{},
				CurrentRentals: []domain.Rental{},
			}, nil
		},
	}
	env := newTestEnv(t, items, nil, nil, nil, nil)

	t.Run("Success", func(t *testing.T) {
		rec := env.get(t, "/items/"+itemID.String()+"/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Generator"`)
		assert.Contains(t, rec.Body.String(), `"blackouts"`)
	})

	t.Run("Malformed id is indistinguishable from missing", func(t *testing.T) {
		rec := env.get(t, "/items/not-a-uuid/")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"not found"`)
	})

	t.Run("Unknown id", func(t *testing.T) {
		rec := env.get(t, "/items/"+uuid.NewString()+"/")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
