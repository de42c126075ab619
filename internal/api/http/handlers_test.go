package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"rentalhub-backend/internal/assistant"
	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/export"
	"rentalhub-backend/internal/security"
	"rentalhub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Fakes implement only what each test exercises; untouched methods fall
// through to the embedded nil interface and would panic, which is the point.

type fakeItemService struct {
	service.RentalItemService

	list     func(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, domain.PageMeta, error)
	exportFn func(ctx context.Context, hubID uuid.UUID, q domain.ListQuery, format export.Format) (*export.Dataset, error)
	create   func(ctx context.Context, hubID uuid.UUID, in service.RentalItemInput) (*domain.RentalItem, error)
	bulk     func(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, action domain.ItemBulkAction) error
	detail   func(ctx context.Context, hubID, id uuid.UUID) (*service.ItemDetail, error)
	deleteFn func(ctx context.Context, hubID, id uuid.UUID) error
	toggleFn func(ctx context.Context, hubID, id uuid.UUID) (*domain.RentalItem, error)
}

func (f *fakeItemService) List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, domain.PageMeta, error) {
	return f.list(ctx, hubID, q)
}

func (f *fakeItemService) Export(ctx context.Context, hubID uuid.UUID, q domain.ListQuery, format export.Format) (*export.Dataset, error) {
	return f.exportFn(ctx, hubID, q, format)
}

func (f *fakeItemService) Create(ctx context.Context, hubID uuid.UUID, in service.RentalItemInput) (*domain.RentalItem, error) {
	return f.create(ctx, hubID, in)
}

func (f *fakeItemService) Bulk(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, action domain.ItemBulkAction) error {
	return f.bulk(ctx, hubID, ids, action)
}

func (f *fakeItemService) Detail(ctx context.Context, hubID, id uuid.UUID) (*service.ItemDetail, error) {
	return f.detail(ctx, hubID, id)
}

func (f *fakeItemService) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	return f.deleteFn(ctx, hubID, id)
}

func (f *fakeItemService) ToggleActive(ctx context.Context, hubID, id uuid.UUID) (*domain.RentalItem, error) {
	return f.toggleFn(ctx, hubID, id)
}

type fakeRentalService struct {
	service.RentalService

	list     func(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.Rental, domain.PageMeta, error)
	exportFn func(ctx context.Context, hubID uuid.UUID, q domain.ListQuery, format export.Format) (*export.Dataset, error)
	create   func(ctx context.Context, hubID uuid.UUID, in service.RentalInput) (*domain.Rental, error)
	bulk     func(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, action domain.RentalBulkAction) error
}

func (f *fakeRentalService) List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.Rental, domain.PageMeta, error) {
	return f.list(ctx, hubID, q)
}

func (f *fakeRentalService) Export(ctx context.Context, hubID uuid.UUID, q domain.ListQuery, format export.Format) (*export.Dataset, error) {
	return f.exportFn(ctx, hubID, q, format)
}

func (f *fakeRentalService) Create(ctx context.Context, hubID uuid.UUID, in service.RentalInput) (*domain.Rental, error) {
	return f.create(ctx, hubID, in)
}

func (f *fakeRentalService) Bulk(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, action domain.RentalBulkAction) error {
	return f.bulk(ctx, hubID, ids, action)
}

type fakeBlackoutService struct {
	service.BlackoutService

	add         func(ctx context.Context, hubID, itemID uuid.UUID, in service.BlackoutInput) (*domain.RentalBlackout, error)
	deleteFn    func(ctx context.Context, hubID, itemID, blackoutID uuid.UUID) error
	listForItem func(ctx context.Context, hubID, itemID uuid.UUID) ([]domain.RentalBlackout, error)
}

func (f *fakeBlackoutService) Add(ctx context.Context, hubID, itemID uuid.UUID, in service.BlackoutInput) (*domain.RentalBlackout, error) {
	return f.add(ctx, hubID, itemID, in)
}

func (f *fakeBlackoutService) Delete(ctx context.Context, hubID, itemID, blackoutID uuid.UUID) error {
	return f.deleteFn(ctx, hubID, itemID, blackoutID)
}

func (f *fakeBlackoutService) ListForItem(ctx context.Context, hubID, itemID uuid.UUID) ([]domain.RentalBlackout, error) {
	return f.listForItem(ctx, hubID, itemID)
}

type fakeDashboardService struct {
	summary func(ctx context.Context, hubID uuid.UUID) (*service.DashboardSummary, error)
}

func (f *fakeDashboardService) Summary(ctx context.Context, hubID uuid.UUID) (*service.DashboardSummary, error) {
	return f.summary(ctx, hubID)
}

type testEnv struct {
	router *mux.Router
	tokens security.TokenManager
	hubID  uuid.UUID
	userID uuid.UUID
	perms  []string
}

func newTestEnv(t *testing.T, items service.RentalItemService, rentals service.RentalService, blackouts service.BlackoutService, dashboard service.DashboardService, registry *assistant.Registry) *testEnv {
	t.Helper()
	if items == nil {
		items = &fakeItemService{}
	}
	if rentals == nil {
		rentals = &fakeRentalService{}
	}
	if blackouts == nil {
		blackouts = &fakeBlackoutService{}
	}
	if dashboard == nil {
		dashboard = &fakeDashboardService{}
	}
	if registry == nil {
		registry = assistant.NewRegistry()
	}

	tokens := security.NewTokenManager(testSecret)
	router := NewRouter(
		NewAuthMiddleware(tokens, "rentalhub_session", "/login"),
		NewDashboardHandler(dashboard),
		NewItemHandler(items),
		NewRentalHandler(rentals),
		NewBlackoutHandler(blackouts),
		NewAssistantHandler(registry),
	)
	return &testEnv{
		router: router,
		tokens: tokens,
		hubID:  uuid.New(),
		userID: uuid.New(),
		perms:  []string{"rentals.view_rentalitem", "rentals.view_rental"},
	}
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(sessionCookie(t, e.tokens, e.userID, e.hubID, e.perms))
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(sessionCookie(t, e.tokens, e.userID, e.hubID, e.perms))
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) postJSON(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, e.tokens, e.userID, e.hubID, e.perms))
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}
