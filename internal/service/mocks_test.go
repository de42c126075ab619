package service

import (
	"context"

	"rentalhub-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, item *domain.RentalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, hubID, id uuid.UUID) (*domain.RentalItem, error) {
	args := m.Called(ctx, hubID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalItem), args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, item *domain.RentalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepo) SoftDelete(ctx context.Context, hubID, id uuid.UUID) error {
	args := m.Called(ctx, hubID, id)
	return args.Error(0)
}

func (m *mockItemRepo) List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, domain.PageMeta, error) {
	args := m.Called(ctx, hubID, q)
	var items []domain.RentalItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.RentalItem)
	}
	return items, args.Get(1).(domain.PageMeta), args.Error(2)
}

func (m *mockItemRepo) ListForExport(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, error) {
	args := m.Called(ctx, hubID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}

func (m *mockItemRepo) ListAllRecords(ctx context.Context, hubID uuid.UUID) ([]domain.RentalItem, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}

func (m *mockItemRepo) ListActive(ctx context.Context, hubID uuid.UUID, isAvailable *bool, category string) ([]domain.RentalItem, error) {
	args := m.Called(ctx, hubID, isAvailable, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}

func (m *mockItemRepo) BulkSetActive(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, active bool) error {
	args := m.Called(ctx, hubID, ids, active)
	return args.Error(0)
}

func (m *mockItemRepo) BulkSoftDelete(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID) error {
	args := m.Called(ctx, hubID, ids)
	return args.Error(0)
}

func (m *mockItemRepo) Count(ctx context.Context, hubID uuid.UUID) (int, error) {
	args := m.Called(ctx, hubID)
	return args.Int(0), args.Error(1)
}

type mockRentalRepo struct {
	mock.Mock
}

func (m *mockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *mockRentalRepo) GetByID(ctx context.Context, hubID, id uuid.UUID) (*domain.Rental, error) {
	args := m.Called(ctx, hubID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *mockRentalRepo) SoftDelete(ctx context.Context, hubID, id uuid.UUID) error {
	args := m.Called(ctx, hubID, id)
	return args.Error(0)
}

func (m *mockRentalRepo) List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.Rental, domain.PageMeta, error) {
	args := m.Called(ctx, hubID, q)
	var rentals []domain.Rental
	if args.Get(0) != nil {
		rentals = args.Get(0).([]domain.Rental)
	}
	return rentals, args.Get(1).(domain.PageMeta), args.Error(2)
}

func (m *mockRentalRepo) ListForExport(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.Rental, error) {
	args := m.Called(ctx, hubID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *mockRentalRepo) ListAllRecords(ctx context.Context, hubID uuid.UUID) ([]domain.Rental, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *mockRentalRepo) ListRecent(ctx context.Context, hubID uuid.UUID, status domain.RentalStatus, limit int) ([]domain.Rental, error) {
	args := m.Called(ctx, hubID, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *mockRentalRepo) ListCurrentForItem(ctx context.Context, hubID, itemID uuid.UUID, limit int) ([]domain.Rental, error) {
	args := m.Called(ctx, hubID, itemID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *mockRentalRepo) BulkSoftDelete(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID) error {
	args := m.Called(ctx, hubID, ids)
	return args.Error(0)
}

func (m *mockRentalRepo) Count(ctx context.Context, hubID uuid.UUID) (int, error) {
	args := m.Called(ctx, hubID)
	return args.Int(0), args.Error(1)
}

type mockBlackoutRepo struct {
	mock.Mock
}

func (m *mockBlackoutRepo) Create(ctx context.Context, blackout *domain.RentalBlackout) error {
	args := m.Called(ctx, blackout)
	return args.Error(0)
}

func (m *mockBlackoutRepo) GetByID(ctx context.Context, hubID, itemID, id uuid.UUID) (*domain.RentalBlackout, error) {
	args := m.Called(ctx, hubID, itemID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalBlackout), args.Error(1)
}

func (m *mockBlackoutRepo) SoftDelete(ctx context.Context, hubID, itemID, id uuid.UUID) error {
	args := m.Called(ctx, hubID, itemID, id)
	return args.Error(0)
}

func (m *mockBlackoutRepo) ListForItem(ctx context.Context, hubID, itemID uuid.UUID) ([]domain.RentalBlackout, error) {
	args := m.Called(ctx, hubID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalBlackout), args.Error(1)
}
