package repository

import (
	"context"

	"rentalhub-backend/internal/domain"

	"github.com/google/uuid"
)

// Single-record reads and writes are always scoped to a hub and to non-deleted
// rows. ListAllRecords is the administrative recovery path and is the only read
// that bypasses the deleted filter.

type RentalItemRepository interface {
	Create(ctx context.Context, item *domain.RentalItem) error
	GetByID(ctx context.Context, hubID, id uuid.UUID) (*domain.RentalItem, error)
	Update(ctx context.Context, item *domain.RentalItem) error
	SoftDelete(ctx context.Context, hubID, id uuid.UUID) error
	List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, domain.PageMeta, error)
	ListForExport(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, error)
	ListAllRecords(ctx context.Context, hubID uuid.UUID) ([]domain.RentalItem, error)
	ListActive(ctx context.Context, hubID uuid.UUID, isAvailable *bool, category string) ([]domain.RentalItem, error)
	BulkSetActive(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, active bool) error
	BulkSoftDelete(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID) error
	Count(ctx context.Context, hubID uuid.UUID) (int, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, hubID, id uuid.UUID) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	SoftDelete(ctx context.Context, hubID, id uuid.UUID) error
	List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.Rental, domain.PageMeta, error)
	ListForExport(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.Rental, error)
	ListAllRecords(ctx context.Context, hubID uuid.UUID) ([]domain.Rental, error)
	ListRecent(ctx context.Context, hubID uuid.UUID, status domain.RentalStatus, limit int) ([]domain.Rental, error)
	ListCurrentForItem(ctx context.Context, hubID, itemID uuid.UUID, limit int) ([]domain.Rental, error)
	BulkSoftDelete(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID) error
	Count(ctx context.Context, hubID uuid.UUID) (int, error)
}

type BlackoutRepository interface {
	Create(ctx context.Context, blackout *domain.RentalBlackout) error
	GetByID(ctx context.Context, hubID, itemID, id uuid.UUID) (*domain.RentalBlackout, error)
	SoftDelete(ctx context.Context, hubID, itemID, id uuid.UUID) error
	ListForItem(ctx context.Context, hubID, itemID uuid.UUID) ([]domain.RentalBlackout, error)
}
