package service

import (
	"context"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/export"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Every operation takes the caller's hub ID explicitly. Nothing in this layer
// reads tenant identity from ambient state.

type DashboardSummary struct {
	TotalRentalItems int `json:"total_rental_items"`
	TotalRentals     int `json:"total_rentals"`
}

type DashboardService interface {
	Summary(ctx context.Context, hubID uuid.UUID) (*DashboardSummary, error)
}

// RentalItemInput carries the writable fields of a rental item.
type RentalItemInput struct {
	Name          string
	Code          string
	Description   string
	DailyRate     decimal.Decimal
	IsAvailable   bool
	IsActive      bool
	Category      string
	Location      string
	QuantityTotal int32
}

// ItemDetail is the item page payload: the item itself, its blackout windows
// newest-start-first, and its latest active or reserved rentals.
type ItemDetail struct {
	Item           *domain.RentalItem      `json:"item"`
	Blackouts      []domain.RentalBlackout `json:"blackouts"`
	CurrentRentals []domain.Rental         `json:"current_rentals"`
}

type RentalItemService interface {
	List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, domain.PageMeta, error)
	Export(ctx context.Context, hubID uuid.UUID, q domain.ListQuery, format export.Format) (*export.Dataset, error)
	Get(ctx context.Context, hubID, id uuid.UUID) (*domain.RentalItem, error)
	Detail(ctx context.Context, hubID, id uuid.UUID) (*ItemDetail, error)
	Create(ctx context.Context, hubID uuid.UUID, in RentalItemInput) (*domain.RentalItem, error)
	Update(ctx context.Context, hubID, id uuid.UUID, in RentalItemInput) (*domain.RentalItem, error)
	Delete(ctx context.Context, hubID, id uuid.UUID) error
	ToggleActive(ctx context.Context, hubID, id uuid.UUID) (*domain.RentalItem, error)
	Bulk(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, action domain.ItemBulkAction) error
	ListActive(ctx context.Context, hubID uuid.UUID, isAvailable *bool, category string) ([]domain.RentalItem, error)
	ListAllRecords(ctx context.Context, hubID uuid.UUID) ([]domain.RentalItem, error)
}

// RentalInput carries the writable fields of a rental agreement. Status is
// free-form within the five-value enumeration; no transition graph is applied.
type RentalInput struct {
	Reference       string
	ItemID          uuid.UUID
	CustomerName    string
	CustomerID      *uuid.UUID
	Status          domain.RentalStatus
	StartDate       string
	EndDate         string
	Total           decimal.Decimal
	DepositAmount   decimal.Decimal
	DepositPaid     bool
	DepositReturned bool
	ConditionOut    string
	ConditionIn     string
	Notes           string
}

type RentalService interface {
	List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.Rental, domain.PageMeta, error)
	Export(ctx context.Context, hubID uuid.UUID, q domain.ListQuery, format export.Format) (*export.Dataset, error)
	Get(ctx context.Context, hubID, id uuid.UUID) (*domain.Rental, error)
	Create(ctx context.Context, hubID uuid.UUID, in RentalInput) (*domain.Rental, error)
	Update(ctx context.Context, hubID, id uuid.UUID, in RentalInput) (*domain.Rental, error)
	Delete(ctx context.Context, hubID, id uuid.UUID) error
	Bulk(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, action domain.RentalBulkAction) error
	ListRecent(ctx context.Context, hubID uuid.UUID, status domain.RentalStatus, limit int) ([]domain.Rental, error)
	ListAllRecords(ctx context.Context, hubID uuid.UUID) ([]domain.Rental, error)
}

type BlackoutInput struct {
	StartDate string
	EndDate   string
	Reason    string
}

type BlackoutService interface {
	Add(ctx context.Context, hubID, itemID uuid.UUID, in BlackoutInput) (*domain.RentalBlackout, error)
	Delete(ctx context.Context, hubID, itemID, blackoutID uuid.UUID) error
	ListForItem(ctx context.Context, hubID, itemID uuid.UUID) ([]domain.RentalBlackout, error)
}
