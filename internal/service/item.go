package service

import (
	"context"
	"strconv"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/export"
	"rentalhub-backend/internal/logger"
	"rentalhub-backend/internal/repository"

	"github.com/google/uuid"
)

type rentalItemService struct {
	itemRepo     repository.RentalItemRepository
	rentalRepo   repository.RentalRepository
	blackoutRepo repository.BlackoutRepository
}

func NewRentalItemService(itemRepo repository.RentalItemRepository, rentalRepo repository.RentalRepository, blackoutRepo repository.BlackoutRepository) RentalItemService {
	return &rentalItemService{
		itemRepo:     itemRepo,
		rentalRepo:   rentalRepo,
		blackoutRepo: blackoutRepo,
	}
}

func (s *rentalItemService) List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.RentalItem, domain.PageMeta, error) {
	return s.itemRepo.List(ctx, hubID, q)
}

// Item export columns mirror the list table. Order matters: export rows must
// match the unpaginated sorted query result.
var itemExportHeaders = []string{"Code", "Name", "Is Available", "Is Active", "Daily Rate", "Description"}

func (s *rentalItemService) Export(ctx context.Context, hubID uuid.UUID, q domain.ListQuery, format export.Format) (*export.Dataset, error) {
	items, err := s.itemRepo.ListForExport(ctx, hubID, q)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Code,
			it.Name,
			strconv.FormatBool(it.IsAvailable),
			strconv.FormatBool(it.IsActive),
			it.DailyRate.StringFixed(2),
			it.Description,
		})
	}
	filename := "rental_items.csv"
	if format == export.FormatExcel {
		filename = "rental_items.xlsx"
	}
	return &export.Dataset{Filename: filename, Headers: itemExportHeaders, Rows: rows}, nil
}

func (s *rentalItemService) Get(ctx context.Context, hubID, id uuid.UUID) (*domain.RentalItem, error) {
	return s.itemRepo.GetByID(ctx, hubID, id)
}

func (s *rentalItemService) Detail(ctx context.Context, hubID, id uuid.UUID) (*ItemDetail, error) {
	item, err := s.itemRepo.GetByID(ctx, hubID, id)
	if err != nil {
		return nil, err
	}
	blackouts, err := s.blackoutRepo.ListForItem(ctx, hubID, id)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.ListCurrentForItem(ctx, hubID, id, 10)
	if err != nil {
		return nil, err
	}
	return &ItemDetail{Item: item, Blackouts: blackouts, CurrentRentals: rentals}, nil
}

func (s *rentalItemService) Create(ctx context.Context, hubID uuid.UUID, in RentalItemInput) (*domain.RentalItem, error) {
	item := &domain.RentalItem{
		Name:          in.Name,
		Code:          in.Code,
		Description:   in.Description,
		DailyRate:     in.DailyRate,
		IsAvailable:   in.IsAvailable,
		IsActive:      in.IsActive,
		Category:      in.Category,
		Location:      in.Location,
		QuantityTotal: in.QuantityTotal,
	}
	item.HubID = hubID
	if item.QuantityTotal < 1 {
		item.QuantityTotal = 1
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	logger.Info("rental item created", "hub_id", hubID, "item_id", item.ID, "name", item.Name)
	return item, nil
}

func (s *rentalItemService) Update(ctx context.Context, hubID, id uuid.UUID, in RentalItemInput) (*domain.RentalItem, error) {
	item, err := s.itemRepo.GetByID(ctx, hubID, id)
	if err != nil {
		return nil, err
	}
	item.Name = in.Name
	item.Code = in.Code
	item.Description = in.Description
	item.DailyRate = in.DailyRate
	item.IsAvailable = in.IsAvailable
	item.IsActive = in.IsActive
	item.Category = in.Category
	item.Location = in.Location
	item.QuantityTotal = in.QuantityTotal
	if item.QuantityTotal < 1 {
		item.QuantityTotal = 1
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *rentalItemService) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	return s.itemRepo.SoftDelete(ctx, hubID, id)
}

func (s *rentalItemService) ToggleActive(ctx context.Context, hubID, id uuid.UUID) (*domain.RentalItem, error) {
	item, err := s.itemRepo.GetByID(ctx, hubID, id)
	if err != nil {
		return nil, err
	}
	item.IsActive = !item.IsActive
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Bulk applies one action to every id that resolves within the hub's
// non-deleted scope; ids that don't resolve are silently skipped.
func (s *rentalItemService) Bulk(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, action domain.ItemBulkAction) error {
	switch action {
	case domain.ItemBulkActivate:
		return s.itemRepo.BulkSetActive(ctx, hubID, ids, true)
	case domain.ItemBulkDeactivate:
		return s.itemRepo.BulkSetActive(ctx, hubID, ids, false)
	case domain.ItemBulkDelete:
		return s.itemRepo.BulkSoftDelete(ctx, hubID, ids)
	}
	return nil
}

func (s *rentalItemService) ListActive(ctx context.Context, hubID uuid.UUID, isAvailable *bool, category string) ([]domain.RentalItem, error) {
	return s.itemRepo.ListActive(ctx, hubID, isAvailable, category)
}

func (s *rentalItemService) ListAllRecords(ctx context.Context, hubID uuid.UUID) ([]domain.RentalItem, error) {
	return s.itemRepo.ListAllRecords(ctx, hubID)
}
