package service

import (
	"context"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/export"
	"rentalhub-backend/internal/logger"
	"rentalhub-backend/internal/repository"

	"github.com/google/uuid"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	itemRepo   repository.RentalItemRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, itemRepo repository.RentalItemRepository) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		itemRepo:   itemRepo,
	}
}

func (s *rentalService) List(ctx context.Context, hubID uuid.UUID, q domain.ListQuery) ([]domain.Rental, domain.PageMeta, error) {
	return s.rentalRepo.List(ctx, hubID, q)
}

var rentalExportHeaders = []string{"Reference", "RentalItem", "Status", "Total", "Customer Name", "Start Date"}

func (s *rentalService) Export(ctx context.Context, hubID uuid.UUID, q domain.ListQuery, format export.Format) (*export.Dataset, error) {
	rentals, err := s.rentalRepo.ListForExport(ctx, hubID, q)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(rentals))
	for _, rt := range rentals {
		rows = append(rows, []string{
			rt.Reference,
			rt.ItemName,
			string(rt.Status),
			rt.Total.StringFixed(2),
			rt.CustomerName,
			rt.StartDate,
		})
	}
	filename := "rentals.csv"
	if format == export.FormatExcel {
		filename = "rentals.xlsx"
	}
	return &export.Dataset{Filename: filename, Headers: rentalExportHeaders, Rows: rows}, nil
}

func (s *rentalService) Get(ctx context.Context, hubID, id uuid.UUID) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, hubID, id)
}

func (s *rentalService) Create(ctx context.Context, hubID uuid.UUID, in RentalInput) (*domain.Rental, error) {
	// The item must exist within the caller's hub; everything else, including
	// date ordering and status, is accepted as supplied.
	item, err := s.itemRepo.GetByID(ctx, hubID, in.ItemID)
	if err != nil {
		return nil, err
	}
	rental := &domain.Rental{
		Reference:       in.Reference,
		ItemID:          item.ID,
		ItemName:        item.Name,
		CustomerName:    in.CustomerName,
		CustomerID:      in.CustomerID,
		Status:          in.Status,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Total:           in.Total,
		DepositAmount:   in.DepositAmount,
		DepositPaid:     in.DepositPaid,
		DepositReturned: in.DepositReturned,
		ConditionOut:    in.ConditionOut,
		ConditionIn:     in.ConditionIn,
		Notes:           in.Notes,
	}
	rental.HubID = hubID
	if rental.Status == "" {
		rental.Status = domain.RentalStatusReserved
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	logger.Info("rental created", "hub_id", hubID, "rental_id", rental.ID, "item_id", rental.ItemID)
	return rental, nil
}

func (s *rentalService) Update(ctx context.Context, hubID, id uuid.UUID, in RentalInput) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, hubID, id)
	if err != nil {
		return nil, err
	}
	if in.ItemID != uuid.Nil && in.ItemID != rental.ItemID {
		item, err := s.itemRepo.GetByID(ctx, hubID, in.ItemID)
		if err != nil {
			return nil, err
		}
		rental.ItemID = item.ID
		rental.ItemName = item.Name
	}
	rental.Reference = in.Reference
	rental.CustomerName = in.CustomerName
	rental.CustomerID = in.CustomerID
	if in.Status != "" {
		rental.Status = in.Status
	}
	rental.StartDate = in.StartDate
	rental.EndDate = in.EndDate
	rental.Total = in.Total
	rental.DepositAmount = in.DepositAmount
	rental.DepositPaid = in.DepositPaid
	rental.DepositReturned = in.DepositReturned
	rental.ConditionOut = in.ConditionOut
	rental.ConditionIn = in.ConditionIn
	rental.Notes = in.Notes
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	return s.rentalRepo.SoftDelete(ctx, hubID, id)
}

func (s *rentalService) Bulk(ctx context.Context, hubID uuid.UUID, ids []uuid.UUID, action domain.RentalBulkAction) error {
	switch action {
	case domain.RentalBulkDelete:
		return s.rentalRepo.BulkSoftDelete(ctx, hubID, ids)
	}
	return nil
}

func (s *rentalService) ListRecent(ctx context.Context, hubID uuid.UUID, status domain.RentalStatus, limit int) ([]domain.Rental, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.rentalRepo.ListRecent(ctx, hubID, status, limit)
}

func (s *rentalService) ListAllRecords(ctx context.Context, hubID uuid.UUID) ([]domain.Rental, error) {
	return s.rentalRepo.ListAllRecords(ctx, hubID)
}
