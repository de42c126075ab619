package service

import (
	"context"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/repository"

	"github.com/google/uuid"
)

type blackoutService struct {
	blackoutRepo repository.BlackoutRepository
	itemRepo     repository.RentalItemRepository
}

func NewBlackoutService(blackoutRepo repository.BlackoutRepository, itemRepo repository.RentalItemRepository) BlackoutService {
	return &blackoutService{
		blackoutRepo: blackoutRepo,
		itemRepo:     itemRepo,
	}
}

// Add records an unavailability window for the item. Ranges are stored as
// given; overlaps with other blackouts or rentals are not checked.
func (s *blackoutService) Add(ctx context.Context, hubID, itemID uuid.UUID, in BlackoutInput) (*domain.RentalBlackout, error) {
	item, err := s.itemRepo.GetByID(ctx, hubID, itemID)
	if err != nil {
		return nil, err
	}
	blackout := &domain.RentalBlackout{
		ItemID:    item.ID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    in.Reason,
	}
	blackout.HubID = hubID
	if err := s.blackoutRepo.Create(ctx, blackout); err != nil {
		return nil, err
	}
	return blackout, nil
}

func (s *blackoutService) Delete(ctx context.Context, hubID, itemID, blackoutID uuid.UUID) error {
	if _, err := s.itemRepo.GetByID(ctx, hubID, itemID); err != nil {
		return err
	}
	return s.blackoutRepo.SoftDelete(ctx, hubID, itemID, blackoutID)
}

func (s *blackoutService) ListForItem(ctx context.Context, hubID, itemID uuid.UUID) ([]domain.RentalBlackout, error) {
	if _, err := s.itemRepo.GetByID(ctx, hubID, itemID); err != nil {
		return nil, err
	}
	return s.blackoutRepo.ListForItem(ctx, hubID, itemID)
}
