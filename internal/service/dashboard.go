package service

import (
	"context"

	"rentalhub-backend/internal/repository"

	"github.com/google/uuid"
)

type dashboardService struct {
	itemRepo   repository.RentalItemRepository
	rentalRepo repository.RentalRepository
}

func NewDashboardService(itemRepo repository.RentalItemRepository, rentalRepo repository.RentalRepository) DashboardService {
	return &dashboardService{
		itemRepo:   itemRepo,
		rentalRepo: rentalRepo,
	}
}

func (s *dashboardService) Summary(ctx context.Context, hubID uuid.UUID) (*DashboardSummary, error) {
	items, err := s.itemRepo.Count(ctx, hubID)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.Count(ctx, hubID)
	if err != nil {
		return nil, err
	}
	return &DashboardSummary{TotalRentalItems: items, TotalRentals: rentals}, nil
}
