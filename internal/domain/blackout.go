package domain

import "github.com/google/uuid"

// RentalBlackout is a date range during which an item is deliberately marked
// unavailable. Ranges are not checked for overlap against other blackouts or
// against existing rentals.
type RentalBlackout struct {
	HubEntity
	ItemID    uuid.UUID `json:"item_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
}
