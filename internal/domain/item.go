package domain

import "github.com/shopspring/decimal"

// RentalItem is a rentable asset definition (equipment, vehicle, space).
// IsAvailable is the operator-controlled "currently rentable" flag; it is not
// derived from blackouts or active rentals. IsActive is the soft listed/visible
// flag, distinct from the soft-delete flag on HubEntity.
type RentalItem struct {
	HubEntity
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	DailyRate     decimal.Decimal `json:"daily_rate"`
	IsAvailable   bool            `json:"is_available"`
	IsActive      bool            `json:"is_active"`
	Category      string          `json:"category"`
	Location      string          `json:"location"`
	QuantityTotal int32           `json:"quantity_total"`
}
