package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusReserved  RentalStatus = "reserved"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusReturned  RentalStatus = "returned"
	RentalStatusOverdue   RentalStatus = "overdue"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// RentalStatuses lists every accepted status value. The field is free-form
// within this set: any value may be written by any update, with no transition
// table and no automatic overdue derivation from dates.
var RentalStatuses = []RentalStatus{
	RentalStatusReserved,
	RentalStatusActive,
	RentalStatusReturned,
	RentalStatusOverdue,
	RentalStatusCancelled,
}

func (s RentalStatus) Valid() bool {
	for _, v := range RentalStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Rental is an agreement binding a RentalItem to a renter for a date range.
// Dates are calendar dates in YYYY-MM-DD form; end before start is not
// rejected. Total is caller-supplied, never computed from rate and duration.
type Rental struct {
	HubEntity
	Reference       string          `json:"reference"`
	ItemID          uuid.UUID       `json:"item_id"`
	ItemName        string          `json:"item_name,omitempty"` // populated on joined reads
	CustomerName    string          `json:"customer_name"`
	CustomerID      *uuid.UUID      `json:"customer_id,omitempty"`
	Status          RentalStatus    `json:"status"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Total           decimal.Decimal `json:"total"`
	DepositAmount   decimal.Decimal `json:"deposit_amount"`
	DepositPaid     bool            `json:"deposit_paid"`
	DepositReturned bool            `json:"deposit_returned"`
	ConditionOut    string          `json:"condition_out"`
	ConditionIn     string          `json:"condition_in"`
	Notes           string          `json:"notes"`
}
