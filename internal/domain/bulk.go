package domain

// Bulk actions are closed enumerations resolved through explicit parse
// functions, not open-ended string dispatch. An unrecognized action name parses
// to false and the whole request becomes a no-op.

type ItemBulkAction string

const (
	ItemBulkActivate   ItemBulkAction = "activate"
	ItemBulkDeactivate ItemBulkAction = "deactivate"
	ItemBulkDelete     ItemBulkAction = "delete"
)

func ParseItemBulkAction(s string) (ItemBulkAction, bool) {
	switch ItemBulkAction(s) {
	case ItemBulkActivate, ItemBulkDeactivate, ItemBulkDelete:
		return ItemBulkAction(s), true
	}
	return "", false
}

type RentalBulkAction string

const (
	RentalBulkDelete RentalBulkAction = "delete"
)

func ParseRentalBulkAction(s string) (RentalBulkAction, bool) {
	switch RentalBulkAction(s) {
	case RentalBulkDelete:
		return RentalBulkAction(s), true
	}
	return "", false
}
