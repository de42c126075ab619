package assistant

import (
	"context"
	"fmt"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Permission names match the module's permission set.
const (
	PermViewRentalItem = "rentals.view_rentalitem"
	PermAddRentalItem  = "rentals.add_rentalitem"
	PermViewRental     = "rentals.view_rental"
	PermAddRental      = "rentals.add_rental"
)

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func intArg(args map[string]any, name string, fallback int) int {
	switch v := args[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}

// NewRegistry builds the rentals tool surface.
func NewRentalsRegistry(items service.RentalItemService, rentals service.RentalService) *Registry {
	r := NewRegistry()
	r.Register(listRentalItemsTool(items))
	r.Register(createRentalItemTool(items))
	r.Register(listRentalsTool(rentals))
	r.Register(createRentalTool(rentals))
	return r
}

func listRentalItemsTool(items service.RentalItemService) *Tool {
	return &Tool{
		Name:               "list_rental_items",
		Description:        "List items available for rent.",
		RequiredPermission: PermViewRentalItem,
		Schema: Schema{
			Properties: map[string]Property{
				"is_available": {Type: "boolean"},
				"category":     {Type: "string"},
			},
		},
		Execute: func(ctx context.Context, hubID uuid.UUID, args map[string]any) (any, error) {
			var isAvailable *bool
			if v, ok := args["is_available"].(bool); ok {
				isAvailable = &v
			}
			list, err := items.ListActive(ctx, hubID, isAvailable, stringArg(args, "category"))
			if err != nil {
				return nil, err
			}
			out := make([]map[string]any, 0, len(list))
			for _, it := range list {
				out = append(out, map[string]any{
					"id":             it.ID.String(),
					"name":           it.Name,
					"code":           it.Code,
					"daily_rate":     it.DailyRate.StringFixed(2),
					"is_available":   it.IsAvailable,
					"category":       it.Category,
					"quantity_total": it.QuantityTotal,
				})
			}
			return map[string]any{"items": out}, nil
		},
	}
}

func createRentalItemTool(items service.RentalItemService) *Tool {
	return &Tool{
		Name:                 "create_rental_item",
		Description:          "Create a rental item.",
		RequiredPermission:   PermAddRentalItem,
		RequiresConfirmation: true,
		Schema: Schema{
			Properties: map[string]Property{
				"name":           {Type: "string"},
				"code":           {Type: "string"},
				"description":    {Type: "string"},
				"daily_rate":     {Type: "string"},
				"category":       {Type: "string"},
				"quantity_total": {Type: "integer"},
			},
			Required: []string{"name", "daily_rate"},
		},
		Execute: func(ctx context.Context, hubID uuid.UUID, args map[string]any) (any, error) {
			rate, err := decimal.NewFromString(stringArg(args, "daily_rate"))
			if err != nil {
				return nil, fmt.Errorf("invalid daily_rate: %w", err)
			}
			item, err := items.Create(ctx, hubID, service.RentalItemInput{
				Name:          stringArg(args, "name"),
				Code:          stringArg(args, "code"),
				Description:   stringArg(args, "description"),
				DailyRate:     rate,
				IsAvailable:   true,
				IsActive:      true,
				Category:      stringArg(args, "category"),
				QuantityTotal: int32(intArg(args, "quantity_total", 1)),
			})
			if err != nil {
				return nil, err
			}
			return map[string]any{"id": item.ID.String(), "name": item.Name, "created": true}, nil
		},
	}
}

func listRentalsTool(rentals service.RentalService) *Tool {
	return &Tool{
		Name:               "list_rentals",
		Description:        "List rental agreements.",
		RequiredPermission: PermViewRental,
		Schema: Schema{
			Properties: map[string]Property{
				"status": {Type: "string", Description: "reserved, active, returned, overdue, cancelled"},
				"limit":  {Type: "integer"},
			},
		},
		Execute: func(ctx context.Context, hubID uuid.UUID, args map[string]any) (any, error) {
			list, err := rentals.ListRecent(ctx, hubID, domain.RentalStatus(stringArg(args, "status")), intArg(args, "limit", 20))
			if err != nil {
				return nil, err
			}
			out := make([]map[string]any, 0, len(list))
			for _, rt := range list {
				out = append(out, map[string]any{
					"id":            rt.ID.String(),
					"reference":     rt.Reference,
					"item":          rt.ItemName,
					"customer_name": rt.CustomerName,
					"status":        string(rt.Status),
					"start_date":    rt.StartDate,
					"end_date":      rt.EndDate,
					"total":         rt.Total.StringFixed(2),
				})
			}
			return map[string]any{"rentals": out}, nil
		},
	}
}

func createRentalTool(rentals service.RentalService) *Tool {
	return &Tool{
		Name:                 "create_rental",
		Description:          "Create a rental agreement.",
		RequiredPermission:   PermAddRental,
		RequiresConfirmation: true,
		Schema: Schema{
			Properties: map[string]Property{
				"item_id":        {Type: "string"},
				"customer_name":  {Type: "string"},
				"start_date":     {Type: "string"},
				"end_date":       {Type: "string"},
				"deposit_amount": {Type: "string"},
				"notes":          {Type: "string"},
			},
			Required: []string{"item_id", "customer_name", "start_date", "end_date"},
		},
		Execute: func(ctx context.Context, hubID uuid.UUID, args map[string]any) (any, error) {
			itemID, err := uuid.Parse(stringArg(args, "item_id"))
			if err != nil {
				return nil, fmt.Errorf("invalid item_id: %w", err)
			}
			deposit := decimal.Zero
			if s := stringArg(args, "deposit_amount"); s != "" {
				deposit, err = decimal.NewFromString(s)
				if err != nil {
					return nil, fmt.Errorf("invalid deposit_amount: %w", err)
				}
			}
			rental, err := rentals.Create(ctx, hubID, service.RentalInput{
				ItemID:        itemID,
				CustomerName:  stringArg(args, "customer_name"),
				StartDate:     stringArg(args, "start_date"),
				EndDate:       stringArg(args, "end_date"),
				DepositAmount: deposit,
				Notes:         stringArg(args, "notes"),
			})
			if err != nil {
				return nil, err
			}
			return map[string]any{"id": rental.ID.String(), "reference": rental.Reference, "created": true}, nil
		},
	}
}
