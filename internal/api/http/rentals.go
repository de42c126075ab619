package http

import (
	"net/http"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/export"
	"rentalhub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

func rentalInputFromForm(r *http.Request) (service.RentalInput, error) {
	total := r.PostFormValue("total")
	if total == "" {
		total = "0"
	}
	totalDec, err := decimal.NewFromString(total)
	if err != nil {
		return service.RentalInput{}, err
	}
	deposit := r.PostFormValue("deposit_amount")
	if deposit == "" {
		deposit = "0"
	}
	depositDec, err := decimal.NewFromString(deposit)
	if err != nil {
		return service.RentalInput{}, err
	}
	in := service.RentalInput{
		Reference:       r.PostFormValue("reference"),
		CustomerName:    r.PostFormValue("customer_name"),
		Status:          domain.RentalStatus(r.PostFormValue("status")),
		StartDate:       r.PostFormValue("start_date"),
		EndDate:         r.PostFormValue("end_date"),
		Total:           totalDec,
		DepositAmount:   depositDec,
		DepositPaid:     formBool(r, "deposit_paid"),
		DepositReturned: formBool(r, "deposit_returned"),
		ConditionOut:    r.PostFormValue("condition_out"),
		ConditionIn:     r.PostFormValue("condition_in"),
		Notes:           r.PostFormValue("notes"),
	}
	if itemID, err := uuid.Parse(r.PostFormValue("item_id")); err == nil {
		in.ItemID = itemID
	}
	if customerID, err := uuid.Parse(r.PostFormValue("customer_id")); err == nil {
		in.CustomerID = &customerID
	}
	return in, nil
}

func (h *RentalHandler) respondList(w http.ResponseWriter, r *http.Request, hubID uuid.UUID, q domain.ListQuery) {
	rentals, meta, err := h.rentals.List(r.Context(), hubID, q)
	if err != nil {
		handleError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rentals": rentals, "meta": meta})
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	q := parseListQuery(r)

	if format, ok := export.ParseFormat(r.URL.Query().Get("export")); ok {
		ds, err := h.rentals.Export(r.Context(), rc.HubID, q, format)
		if err != nil {
			handleError(w, err)
			return
		}
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", `attachment; filename="`+ds.Filename+`"`)
		if err := ds.Write(w, format); err != nil {
			handleError(w, err)
		}
		return
	}

	h.respondList(w, r, rc.HubID, q)
}

func (h *RentalHandler) Add(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	in, err := rentalInputFromForm(r)
	if err != nil {
		handleError(w, err)
		return
	}
	if _, err := h.rentals.Create(r.Context(), rc.HubID, in); err != nil {
		handleError(w, err)
		return
	}
	h.respondList(w, r, rc.HubID, domain.ListQuery{})
}

func (h *RentalHandler) Edit(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		handleError(w, domain.ErrNotFound)
		return
	}
	in, err := rentalInputFromForm(r)
	if err != nil {
		handleError(w, err)
		return
	}
	if _, err := h.rentals.Update(r.Context(), rc.HubID, id, in); err != nil {
		handleError(w, err)
		return
	}
	h.respondList(w, r, rc.HubID, domain.ListQuery{})
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		handleError(w, domain.ErrNotFound)
		return
	}
	if err := h.rentals.Delete(r.Context(), rc.HubID, id); err != nil {
		handleError(w, err)
		return
	}
	h.respondList(w, r, rc.HubID, domain.ListQuery{})
}

func (h *RentalHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	ids := parseIDList(r.PostFormValue("ids"))
	if action, ok := domain.ParseRentalBulkAction(r.PostFormValue("action")); ok {
		if err := h.rentals.Bulk(r.Context(), rc.HubID, ids, action); err != nil {
			handleError(w, err)
			return
		}
	}
	h.respondList(w, r, rc.HubID, domain.ListQuery{})
}
