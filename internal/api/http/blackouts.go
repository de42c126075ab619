package http

import (
	"net/http"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/service"

	"github.com/google/uuid"
)

type BlackoutHandler struct {
	blackouts service.BlackoutService
}

func NewBlackoutHandler(blackouts service.BlackoutService) *BlackoutHandler {
	return &BlackoutHandler{blackouts: blackouts}
}

func (h *BlackoutHandler) respondList(w http.ResponseWriter, r *http.Request, hubID, itemID uuid.UUID) {
	blackouts, err := h.blackouts.ListForItem(r.Context(), hubID, itemID)
	if err != nil {
		handleError(w, err)
		return
	}
	if blackouts == nil {
		blackouts = []domain.RentalBlackout{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"blackouts": blackouts})
}

func (h *BlackoutHandler) Add(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	itemID, ok := pathID(r, "id")
	if !ok {
		handleError(w, domain.ErrNotFound)
		return
	}
	in := service.BlackoutInput{
		StartDate: r.PostFormValue("start_date"),
		EndDate:   r.PostFormValue("end_date"),
		Reason:    r.PostFormValue("reason"),
	}
	if _, err := h.blackouts.Add(r.Context(), rc.HubID, itemID, in); err != nil {
		handleError(w, err)
		return
	}
	h.respondList(w, r, rc.HubID, itemID)
}

func (h *BlackoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	itemID, ok := pathID(r, "id")
	if !ok {
		handleError(w, domain.ErrNotFound)
		return
	}
	blackoutID, ok := pathID(r, "bid")
	if !ok {
		handleError(w, domain.ErrNotFound)
		return
	}
	if err := h.blackouts.Delete(r.Context(), rc.HubID, itemID, blackoutID); err != nil {
		handleError(w, err)
		return
	}
	h.respondList(w, r, rc.HubID, itemID)
}
