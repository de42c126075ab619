package http

import (
	"net/http"

	"rentalhub-backend/internal/service"
)

type DashboardHandler struct {
	dashboard service.DashboardService
}

func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	summary, err := h.dashboard.Summary(r.Context(), rc.HubID)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Settings is a static page; the module persists no settings fields.
func Settings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{})
}

// Login is the entry point unauthenticated requests are redirected to. The
// actual credential flow lives in the platform's accounts service.
func Login(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"page": "login"})
}
