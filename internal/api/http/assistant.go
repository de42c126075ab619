package http

import (
	"encoding/json"
	"net/http"

	"rentalhub-backend/internal/assistant"

	"github.com/gorilla/mux"
)

// AssistantHandler exposes the tool registry to the host agent: a listing of
// tool declarations and an invocation endpoint. Authorization uses the
// caller's session permissions; denial and confirmation outcomes come back as
// structured results, never partial execution.
type AssistantHandler struct {
	registry *assistant.Registry
}

func NewAssistantHandler(registry *assistant.Registry) *AssistantHandler {
	return &AssistantHandler{registry: registry}
}

func (h *AssistantHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	type toolDecl struct {
		Name                 string           `json:"name"`
		Description          string           `json:"description"`
		RequiredPermission   string           `json:"required_permission"`
		RequiresConfirmation bool             `json:"requires_confirmation"`
		Schema               assistant.Schema `json:"parameters"`
	}
	var decls []toolDecl
	for _, t := range h.registry.List() {
		decls = append(decls, toolDecl{
			Name:                 t.Name,
			Description:          t.Description,
			RequiredPermission:   t.RequiredPermission,
			RequiresConfirmation: t.RequiresConfirmation,
			Schema:               t.Schema,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"tools": decls})
}

func (h *AssistantHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	rc, _ := RequestContextFrom(r.Context())
	var body struct {
		Args      map[string]any `json:"args"`
		Confirmed bool           `json:"confirmed"`
	}
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusOK, assistant.Result{Status: assistant.StatusInvalidArgs, Message: "malformed request body"})
			return
		}
	}
	result := h.registry.Invoke(r.Context(), rc.HubID, rc.Permissions, mux.Vars(r)["name"], body.Args, body.Confirmed)
	writeJSON(w, http.StatusOK, result)
}
