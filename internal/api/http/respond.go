package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/logger"

	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// handleError maps a service error to a response. Not-found stays generic so
// cross-hub existence is never leaked; anything else is a plain 500.
func handleError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	logger.Error("request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

// parseListQuery extracts listing parameters. Invalid values are left for
// normalization to degrade; nothing here errors.
func parseListQuery(r *http.Request) domain.ListQuery {
	params := r.URL.Query()
	q := domain.ListQuery{
		Search:    strings.TrimSpace(params.Get("q")),
		SortField: params.Get("sort"),
		SortDir:   domain.SortDirection(params.Get("dir")),
		View:      params.Get("view"),
	}
	q.Page, _ = strconv.Atoi(params.Get("page"))
	q.PerPage, _ = strconv.Atoi(params.Get("per_page"))
	q.Normalize()
	return q
}

// parseIDList splits a comma-joined identifier list, dropping blanks and
// anything that does not parse as a UUID.
func parseIDList(raw string) []uuid.UUID {
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func formBool(r *http.Request, field string) bool {
	return r.PostFormValue(field) == "on" || r.PostFormValue(field) == "true"
}
