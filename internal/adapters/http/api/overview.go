// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
)

// OverviewHandler handles aggregate analytics requests.
type OverviewHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewOverviewHandler creates a new overview handler.
func NewOverviewHandler(deps Dependencies, maxLimit int) *OverviewHandler {
	return &OverviewHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetOverview handles GET /analytics/overview?limit=N requests.
// An absent limit falls back to the configured default.
func (h *OverviewHandler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_overview"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		limit = n
	}
	overview, err := h.deps.Overview(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
