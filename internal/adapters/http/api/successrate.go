// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// SuccessRateHandler handles placement success rate requests.
type SuccessRateHandler struct {
	deps Dependencies
}

// NewSuccessRateHandler creates a new success rate handler.
func NewSuccessRateHandler(deps Dependencies) *SuccessRateHandler {
	return &SuccessRateHandler{deps: deps}
}

// HandleGetSuccessRate handles GET /analytics/success-rate/{user_id}
// requests. A user with no recorded outcomes reports zeros, not an error.
func (h *SuccessRateHandler) HandleGetSuccessRate(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_success_rate"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /analytics/success-rate/
	userID := strings.TrimPrefix(r.URL.Path, "/analytics/success-rate/")
	if userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	report, err := h.deps.SuccessRate(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}
