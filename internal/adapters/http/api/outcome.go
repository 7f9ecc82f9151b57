// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/placewise/placewise/internal/domain/model"
)

// outcomeRequest is the wire shape for POST /analytics/outcome.
type outcomeRequest struct {
	UserID  string  `json:"user_id"`
	JobID   string  `json:"job_id"`
	Outcome string  `json:"outcome"`
	Notes   *string `json:"notes"`
}

// OutcomeHandler handles application outcome submissions.
type OutcomeHandler struct {
	deps Dependencies
}

// NewOutcomeHandler creates a new outcome handler.
func NewOutcomeHandler(deps Dependencies) *OutcomeHandler {
	return &OutcomeHandler{deps: deps}
}

// HandleRecordOutcome handles POST /analytics/outcome requests.
func (h *OutcomeHandler) HandleRecordOutcome(w http.ResponseWriter, r *http.Request) {
	const op = "api.record_outcome"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req outcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	o := model.Outcome{
		UserID:  req.UserID,
		JobID:   req.JobID,
		Outcome: req.Outcome,
		Notes:   req.Notes,
	}
	if err := o.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.RecordOutcome(r.Context(), o); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
}
