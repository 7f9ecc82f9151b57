// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/placewise/placewise/internal/domain/model"
)

// jobRequest is the wire shape for POST /jobs.
type jobRequest struct {
	JobID         string   `json:"job_id"`
	Title         string   `json:"title"`
	Company       *string  `json:"company"`
	Location      *string  `json:"location"`
	Requirements  []string `json:"requirements"`
	MinExperience *float64 `json:"min_experience"`
}

// JobsHandler handles job catalog submissions.
type JobsHandler struct {
	deps Dependencies
}

// NewJobsHandler creates a new jobs handler.
func NewJobsHandler(deps Dependencies) *JobsHandler {
	return &JobsHandler{deps: deps}
}

// HandleCreateJob handles POST /jobs requests.
func (h *JobsHandler) HandleCreateJob(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_job"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	j := model.Job{
		JobID:         req.JobID,
		Title:         req.Title,
		Company:       req.Company,
		Location:      req.Location,
		Requirements:  req.Requirements,
		MinExperience: req.MinExperience,
	}
	if err := j.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.CreateJob(r.Context(), j); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
}
