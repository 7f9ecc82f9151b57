// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/placewise/placewise/internal/domain/model"
)

// profileRequest is the wire shape for POST /analytics/user. Every field but
// user_id is optional; omitted fields never overwrite stored values.
type profileRequest struct {
	UserID          string   `json:"user_id"`
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	Age             *int     `json:"age"`
	Gender          *string  `json:"gender"`
	Location        *string  `json:"location"`
	Education       *string  `json:"education"`
	ExperienceYears *float64 `json:"experience_years"`
	Skills          []string `json:"skills"`
	Channel         *string  `json:"channel"`
}

// ProfileHandler handles user profile submissions.
type ProfileHandler struct {
	deps Dependencies
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(deps Dependencies) *ProfileHandler {
	return &ProfileHandler{deps: deps}
}

// HandleUpsertProfile handles POST /analytics/user requests.
func (h *ProfileHandler) HandleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	const op = "api.upsert_profile"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	p := model.Profile{
		UserID:          req.UserID,
		Name:            req.Name,
		Email:           req.Email,
		Age:             req.Age,
		Gender:          req.Gender,
		Location:        req.Location,
		Education:       req.Education,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
		Channel:         req.Channel,
	}
	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.UpsertProfile(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
}
