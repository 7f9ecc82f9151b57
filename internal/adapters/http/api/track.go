// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/placewise/placewise/internal/domain/model"
)

// trackRequest is the wire shape for POST /analytics/track. Absent optional
// fields stay nil so the stored record only carries what the caller sent.
type trackRequest struct {
	UserID     *string        `json:"user_id"`
	EventType  string         `json:"event_type"`
	Page       *string        `json:"page"`
	Service    *string        `json:"service"`
	Device     *string        `json:"device"`
	Properties map[string]any `json:"properties"`
}

// TrackHandler handles event submissions.
type TrackHandler struct {
	deps Dependencies
}

// NewTrackHandler creates a new track handler.
func NewTrackHandler(deps Dependencies) *TrackHandler {
	return &TrackHandler{deps: deps}
}

// HandleTrackEvent handles POST /analytics/track requests.
func (h *TrackHandler) HandleTrackEvent(w http.ResponseWriter, r *http.Request) {
	const op = "api.track_event"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	e := model.Event{
		UserID:     req.UserID,
		EventType:  req.EventType,
		Page:       req.Page,
		Service:    req.Service,
		Device:     req.Device,
		Properties: req.Properties,
	}
	if err := e.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.TrackEvent(r.Context(), e); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
}
