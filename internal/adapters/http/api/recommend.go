// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"
)

// RecommendHandler handles job recommendation requests.
type RecommendHandler struct {
	deps    Dependencies
	maxTopK int
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps Dependencies, maxTopK int) *RecommendHandler {
	return &RecommendHandler{
		deps:    deps,
		maxTopK: maxTopK,
	}
}

// HandleGetRecommendations handles GET /recommendations/{user_id}?top_k=N
// requests. top_k=0 is valid and yields an empty list; an absent top_k falls
// back to the configured default.
func (h *RecommendHandler) HandleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_recommendations"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /recommendations/
	userID := strings.TrimPrefix(r.URL.Path, "/recommendations/")
	if userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	topK := -1
	if topKStr := r.URL.Query().Get("top_k"); topKStr != "" {
		n, err := strconv.Atoi(topKStr)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n > h.maxTopK {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		topK = n
	}
	candidates, err := h.deps.Recommend(r.Context(), userID, topK)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, recommendationsResponse{
		UserID:          userID,
		Recommendations: candidates,
	})
}
