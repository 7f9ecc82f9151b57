// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/placewise/placewise/internal/domain/analytics"
	"github.com/placewise/placewise/internal/domain/model"
	"github.com/placewise/placewise/internal/domain/recommend"
)

// maxErrorMessageLen caps diagnostic text exposed to callers. Store failures
// carry backend detail that is truncated, never suppressed.
const maxErrorMessageLen = 100

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Write operations append facts or merge profiles.
	TrackEvent(ctx context.Context, e model.Event) error
	UpsertProfile(ctx context.Context, p model.Profile) error
	CreateJob(ctx context.Context, j model.Job) error
	RecordOutcome(ctx context.Context, o model.Outcome) error

	// Read operations expose aggregates and rankings.
	Overview(ctx context.Context, limit int) (analytics.Overview, error)
	Recommend(ctx context.Context, userID string, topK int) ([]recommend.Candidate, error)
	SuccessRate(ctx context.Context, userID string) (analytics.Report, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	trackHandler     *TrackHandler
	profileHandler   *ProfileHandler
	jobsHandler      *JobsHandler
	outcomeHandler   *OutcomeHandler
	overviewHandler  *OverviewHandler
	recommendHandler *RecommendHandler
	successHandler   *SuccessRateHandler
}

// NewServer creates a new API server with all handlers. maxLimit caps the
// overview limit query; maxTopK caps the recommendation list size.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit, maxTopK int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		trackHandler:     NewTrackHandler(deps),
		profileHandler:   NewProfileHandler(deps),
		jobsHandler:      NewJobsHandler(deps),
		outcomeHandler:   NewOutcomeHandler(deps),
		overviewHandler:  NewOverviewHandler(deps, maxLimit),
		recommendHandler: NewRecommendHandler(deps, maxTopK),
		successHandler:   NewSuccessRateHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/analytics/track", MetricsMiddleware(CORSMiddleware(s.trackHandler.HandleTrackEvent), "track"))
	mux.HandleFunc("/analytics/user", MetricsMiddleware(CORSMiddleware(s.profileHandler.HandleUpsertProfile), "profile"))
	mux.HandleFunc("/analytics/overview", MetricsMiddleware(CORSMiddleware(s.overviewHandler.HandleGetOverview), "overview"))
	mux.HandleFunc("/analytics/outcome", MetricsMiddleware(CORSMiddleware(s.outcomeHandler.HandleRecordOutcome), "outcome"))
	mux.HandleFunc("/analytics/success-rate/", MetricsMiddleware(CORSMiddleware(s.successHandler.HandleGetSuccessRate), "success_rate"))
	mux.HandleFunc("/jobs", MetricsMiddleware(CORSMiddleware(s.jobsHandler.HandleCreateJob), "jobs"))
	mux.HandleFunc("/recommendations/", MetricsMiddleware(CORSMiddleware(s.recommendHandler.HandleGetRecommendations), "recommendations"))
}

// ackResponse acknowledges accepted submissions.
type ackResponse struct {
	Status string `json:"status"`
}

// recommendationsResponse mirrors the read shape for GET /recommendations.
type recommendationsResponse struct {
	UserID          string                `json:"user_id"`
	Recommendations []recommend.Candidate `json:"recommendations"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = truncate(err.Error(), maxErrorMessageLen)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// truncate caps caller-facing diagnostics.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
