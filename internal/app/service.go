// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/placewise/placewise/internal/adapters/docstore"
	"github.com/placewise/placewise/internal/domain/analytics"
	"github.com/placewise/placewise/internal/domain/model"
	"github.com/placewise/placewise/internal/domain/recommend"
	"github.com/placewise/placewise/pkg/logger"
	"github.com/placewise/placewise/pkg/metrics"
)

// Default request policies. The job scan cap bounds work per request; it is
// not a guarantee of scanning the entire catalog.
const (
	defaultOverviewLimit = 50
	defaultJobScanLimit  = 1000
	defaultTopK          = 5
)

// Service implements the API dependencies for the analytics and
// recommendation system. All state lives in the document store; computation
// is stateless per request.
type Service struct {
	mu sync.RWMutex

	// Core components
	store docstore.Store

	// Configuration
	storeBackend  string
	dataDir       string
	postgresDSN   string
	overviewLimit int
	jobScanLimit  int
	topK          int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore injects a pre-built document store, skipping backend selection.
func WithStore(store docstore.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithStoreBackend selects the document store backend by name.
func WithStoreBackend(backend string) Option {
	return func(s *Service) {
		if backend != "" {
			s.storeBackend = backend
		}
	}
}

// WithDataDir sets the on-disk location for the badger backend.
func WithDataDir(dir string) Option {
	return func(s *Service) {
		s.dataDir = dir
	}
}

// WithPostgresDSN sets the connection string for the postgres backend.
func WithPostgresDSN(dsn string) Option {
	return func(s *Service) {
		s.postgresDSN = dsn
	}
}

// WithOverviewLimit sets the default bound on event/user reads.
func WithOverviewLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.overviewLimit = limit
		}
	}
}

// WithJobScanLimit caps the number of candidate jobs scored per request.
func WithJobScanLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.jobScanLimit = limit
		}
	}
}

// WithDefaultTopK sets the recommendation list size used when the caller
// omits top_k.
func WithDefaultTopK(k int) Option {
	return func(s *Service) {
		if k >= 0 {
			s.topK = k
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		storeBackend:  docstore.BackendMemory,
		overviewLimit: defaultOverviewLimit,
		jobScanLimit:  defaultJobScanLimit,
		topK:          defaultTopK,
		logger:        nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting analytics service...")

	if s.store == nil {
		store, err := docstore.Open(s.storeBackend, s.dataDir, s.postgresDSN)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		s.store = store
	}
	s.logger.Info(ctx, "document store ready", logger.String("backend", s.storeBackend))

	s.started = true
	s.logger.Info(ctx, "analytics service started",
		logger.Int("overviewLimit", s.overviewLimit),
		logger.Int("jobScanLimit", s.jobScanLimit),
		logger.Int("defaultTopK", s.topK),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping analytics service...")

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error(context.Background(), "store close failed", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(context.Background(), "analytics service stopped")
}

// DefaultTopK exposes the configured recommendation list size.
func (s *Service) DefaultTopK() int {
	return s.topK
}

// DefaultOverviewLimit exposes the configured read bound for overviews.
func (s *Service) DefaultOverviewLimit() int {
	return s.overviewLimit
}

// TrackEvent appends a behavior event. Events are immutable facts; every
// submission creates a new record.
func (s *Service) TrackEvent(ctx context.Context, e model.Event) error {
	if _, err := s.store.Insert(ctx, docstore.CollectionEvent, e.Document()); err != nil {
		return fmt.Errorf("track event: %w", err)
	}
	metrics.RecordEventTracked()
	return nil
}

// UpsertProfile merges the supplied fields into the profile stored under
// the submission's user_id, creating it on first sight. Only supplied
// fields overwrite; omissions never erase stored values.
//
// The read-then-write sequence is not atomic: two concurrent upserts for a
// new user_id can both observe no existing record and create duplicates.
// The store serializes the writes themselves; reads pick the first match in
// insertion order, so behavior stays deterministic afterwards.
func (s *Service) UpsertProfile(ctx context.Context, p model.Profile) error {
	filter := docstore.Filter{"user_id": p.UserID}
	existing, err := s.store.FindOne(ctx, docstore.CollectionProfile, filter)
	switch {
	case errors.Is(err, docstore.ErrNoDocument):
		if _, err := s.store.Insert(ctx, docstore.CollectionProfile, p.Fields()); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
	case err != nil:
		return fmt.Errorf("lookup profile: %w", err)
	default:
		idFilter := docstore.Filter{docstore.IDField: existing[docstore.IDField]}
		if err := s.store.UpdateOne(ctx, docstore.CollectionProfile, idFilter, p.Fields()); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
	}
	metrics.RecordProfileUpserted()
	return nil
}

// CreateJob appends a job posting.
func (s *Service) CreateJob(ctx context.Context, j model.Job) error {
	if _, err := s.store.Insert(ctx, docstore.CollectionJob, j.Document()); err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	metrics.RecordJobCreated()
	return nil
}

// RecordOutcome appends an application outcome.
func (s *Service) RecordOutcome(ctx context.Context, o model.Outcome) error {
	if _, err := s.store.Insert(ctx, docstore.CollectionOutcome, o.Document()); err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// Overview reads bounded event and profile sets and aggregates them. A
// limit <= 0 falls back to the configured default. Any read failure fails
// the whole computation; no partial aggregates are returned.
func (s *Service) Overview(ctx context.Context, limit int) (analytics.Overview, error) {
	if limit <= 0 {
		limit = s.overviewLimit
	}
	events, err := s.store.Find(ctx, docstore.CollectionEvent, nil, limit)
	if err != nil {
		return analytics.Overview{}, fmt.Errorf("read events: %w", err)
	}
	users, err := s.store.Find(ctx, docstore.CollectionProfile, nil, limit)
	if err != nil {
		return analytics.Overview{}, fmt.Errorf("read profiles: %w", err)
	}
	metrics.RecordOverviewQuery()
	return analytics.Summarize(events, users), nil
}

// Recommend scores at most jobScanLimit postings against the user's skills
// and returns the top topK. The user must exist; unknown users yield
// ErrUserNotFound, distinct from store failures. topK < 0 falls back to the
// configured default.
func (s *Service) Recommend(ctx context.Context, userID string, topK int) ([]recommend.Candidate, error) {
	start := time.Now()
	if topK < 0 {
		topK = s.topK
	}
	user, err := s.store.FindOne(ctx, docstore.CollectionProfile, docstore.Filter{"user_id": userID})
	if errors.Is(err, docstore.ErrNoDocument) {
		metrics.RecordRecommendationNotFound()
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup profile: %w", err)
	}

	jobs, err := s.store.Find(ctx, docstore.CollectionJob, nil, s.jobScanLimit)
	if err != nil {
		return nil, fmt.Errorf("read jobs: %w", err)
	}

	skills, _ := docstore.Strings(user, "skills")
	var experience *float64
	if exp, ok := docstore.Float(user, "experience_years"); ok {
		experience = &exp
	}

	candidates := recommend.Rank(skills, experience, jobs, topK)
	metrics.RecordRecommendationServed()
	metrics.RecordRecommendationLatency(float64(time.Since(start).Milliseconds()))
	return candidates, nil
}

// SuccessRate reads all of the user's application outcomes (unbounded,
// unlike events/users) and summarizes them. Unknown users are not an
// error; they report zeros.
func (s *Service) SuccessRate(ctx context.Context, userID string) (analytics.Report, error) {
	outcomes, err := s.store.Find(ctx, docstore.CollectionOutcome, docstore.Filter{"user_id": userID}, 0)
	if err != nil {
		return analytics.Report{}, fmt.Errorf("read outcomes: %w", err)
	}
	metrics.RecordSuccessRateQuery()
	return analytics.SuccessRate(userID, outcomes), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":       s.started,
		"storeBackend":  s.storeBackend,
		"overviewLimit": s.overviewLimit,
		"jobScanLimit":  s.jobScanLimit,
		"defaultTopK":   s.topK,
	}

	if s.started {
		counts := map[string]int{}
		for _, collection := range []string{
			docstore.CollectionEvent,
			docstore.CollectionProfile,
			docstore.CollectionJob,
			docstore.CollectionOutcome,
		} {
			n, err := s.store.Count(ctx, collection)
			if err != nil {
				continue
			}
			counts[collection] = n
			metrics.UpdateStoreDocuments(collection, n)
		}
		stats["documents"] = counts
	}

	return stats
}
