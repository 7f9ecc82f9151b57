package seed

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/placewise/placewise/pkg/logger"
)

// verificationSample is how many seeded users get a recommendation probe
// after ingestion.
const verificationSample = 5

// Run executes the complete seed: catalog, profiles, events, outcomes, then
// a read-side verification pass.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting seed run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("users", config.NumUsers),
		logger.Int("jobs", config.NumJobs),
		logger.Int("events", config.NumEvents),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()))

	c := newClient(config.BaseURL, config.Timeout)

	if err := c.health(ctx); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	profiles := generateProfiles(config.NumUsers)
	jobs := generateJobs(config.NumJobs)
	events := generateEvents(profiles, config.NumEvents)
	outcomes := generateOutcomes(profiles, jobs)
	stats.EventsGenerated = len(events)

	for _, j := range jobs {
		if err := c.post(ctx, "/jobs", j); err != nil {
			return fmt.Errorf("job creation failed: %w", err)
		}
		stats.JobsCreated++
	}
	logger.Get().Info(ctx, "jobs created", logger.Int("count", stats.JobsCreated))

	for _, p := range profiles {
		if err := c.post(ctx, "/analytics/user", p); err != nil {
			return fmt.Errorf("profile creation failed: %w", err)
		}
		stats.ProfilesCreated++
	}
	logger.Get().Info(ctx, "profiles created", logger.Int("count", stats.ProfilesCreated))

	if err := submitEvents(ctx, config, c, events, stats); err != nil {
		return fmt.Errorf("event submission failed: %w", err)
	}

	for _, o := range outcomes {
		if err := c.post(ctx, "/analytics/outcome", o); err != nil {
			return fmt.Errorf("outcome submission failed: %w", err)
		}
		stats.OutcomesRecorded++
	}
	logger.Get().Info(ctx, "outcomes recorded", logger.Int("count", stats.OutcomesRecorded))

	if err := verify(ctx, c, profiles, stats); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "seed run completed successfully")
	return nil
}

// submitEvents pushes events concurrently through a bounded worker pool.
func submitEvents(ctx context.Context, config *Config, c *client, events []eventPayload, stats *Stats) error {
	logger.Get().Info(ctx, "submitting events",
		logger.Int("count", len(events)),
		logger.Int("workers", config.Workers))

	var (
		successful int64
		failed     int64
	)

	eventChan := make(chan eventPayload, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for event := range eventChan {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if err := c.post(ctx, "/analytics/track", event); err != nil {
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						logger.Get().Warn(ctx, "event submission failed", logger.Error(err))
					}
					continue
				}
				atomic.AddInt64(&successful, 1)
			}
		}()
	}

	go func() {
		defer close(eventChan)
		for _, event := range events {
			select {
			case <-ctx.Done():
				return
			case eventChan <- event:
			}
		}
	}()

	wg.Wait()

	stats.EventsSuccessful = int(atomic.LoadInt64(&successful))
	stats.EventsFailed = int(atomic.LoadInt64(&failed))
	stats.EventsSubmitted = stats.EventsSuccessful + stats.EventsFailed

	logger.Get().Info(ctx, "event submission completed",
		logger.Int("successful", stats.EventsSuccessful),
		logger.Int("failed", stats.EventsFailed))
	return nil
}

// verify reads back the aggregate overview and probes recommendations for a
// handful of seeded users.
func verify(ctx context.Context, c *client, profiles []profilePayload, stats *Stats) error {
	var overview struct {
		Channels map[string]int `json:"channels"`
		Samples  struct {
			Events int `json:"events"`
			Users  int `json:"users"`
		} `json:"samples"`
	}
	if err := c.get(ctx, "/analytics/overview", &overview); err != nil {
		return err
	}
	logger.Get().Info(ctx, "overview verified",
		logger.Int("sampledEvents", overview.Samples.Events),
		logger.Int("sampledUsers", overview.Samples.Users),
		logger.Int("channels", len(overview.Channels)))

	sample := verificationSample
	if sample > len(profiles) {
		sample = len(profiles)
	}
	for i := 0; i < sample; i++ {
		var resp struct {
			UserID          string `json:"user_id"`
			Recommendations []struct {
				JobID string  `json:"job_id"`
				Score float64 `json:"score"`
			} `json:"recommendations"`
		}
		if err := c.get(ctx, "/recommendations/"+profiles[i].UserID, &resp); err != nil {
			return err
		}
		stats.RecommendChecked++
		logger.Get().Debug(ctx, "recommendations verified",
			logger.String("userID", resp.UserID),
			logger.Int("count", len(resp.Recommendations)))
	}
	return nil
}

// displayFinalStats prints the final seed statistics.
func displayFinalStats(stats *Stats) {
	var eventsPerSecond float64
	if stats.Duration > 0 {
		eventsPerSecond = float64(stats.EventsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("profilesCreated", stats.ProfilesCreated),
		logger.Int("jobsCreated", stats.JobsCreated),
		logger.Int("eventsGenerated", stats.EventsGenerated),
		logger.Int("eventsSubmitted", stats.EventsSubmitted),
		logger.Int("eventsSuccessful", stats.EventsSuccessful),
		logger.Int("eventsFailed", stats.EventsFailed),
		logger.Int("outcomesRecorded", stats.OutcomesRecorded),
		logger.Int("recommendationsChecked", stats.RecommendChecked),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("eventsPerSecond", eventsPerSecond))
}
