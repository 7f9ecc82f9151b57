package seed

import "time"

// Config holds configuration for the seed run
type Config struct {
	BaseURL   string        // Base URL of the service
	NumUsers  int           // Number of user profiles to create
	NumJobs   int           // Number of jobs to create
	NumEvents int           // Number of events to generate
	Workers   int           // Number of concurrent workers
	Timeout   time.Duration // HTTP request timeout
	Verbose   bool          // Enable verbose logging
}

// Stats holds seed run statistics
type Stats struct {
	ProfilesCreated  int
	JobsCreated      int
	EventsGenerated  int
	EventsSubmitted  int
	EventsSuccessful int
	EventsFailed     int
	OutcomesRecorded int
	RecommendChecked int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
