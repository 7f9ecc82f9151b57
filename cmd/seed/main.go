package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/placewise/placewise/internal/seed"
)

// Default configuration constants.
const (
	defaultNumUsers    = 200
	defaultNumJobs     = 40
	defaultNumEvents   = 5000
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultSeedTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8080", "Base URL of the service")
		numUsers  = flag.Int("users", defaultNumUsers, "Number of user profiles to create")
		numJobs   = flag.Int("jobs", defaultNumJobs, "Number of jobs to create")
		numEvents = flag.Int("events", defaultNumEvents, "Number of events to generate and submit")
		workers   = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose   = flag.Bool("verbose", false, "Enable verbose logging")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seed.ShowHelp()
		return
	}

	if err := seed.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultSeedTimeout)
	defer cancel()

	config := &seed.Config{
		BaseURL:   *baseURL,
		NumUsers:  *numUsers,
		NumJobs:   *numJobs,
		NumEvents: *numEvents,
		Workers:   *workers,
		Timeout:   *timeout,
		Verbose:   *verbose,
	}

	if err := seed.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seed failed: " + err.Error() + "\n")
		return
	}
}
