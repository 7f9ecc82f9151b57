package seed

import (
	"fmt"
	"os"

	"github.com/placewise/placewise/pkg/logger"
)

// SetupLogging initializes the logger for the seed tool. Verbose runs get
// debug-level output.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the seed tool.
func ShowHelp() {
	os.Stdout.WriteString(`Placewise Seed Tool
===================

Populates a running analytics service with synthetic jobs, user profiles,
tracked events, and application outcomes, then verifies the read side.

Usage:
  go run cmd/seed/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8080")
  -users int
        Number of user profiles to create (default 200)
  -jobs int
        Number of jobs to create (default 40)
  -events int
        Number of events to generate and submit (default 5000)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Seed with default settings
  go run cmd/seed/main.go

  # Seed a larger population
  go run cmd/seed/main.go -users 1000 -jobs 100 -events 50000 -workers 16
`)
}
