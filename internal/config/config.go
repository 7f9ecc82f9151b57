// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults and Load(ctx) to layer
//   file and environment sources on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StoreBackend selects the document store: memory, badger, or postgres.
	StoreBackend string `koanf:"store_backend"`

	// DataDir is the on-disk location for the badger backend.
	DataDir string `koanf:"data_dir"`

	// PostgresDSN is the connection string for the postgres backend.
	PostgresDSN string `koanf:"postgres_dsn"`

	// DefaultOverviewLimit bounds event/user reads when the caller omits limit.
	DefaultOverviewLimit int `koanf:"default_overview_limit"`

	// MaxOverviewLimit caps GET /analytics/overview?limit.
	MaxOverviewLimit int `koanf:"max_overview_limit"`

	// JobScanLimit caps the number of candidate jobs scored per request.
	JobScanLimit int `koanf:"job_scan_limit"`

	// DefaultTopK is used when the caller omits top_k.
	DefaultTopK int `koanf:"default_top_k"`

	// MaxTopK caps GET /recommendations/{user_id}?top_k.
	MaxTopK int `koanf:"max_top_k"`
}

// New creates a Config with defaults. Load layers file/env sources on top.
func New() *Config {
	c := &Config{
		LogLevel:             "info",
		Addr:                 ":8080",
		StoreBackend:         "memory",
		DataDir:              "",
		PostgresDSN:          "",
		DefaultOverviewLimit: 50,
		MaxOverviewLimit:     1000,
		JobScanLimit:         1000,
		DefaultTopK:          5,
		MaxTopK:              100,
	}
	return c
}
