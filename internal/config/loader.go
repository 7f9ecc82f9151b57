package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Supported store backends.
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PLACEWISE_CONFIG is set
//  3. env (prefix PLACEWISE_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PLACEWISE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PLACEWISE_ADDR, PLACEWISE_STORE_BACKEND, ...
	// Map env keys like PLACEWISE_STORE_BACKEND -> store_backend (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PLACEWISE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "placewise_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.StoreBackend {
	case BackendMemory, BackendBadger, BackendPostgres:
	default:
		return fmt.Errorf("%w: unknown store_backend %q", ErrInvalidConfig, c.StoreBackend)
	}
	if c.StoreBackend == BackendBadger && c.DataDir == "" {
		return fmt.Errorf("%w: data_dir required for badger backend", ErrInvalidConfig)
	}
	if c.StoreBackend == BackendPostgres && c.PostgresDSN == "" {
		return fmt.Errorf("%w: postgres_dsn required for postgres backend", ErrInvalidConfig)
	}
	if c.DefaultOverviewLimit < 1 || c.JobScanLimit < 1 {
		return fmt.Errorf("%w: limits must be positive", ErrInvalidConfig)
	}
	if c.DefaultTopK < 0 {
		return fmt.Errorf("%w: default_top_k must be >= 0", ErrInvalidConfig)
	}
	return nil
}
