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

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if SKILLSTUB_CONFIG is set
//  3. env (prefix SKILLSTUB_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SKILLSTUB_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SKILLSTUB_API_PREFIX, SKILLSTUB_BACKEND, ...
	// Map env keys like SKILLSTUB_LATENCY_MIN_MS -> latency_min_ms
	// (flat keys, underscores preserved to match the koanf tags).
	envProvider := env.Provider("SKILLSTUB_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "skillstub_")
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
	if !strings.HasPrefix(c.APIPrefix, "/") {
		return fmt.Errorf("%w: api_prefix must start with /", ErrInvalidConfig)
	}
	if c.LatencyMinMS < 0 || c.LatencyMaxMS < c.LatencyMinMS {
		return fmt.Errorf("%w: latency range must satisfy 0 <= min <= max", ErrInvalidConfig)
	}
	switch c.Backend {
	case BackendMemory:
	case BackendFile, BackendSQLite:
		if c.StoragePath == "" {
			return fmt.Errorf("%w: storage_path required for %s backend", ErrInvalidConfig, c.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if c.SlotName == "" {
		return fmt.Errorf("%w: slot_name must not be empty", ErrInvalidConfig)
	}
	return nil
}
