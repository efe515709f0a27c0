// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"fmt"
	"time"
)

// Defaults for Config.
const (
	DefaultTopN                = 5
	DefaultMaxTopN             = 100
	DefaultNeighborCount       = 5
	DefaultCandidateMultiplier = 2
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// DefaultTopN is used when a query asks for zero or fewer titles.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN is the largest k the HTTP API accepts. The engine does not
	// enforce it: a query for N titles returns N when the data has them.
	MaxTopN int `json:"max_top_n"`

	// NeighborCount is the number of most similar users whose ratings feed a
	// collaborative query. It is independent of the requested top N.
	NeighborCount int `json:"neighbor_count"`

	// CandidateMultiplier scales top N for each side of a hybrid query.
	CandidateMultiplier int `json:"candidate_multiplier"`

	// NumWorkers bounds similarity build parallelism. Zero means runtime.NumCPU().
	NumWorkers int `json:"num_workers"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled controls whether caching is active.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 10m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached entries.
	// Default: 10000.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultTopN:         DefaultTopN,
		MaxTopN:             DefaultMaxTopN,
		NeighborCount:       DefaultNeighborCount,
		CandidateMultiplier: DefaultCandidateMultiplier,
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        10 * time.Minute,
			MaxEntries: 10000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultTopN < 1 {
		return fmt.Errorf("default_top_n must be positive, got %d", c.DefaultTopN)
	}
	if c.MaxTopN < c.DefaultTopN {
		return fmt.Errorf("max_top_n must be >= default_top_n, got %d < %d", c.MaxTopN, c.DefaultTopN)
	}
	if c.NeighborCount < 1 {
		return fmt.Errorf("neighbor_count must be positive, got %d", c.NeighborCount)
	}
	if c.CandidateMultiplier < 1 {
		return fmt.Errorf("candidate_multiplier must be positive, got %d", c.CandidateMultiplier)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("num_workers must be non-negative, got %d", c.NumWorkers)
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All fields are value types
	clone := *c
	return &clone
}
