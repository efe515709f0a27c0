// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables (in increasing priority).
//
// Config is immutable after LoadWithKoanf returns and safe for concurrent
// read access.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig locates the catalog and ratings tables.
//
// Environment Variables:
//   - MOVIES_PATH: movies.csv location (default: data/movies.csv)
//   - RATINGS_PATH: ratings.csv location (default: data/ratings.csv)
//   - DATA_LOADER: csv or duckdb (default: csv)
type DataConfig struct {
	MoviesPath  string `koanf:"movies_path"`
	RatingsPath string `koanf:"ratings_path"`
	Loader      string `koanf:"loader"`
}

// RecommendConfig holds the recommendation engine tunables.
type RecommendConfig struct {
	// DefaultTopN is used when a query does not ask for a specific count.
	DefaultTopN int `koanf:"default_top_n"`

	// MaxTopN is the largest k accepted by the HTTP API (400 above it).
	MaxTopN int `koanf:"max_top_n"`

	// NeighborCount is how many similar users feed a collaborative query.
	// It does not depend on the requested top N.
	NeighborCount int `koanf:"neighbor_count"`

	// CandidateMultiplier widens each sub-query of a hybrid request.
	CandidateMultiplier int `koanf:"candidate_multiplier"`

	// Workers bounds the similarity build parallelism. 0 = runtime.NumCPU().
	Workers int `koanf:"workers"`

	CacheEnabled       bool          `koanf:"cache_enabled"`
	CacheTTL           time.Duration `koanf:"cache_ttl"`
	CacheSize          int           `koanf:"cache_size"`
	CacheSweepInterval time.Duration `koanf:"cache_sweep_interval"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds request-shaping settings for the HTTP API.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}
