// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package config provides centralized configuration management for Cinerank.

Configuration is loaded with Koanf v2 from three layers, highest priority last:
  - Built-in defaults
  - An optional YAML file (CONFIG_PATH, config.yaml, /etc/cinerank/config.yaml)
  - Environment variables

# Environment Variables

Dataset:
  - MOVIES_PATH, RATINGS_PATH: CSV locations
  - DATA_LOADER: csv (default) or duckdb

Recommendation engine:
  - RECOMMEND_DEFAULT_TOP_N (default: 5), RECOMMEND_MAX_TOP_N (default: 100)
  - RECOMMEND_NEIGHBOR_COUNT (default: 5)
  - RECOMMEND_CANDIDATE_MULTIPLIER (default: 2)
  - RECOMMEND_WORKERS (default: 0, meaning runtime.NumCPU())
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_SIZE,
    RECOMMEND_CACHE_SWEEP_INTERVAL

HTTP server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8501)
  - HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated list

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example YAML

	data:
	  movies_path: /srv/movielens/movies.csv
	  ratings_path: /srv/movielens/ratings.csv
	  loader: duckdb
	recommend:
	  neighbor_count: 10
	  cache_ttl: 30m
	server:
	  port: 8080
*/
package config
