// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerank/internal/config"
	"github.com/tomtom215/cinerank/internal/dataset"
	"github.com/tomtom215/cinerank/internal/recommend"
	"github.com/tomtom215/cinerank/internal/recommend/algorithms"
)

// initEngine loads the dataset and builds the recommendation models.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	start := time.Now()

	data, err := dataset.Load(ctx, cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	engine, err := algorithms.BuildEngine(ctx, data.Movies, data.Ratings, buildEngineConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("build models: %w", err)
	}

	status := engine.Status()
	logger.Info().
		Int("movies", status.Movies).
		Int("users", status.Users).
		Int("vocabulary", status.Vocabulary).
		Dur("total", time.Since(start)).
		Msg("recommendation engine ready")

	return engine, nil
}

// buildEngineConfig maps the application config onto the engine's own config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	r := cfg.Recommend
	return &recommend.Config{
		DefaultTopN:         r.DefaultTopN,
		MaxTopN:             r.MaxTopN,
		NeighborCount:       r.NeighborCount,
		CandidateMultiplier: r.CandidateMultiplier,
		NumWorkers:          r.Workers,
		Cache: recommend.CacheConfig{
			Enabled:    r.CacheEnabled,
			TTL:        r.CacheTTL,
			MaxEntries: r.CacheSize,
		},
	}
}
