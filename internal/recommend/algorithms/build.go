// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package algorithms

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinerank/internal/metrics"
	"github.com/tomtom215/cinerank/internal/recommend"
)

// BuildEngine constructs the catalog, builds the content and collaborative
// models concurrently and hands them to a new recommend.Engine. The returned engine never mutates the models.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func BuildEngine(ctx context.Context, movies []recommend.Movie, ratings []recommend.Rating, cfg *recommend.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	if cfg == nil {
		cfg = recommend.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	catalog := recommend.NewCatalog(movies)

	// The two models share nothing but the read-only catalog
	var (
		content       *ContentBased
		collaborative *UserBasedCF
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		content, err = NewContentBased(gctx, catalog, ContentConfig{NumWorkers: cfg.NumWorkers})
		if err != nil {
			return fmt.Errorf("build content model: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		collaborative, err = NewUserBasedCF(gctx, ratings, CollaborativeConfig{
			NeighborCount: cfg.NeighborCount,
			NumWorkers:    cfg.NumWorkers,
		})
		if err != nil {
			return fmt.Errorf("build collaborative model: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics.RecordModelBuild(content.Name(), content.BuildDuration())
	logger.Info().
		Int("movies", content.Len()).
		Int("vocabulary", content.Vocabulary()).
		Dur("duration", content.BuildDuration()).
		Msg("content model built")

	metrics.RecordModelBuild(collaborative.Name(), collaborative.BuildDuration())
	logger.Info().
		Int("users", len(collaborative.Users())).
		Int("rated_movies", collaborative.NumMovies()).
		Int("neighbor_count", collaborative.NeighborCount()).
		Dur("duration", collaborative.BuildDuration()).
		Msg("collaborative model built")

	metrics.SetDatasetSize(catalog.Len(), len(collaborative.Users()))

	return recommend.NewEngine(cfg, recommend.Models{
		Catalog:       catalog,
		Content:       content,
		Collaborative: collaborative,
		Build: recommend.BuildInfo{
			ContentDuration:       content.BuildDuration(),
			CollaborativeDuration: collaborative.BuildDuration(),
			BuiltAt:               time.Now(),
		},
	}, logger)
}
