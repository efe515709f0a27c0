// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package dataset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/cinerank/internal/config"
	"github.com/tomtom215/cinerank/internal/logging"
	"github.com/tomtom215/cinerank/internal/recommend"
)

// Column names expected in the source headers.
const (
	colMovieID = "movieId"
	colTitle   = "title"
	colGenres  = "genres"
	colUserID  = "userId"
	colRating  = "rating"
)

var (
	// ErrEmptyCatalog is returned when the movies table has no rows.
	ErrEmptyCatalog = errors.New("movie catalog is empty")

	// ErrMissingColumn is returned when a required header column is absent.
	ErrMissingColumn = errors.New("missing required column")
)

// Dataset holds the loaded tables.
type Dataset struct {
	Movies  []recommend.Movie
	Ratings []recommend.Rating
}

// Stats summarizes a load.
type Stats struct {
	Loader   string        `json:"loader"`
	Movies   int           `json:"movies"`
	Ratings  int           `json:"ratings"`
	Duration time.Duration `json:"duration"`
}

// Load reads the dataset with the loader named in cfg.
func Load(ctx context.Context, cfg config.DataConfig) (*Dataset, error) {
	start := time.Now()

	var (
		ds  *Dataset
		err error
	)
	switch cfg.Loader {
	case config.LoaderCSV, "":
		ds, err = LoadCSV(ctx, cfg.MoviesPath, cfg.RatingsPath)
	case config.LoaderDuckDB:
		ds, err = LoadDuckDB(ctx, cfg.MoviesPath, cfg.RatingsPath)
	default:
		return nil, fmt.Errorf("unknown dataset loader %q", cfg.Loader)
	}
	if err != nil {
		return nil, err
	}

	stats := Stats{
		Loader:   cfg.Loader,
		Movies:   len(ds.Movies),
		Ratings:  len(ds.Ratings),
		Duration: time.Since(start),
	}
	logging.Info().
		Str("loader", stats.Loader).
		Str("movies_path", cfg.MoviesPath).
		Str("ratings_path", cfg.RatingsPath).
		Int("movies", stats.Movies).
		Int("ratings", stats.Ratings).
		Dur("duration", stats.Duration).
		Msg("Dataset loaded")

	if missing := ds.missingRatings(); missing > 0 {
		logging.Debug().
			Int("missing_ratings", missing).
			Msg("Non-finite ratings treated as missing")
	}

	return ds, nil
}

// missingRatings counts rows whose rating is the missing marker.
func (d *Dataset) missingRatings() int {
	n := 0
	for _, r := range d.Ratings {
		if math.IsNaN(r.Rating) {
			n++
		}
	}
	return n
}

// normalizeRating maps non-finite values to NaN, the missing-rating marker.
func normalizeRating(v float64) float64 {
	if math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// validate checks the invariants shared by all loaders.
func (d *Dataset) validate() error {
	if len(d.Movies) == 0 {
		return ErrEmptyCatalog
	}
	return nil
}
