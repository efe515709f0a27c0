// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerank/internal/config"
	"github.com/tomtom215/cinerank/internal/recommend"
)

type stubEngine struct{}

func (stubEngine) RecommendContent(_ context.Context, title string, _ int) recommend.Result {
	if title != "Toy Story" {
		return recommend.Missing(recommend.ReasonMovieNotFound)
	}
	return recommend.Found([]string{"Shrek", "Up"})
}

func (stubEngine) RecommendCollaborative(_ context.Context, userID, _ int) recommend.Result {
	if userID != 1 {
		return recommend.Missing(recommend.ReasonUserNotFound)
	}
	return recommend.Found([]string{"Heat"})
}

func (stubEngine) HybridRecommendation(_ context.Context, _ int, _ string, _ int) recommend.Result {
	return recommend.Found(nil)
}

func TestPrintRecommendations(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printRecommendations(context.Background(), &buf, stubEngine{}, "Toy Story", 1, 5)

	want := `Content-based recommendations for "Toy Story":
 1. Shrek
 2. Up

Collaborative recommendations for user 1:
 1. Heat

Hybrid recommendations for user 1 and "Toy Story":
`
	if got := buf.String(); got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintRecommendations_NotFound(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printRecommendations(context.Background(), &buf, stubEngine{}, "Nope", 9, 5)

	out := buf.String()
	for _, line := range []string{" 1. Movie not found.", " 1. User not found."} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestBuildEngineConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Recommend: config.RecommendConfig{
		DefaultTopN:         3,
		MaxTopN:             50,
		NeighborCount:       7,
		CandidateMultiplier: 4,
		Workers:             2,
		CacheEnabled:        true,
		CacheTTL:            time.Minute,
		CacheSize:           64,
	}}

	got := buildEngineConfig(cfg)
	want := &recommend.Config{
		DefaultTopN:         3,
		MaxTopN:             50,
		NeighborCount:       7,
		CandidateMultiplier: 4,
		NumWorkers:          2,
		Cache:               recommend.CacheConfig{Enabled: true, TTL: time.Minute, MaxEntries: 64},
	}
	if *got != *want {
		t.Errorf("buildEngineConfig() = %+v, want %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("mapped config should validate: %v", err)
	}
}

func TestInitEngine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	movies := filepath.Join(dir, "movies.csv")
	ratings := filepath.Join(dir, "ratings.csv")
	if err := os.WriteFile(movies, []byte("movieId,title,genres\n1,Toy Story,Animation|Comedy\n2,Shrek,Animation|Comedy\n3,Heat,Crime\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ratings, []byte("userId,movieId,rating\n1,1,5\n2,1,4\n2,2,3\n2,3,1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Data: config.DataConfig{MoviesPath: movies, RatingsPath: ratings, Loader: config.LoaderCSV},
		Recommend: config.RecommendConfig{
			DefaultTopN: 5, MaxTopN: 10, NeighborCount: 5, CandidateMultiplier: 2,
		},
	}

	engine, err := initEngine(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("initEngine() error = %v", err)
	}
	res := engine.RecommendContent(context.Background(), "Toy Story", 1)
	if !res.IsFound() || len(res.Titles) != 1 || res.Titles[0] != "Shrek" {
		t.Errorf("RecommendContent(Toy Story, 1) = %+v, want [Shrek]", res)
	}

	cfg.Data.MoviesPath = filepath.Join(dir, "missing.csv")
	if _, err := initEngine(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Error("initEngine() with missing movies file should fail")
	}
}
