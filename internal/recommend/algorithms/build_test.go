// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package algorithms

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerank/internal/recommend"
)

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func buildTestEngine(t *testing.T) *recommend.Engine {
	t.Helper()
	engine, err := BuildEngine(context.Background(), testMovies(), testRatings(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildEngine() error = %v", err)
	}
	return engine
}

func TestBuildEngine_Content(t *testing.T) {
	t.Parallel()
	engine := buildTestEngine(t)
	ctx := context.Background()

	res := engine.RecommendContent(ctx, "Toy Story", 5)
	want := []string{"Shrek", "Finding Nemo", "Monsters, Inc.", "Aladdin", "Up"}
	if !res.IsFound() || !equalStrings(res.Titles, want) {
		t.Errorf("RecommendContent(Toy Story) = %+v, want %v", res, want)
	}

	res = engine.RecommendContent(ctx, "Nonexistent", 5)
	if res.IsFound() || res.Reason != recommend.ReasonMovieNotFound {
		t.Errorf("unknown title = %+v, want NotFound", res)
	}
}

func TestBuildEngine_Collaborative(t *testing.T) {
	t.Parallel()
	engine := buildTestEngine(t)
	ctx := context.Background()

	res := engine.RecommendCollaborative(ctx, 1, 5)
	want := []string{"Monsters, Inc.", "Finding Nemo", "Se7en", "Aladdin", "Untitled"}
	if !res.IsFound() || !equalStrings(res.Titles, want) {
		t.Errorf("RecommendCollaborative(1) = %+v, want %v", res, want)
	}

	res = engine.RecommendCollaborative(ctx, 99, 5)
	if res.IsFound() || res.Reason != recommend.ReasonUserNotFound {
		t.Errorf("unknown user = %+v, want NotFound", res)
	}
}

func TestBuildEngine_Hybrid(t *testing.T) {
	t.Parallel()
	engine := buildTestEngine(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		userID     int
		title      string
		want       []string
		wantReason string
	}{
		{
			// Every title but Shrek appears on both sides.
			name:   "both sides found",
			userID: 1,
			title:  "Toy Story",
			want:   []string{"Finding Nemo", "Monsters, Inc.", "Aladdin", "Up", "Heat"},
		},
		{
			name:   "unknown user falls back to content",
			userID: 99,
			title:  "Toy Story",
			want:   []string{"Shrek", "Finding Nemo", "Monsters, Inc.", "Aladdin", "Up"},
		},
		{
			name:   "unknown title falls back to collaborative",
			userID: 1,
			title:  "Nonexistent",
			want:   []string{"Monsters, Inc.", "Finding Nemo", "Se7en", "Aladdin", "Untitled"},
		},
		{
			name:       "both unknown",
			userID:     99,
			title:      "Nonexistent",
			wantReason: "Movie not found. User not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := engine.HybridRecommendation(ctx, tt.userID, tt.title, 5)
			if tt.wantReason != "" {
				if res.IsFound() || res.Reason != tt.wantReason {
					t.Errorf("got %+v, want NotFound %q", res, tt.wantReason)
				}
				return
			}
			if !res.IsFound() || !equalStrings(res.Titles, tt.want) {
				t.Errorf("got %+v, want %v", res, tt.want)
			}
		})
	}
}

func TestBuildEngine_Status(t *testing.T) {
	t.Parallel()
	engine := buildTestEngine(t)

	s := engine.Status()
	if s.Movies != 9 || s.Users != 7 || s.RatedMovies != 9 {
		t.Errorf("Status() sizes = %d movies, %d users, %d rated", s.Movies, s.Users, s.RatedMovies)
	}
	if s.Vocabulary != 10 {
		t.Errorf("Vocabulary = %d, want 10", s.Vocabulary)
	}
	if s.NeighborCount != recommend.DefaultNeighborCount {
		t.Errorf("NeighborCount = %d", s.NeighborCount)
	}
	if s.Build.BuiltAt.IsZero() {
		t.Error("Build.BuiltAt should be set")
	}
}

func TestBuildEngine_InvalidConfig(t *testing.T) {
	t.Parallel()
	cfg := recommend.DefaultConfig()
	cfg.NeighborCount = 0

	if _, err := BuildEngine(context.Background(), testMovies(), testRatings(), cfg, zerolog.Nop()); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestBuildEngine_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Either model may see the cancellation first; both wrap ctx.Err().
	_, err := BuildEngine(ctx, testMovies(), testRatings(), nil, zerolog.Nop())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("BuildEngine(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestBuildEngine_TopNAboveMax(t *testing.T) {
	t.Parallel()
	movies := make([]recommend.Movie, 150)
	for i := range movies {
		movies[i] = recommend.Movie{ID: i + 1, Title: fmt.Sprintf("M%03d", i), GenreText: "Drama"}
	}
	ratings := []recommend.Rating{{UserID: 1, MovieID: 1, Rating: 4}}

	engine, err := BuildEngine(context.Background(), movies, ratings, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildEngine() error = %v", err)
	}
	if engine.GetConfig().MaxTopN >= 120 {
		t.Fatalf("default MaxTopN = %d, test needs it below 120", engine.GetConfig().MaxTopN)
	}

	tests := []struct {
		topN int
		want int
	}{
		{120, 120},
		{149, 149},
		{500, 149},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.topN), func(t *testing.T) {
			res := engine.RecommendContent(context.Background(), "M000", tt.topN)
			if len(res.Titles) != tt.want {
				t.Errorf("RecommendContent(M000, %d) returned %d titles, want %d", tt.topN, len(res.Titles), tt.want)
			}
		})
	}
}
