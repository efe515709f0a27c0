// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package algorithms

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/cinerank/internal/recommend"
)

func neighborIDs(neighbors []recommend.Neighbor) []int {
	ids := make([]int, len(neighbors))
	for i, nb := range neighbors {
		ids[i] = nb.ID
	}
	return ids
}

func equalInts(a, b []int) bool {
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

func TestContentBased_SimilarMovies(t *testing.T) {
	t.Parallel()
	cb, catalog := buildTestContent(t)

	toyStory, ok := catalog.Key("Toy Story")
	if !ok {
		t.Fatal("Toy Story missing from catalog")
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"top five", 5, []string{"Shrek", "Finding Nemo", "Monsters, Inc.", "Aladdin", "Up"}},
		{"top one", 1, []string{"Shrek"}},
		{"more than catalog", 50, []string{
			"Shrek", "Finding Nemo", "Monsters, Inc.", "Aladdin", "Up", "Heat", "Se7en", "Untitled",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			neighbors, ok := cb.SimilarMovies(toyStory, tt.n)
			if !ok {
				t.Fatal("SimilarMovies() ok = false")
			}
			if len(neighbors) != len(tt.want) {
				t.Fatalf("got %d neighbors, want %d", len(neighbors), len(tt.want))
			}
			for i, nb := range neighbors {
				m, _ := catalog.Movie(nb.ID)
				if m.Title != tt.want[i] {
					t.Errorf("neighbor[%d] = %q, want %q", i, m.Title, tt.want[i])
				}
			}
		})
	}
}

func TestContentBased_ScoresNonIncreasing(t *testing.T) {
	t.Parallel()
	cb, _ := buildTestContent(t)

	for key := 0; key < cb.Len(); key++ {
		neighbors, _ := cb.SimilarMovies(key, cb.Len())
		if len(neighbors) != cb.Len()-1 {
			t.Fatalf("key %d: got %d neighbors, want %d", key, len(neighbors), cb.Len()-1)
		}
		for i, nb := range neighbors {
			if nb.ID == key {
				t.Errorf("key %d returned itself", key)
			}
			if i > 0 && nb.Score > neighbors[i-1].Score {
				t.Errorf("key %d: score rose at %d", key, i)
			}
		}
	}
}

func TestContentBased_IdenticalGenres(t *testing.T) {
	t.Parallel()
	cb, catalog := buildTestContent(t)

	shrek, _ := catalog.Key("Shrek")
	toyStory, _ := catalog.Key("Toy Story")

	neighbors, _ := cb.SimilarMovies(shrek, 1)
	if len(neighbors) != 1 || neighbors[0].ID != toyStory {
		t.Errorf("Shrek nearest = %v, want Toy Story (key %d)", neighborIDs(neighbors), toyStory)
	}
	if !approxEqual(cb.Similarity(shrek, toyStory), 1) {
		t.Errorf("Similarity(Shrek, Toy Story) = %f, want 1", cb.Similarity(shrek, toyStory))
	}
}

func TestContentBased_Similarity(t *testing.T) {
	t.Parallel()
	cb, catalog := buildTestContent(t)

	key := func(title string) int {
		k, ok := catalog.Key(title)
		if !ok {
			t.Fatalf("missing %q", title)
		}
		return k
	}

	tests := []struct {
		a, b string
		want float64
	}{
		{"Toy Story", "Toy Story", 1},
		{"Toy Story", "Monsters, Inc.", 0.7257},
		{"Toy Story", "Finding Nemo", 0.7884},
		{"Toy Story", "Aladdin", 0.5040},
		{"Toy Story", "Up", 0.2274},
		{"Toy Story", "Heat", 0},
		{"Heat", "Se7en", 0.5879},
		{"Untitled", "Untitled", 0},
	}

	for _, tt := range tests {
		got := cb.Similarity(key(tt.a), key(tt.b))
		if !approxEqual(got, tt.want) {
			t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
		}
	}

	// Out-of-range keys
	if got := cb.Similarity(-1, 0); got != 0 {
		t.Errorf("Similarity(-1, 0) = %f, want 0", got)
	}
	if got := cb.Similarity(0, cb.Len()); got != 0 {
		t.Errorf("Similarity(0, n) = %f, want 0", got)
	}
}

func TestContentBased_Symmetric(t *testing.T) {
	t.Parallel()
	cb, _ := buildTestContent(t)

	for a := 0; a < cb.Len(); a++ {
		for b := 0; b < cb.Len(); b++ {
			sab, sba := cb.Similarity(a, b), cb.Similarity(b, a)
			if sab != sba {
				t.Errorf("Similarity(%d,%d)=%v != Similarity(%d,%d)=%v", a, b, sab, b, a, sba)
			}
			if sab < 0 || sab > 1+1e-9 {
				t.Errorf("Similarity(%d,%d)=%v out of [0,1]", a, b, sab)
			}
		}
	}
}

func TestContentBased_EmptyGenresTieOrder(t *testing.T) {
	t.Parallel()
	cb, catalog := buildTestContent(t)

	untitled, _ := catalog.Key("Untitled")
	neighbors, ok := cb.SimilarMovies(untitled, 3)
	if !ok {
		t.Fatal("SimilarMovies() ok = false")
	}

	// All scores are zero, so rows come back in catalog order.
	if got := neighborIDs(neighbors); !equalInts(got, []int{0, 1, 2}) {
		t.Errorf("neighbors = %v, want [0 1 2]", got)
	}
	for _, nb := range neighbors {
		if nb.Score != 0 {
			t.Errorf("score = %f, want 0", nb.Score)
		}
	}
}

func TestContentBased_Edges(t *testing.T) {
	t.Parallel()
	cb, _ := buildTestContent(t)

	if _, ok := cb.SimilarMovies(-1, 5); ok {
		t.Error("negative key should not be found")
	}
	if _, ok := cb.SimilarMovies(cb.Len(), 5); ok {
		t.Error("key past the end should not be found")
	}

	neighbors, ok := cb.SimilarMovies(0, 0)
	if !ok || len(neighbors) != 0 {
		t.Errorf("SimilarMovies(0, 0) = %v, %v; want empty, true", neighbors, ok)
	}

	if cb.Vocabulary() != 10 {
		t.Errorf("Vocabulary() = %d, want 10", cb.Vocabulary())
	}
	if cb.Name() != "content" {
		t.Errorf("Name() = %q", cb.Name())
	}
	if cb.BuiltAt().IsZero() {
		t.Error("BuiltAt() should be set after build")
	}
}

func TestContentBased_PreSplitGenres(t *testing.T) {
	t.Parallel()
	catalog := recommend.NewCatalog([]recommend.Movie{
		{ID: 1, Title: "A", Genres: []string{"Drama", "War"}},
		{ID: 2, Title: "B", GenreText: "Drama|War"},
		{ID: 3, Title: "C", GenreText: "Comedy"},
	})

	cb, err := NewContentBased(context.Background(), catalog, ContentConfig{})
	if err != nil {
		t.Fatalf("NewContentBased() error = %v", err)
	}
	if !approxEqual(cb.Similarity(0, 1), 1) {
		t.Errorf("Similarity(A, B) = %f, want 1", cb.Similarity(0, 1))
	}
}

func TestContentBased_EmptyCatalog(t *testing.T) {
	t.Parallel()
	cb, err := NewContentBased(context.Background(), recommend.NewCatalog(nil), ContentConfig{})
	if err != nil {
		t.Fatalf("NewContentBased() error = %v", err)
	}
	if cb.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cb.Len())
	}
	if _, ok := cb.SimilarMovies(0, 5); ok {
		t.Error("empty model should find nothing")
	}
}

func TestContentBased_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewContentBased(context.Background(), nil, ContentConfig{}); err == nil {
		t.Error("expected error for nil catalog")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewContentBased(ctx, recommend.NewCatalog(testMovies()), ContentConfig{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func BenchmarkContentBased_SimilarMovies(b *testing.B) {
	catalog := recommend.NewCatalog(testMovies())
	cb, err := NewContentBased(context.Background(), catalog, ContentConfig{})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cb.SimilarMovies(i%cb.Len(), 5)
	}
}
