// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package algorithms

import (
	"context"
	"testing"

	"github.com/tomtom215/cinerank/internal/recommend"
)

// testMovies is a small catalog with several animated family titles that
// overlap "Toy Story" and a few unrelated ones.
func testMovies() []recommend.Movie {
	return []recommend.Movie{
		{ID: 10, Title: "Toy Story", GenreText: "Animation|Comedy|Family"},
		{ID: 20, Title: "Shrek", GenreText: "Animation|Comedy|Family"},
		{ID: 30, Title: "Monsters, Inc.", GenreText: "Animation|Comedy|Family|Fantasy"},
		{ID: 40, Title: "Finding Nemo", GenreText: "Animation|Family"},
		{ID: 50, Title: "Aladdin", GenreText: "Animation|Comedy|Musical"},
		{ID: 60, Title: "Heat", GenreText: "Action|Crime|Thriller"},
		{ID: 70, Title: "Up", GenreText: "Animation|Adventure"},
		{ID: 80, Title: "Se7en", GenreText: "Crime|Mystery|Thriller"},
		{ID: 90, Title: "Untitled", GenreText: ""},
	}
}

// testRatings gives user 1 exactly {10: 5.0, 20: 3.0}.
func testRatings() []recommend.Rating {
	rows := map[int]map[int]float64{
		1: {10: 5, 20: 3},
		2: {10: 4, 20: 3, 30: 5, 40: 2},
		3: {10: 5, 30: 4, 50: 3},
		4: {20: 2, 40: 5, 60: 1},
		5: {70: 4},
		6: {10: 1, 80: 5},
		7: {20: 4, 30: 1, 90: 2},
	}
	var ratings []recommend.Rating
	for user := 1; user <= 7; user++ {
		for movie := 10; movie <= 90; movie += 10 {
			if r, ok := rows[user][movie]; ok {
				ratings = append(ratings, recommend.Rating{UserID: user, MovieID: movie, Rating: r})
			}
		}
	}
	return ratings
}

func buildTestContent(t *testing.T) (*ContentBased, *recommend.Catalog) {
	t.Helper()
	catalog := recommend.NewCatalog(testMovies())
	cb, err := NewContentBased(context.Background(), catalog, ContentConfig{NumWorkers: 3})
	if err != nil {
		t.Fatalf("NewContentBased() error = %v", err)
	}
	return cb, catalog
}

func buildTestCF(t *testing.T) *UserBasedCF {
	t.Helper()
	cf, err := NewUserBasedCF(context.Background(), testRatings(), CollaborativeConfig{NumWorkers: 2})
	if err != nil {
		t.Fatalf("NewUserBasedCF() error = %v", err)
	}
	return cf
}

func approxEqual(a, b float64) bool {
	const eps = 1e-4
	d := a - b
	return d < eps && d > -eps
}
