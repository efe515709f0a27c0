// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import "time"

// ContentModel ranks catalog rows by descriptive similarity.
type ContentModel interface {
	// SimilarMovies returns the n rows most similar to key, excluding key
	// itself, by non-increasing score. ok is false for an unknown key.
	SimilarMovies(key, n int) (neighbors []Neighbor, ok bool)

	// Vocabulary returns the number of distinct descriptive tokens.
	Vocabulary() int
}

// CollaborativeModel ranks movies for a user from similar users' ratings.
type CollaborativeModel interface {
	// RecommendForUser returns up to n movieIds the user has not rated
	// positively, by non-increasing score. ok is false for an unknown user.
	RecommendForUser(userID, n int) (neighbors []Neighbor, ok bool)

	// Users returns the known user ids in ascending order.
	Users() []int

	// NumMovies returns the number of rated movies (matrix columns).
	NumMovies() int

	// NeighborCount returns how many similar users feed a query.
	NeighborCount() int
}

// Models bundles everything an Engine serves from. All members are
// immutable once built.
type Models struct {
	Catalog       *Catalog
	Content       ContentModel
	Collaborative CollaborativeModel
	Build         BuildInfo
}

// BuildInfo records how long model construction took.
type BuildInfo struct {
	ContentDuration       time.Duration `json:"content_duration"`
	CollaborativeDuration time.Duration `json:"collaborative_duration"`
	BuiltAt               time.Time     `json:"built_at"`
}
