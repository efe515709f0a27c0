// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"slices"
	"strings"
)

// Strategy names used for metrics, logging and cache keys.
const (
	StrategyContent       = "content"
	StrategyCollaborative = "collaborative"
	StrategyHybrid        = "hybrid"
)

// Reasons reported by NotFound results.
const (
	ReasonMovieNotFound = "Movie not found."
	ReasonUserNotFound  = "User not found."
)

// GenreSeparator delimits genre tokens in the source genre field.
const GenreSeparator = "|"

// Movie is one catalog row.
type Movie struct {
	// Key is the stable row key assigned by the Catalog in load order.
	// Similarity matrices are indexed by it.
	Key int `json:"key"`

	// ID is the movieId from the source catalog.
	ID int `json:"id"`

	Title string `json:"title"`

	// Genres holds the pipe-separated tokens of GenreText, in source order.
	Genres []string `json:"genres"`

	// GenreText is the raw genre field. An absent field is "".
	GenreText string `json:"genre_text"`
}

// Rating is one explicit user rating. A NaN Rating is a missing value: the
// user and movie are still known but the cell stays empty.
type Rating struct {
	UserID  int     `json:"user_id"`
	MovieID int     `json:"movie_id"`
	Rating  float64 `json:"rating"`
}

// Neighbor is a ranked candidate returned by a similarity model.
// For content models ID is a catalog row key; for collaborative models it is a movieId.
type Neighbor struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

// SplitGenres splits a raw genre field into its tokens. Each maximal run of
// non-separator characters is one token; empty runs are dropped.
func SplitGenres(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, GenreSeparator)
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}

// Result is the outcome of a recommendation query: either a (possibly empty)
// list of titles or a NotFound marker carrying a human-readable reason.
type Result struct {
	Titles   []string `json:"titles"`
	NotFound bool     `json:"not_found"`
	Reason   string   `json:"reason,omitempty"`
}

// Found returns a successful result.
func Found(titles []string) Result {
	if titles == nil {
		titles = []string{}
	}
	return Result{Titles: titles}
}

// Missing returns a NotFound result with the given reason.
func Missing(reason string) Result {
	return Result{Titles: []string{}, NotFound: true, Reason: reason}
}

// IsFound reports whether the query subject existed.
func (r Result) IsFound() bool {
	return !r.NotFound
}

// Items renders the result as a single list: the titles, or a one-element
// list holding the reason for NotFound results.
func (r Result) Items() []string {
	if r.NotFound {
		return []string{r.Reason}
	}
	return slices.Clone(r.Titles)
}

// clone returns a copy that shares no memory with r.
func (r Result) clone() Result {
	r.Titles = slices.Clone(r.Titles)
	if r.Titles == nil {
		r.Titles = []string{}
	}
	return r
}
