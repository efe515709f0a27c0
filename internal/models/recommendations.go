// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package models

import "time"

// RecommendationResponse is the payload of every recommendation endpoint.
//
// Items mirrors the legacy single-list rendering: the titles when Found,
// otherwise a one-element list holding Reason.
type RecommendationResponse struct {
	Strategy string   `json:"strategy"`
	Title    string   `json:"title,omitempty"`
	UserID   *int     `json:"user_id,omitempty"`
	K        int      `json:"k"`
	Found    bool     `json:"found"`
	Reason   string   `json:"reason,omitempty"`
	Titles   []string `json:"titles"`
	Items    []string `json:"items"`
}

// MovieList backs the movie picker.
type MovieList struct {
	Total  int      `json:"total"`
	Titles []string `json:"titles"`
}

// UserList backs the user picker.
type UserList struct {
	Total   int   `json:"total"`
	UserIDs []int `json:"user_ids"`
}

// ModelStatus summarizes the loaded models.
type ModelStatus struct {
	Movies         int       `json:"movies"`
	Users          int       `json:"users"`
	RatedMovies    int       `json:"rated_movies"`
	Vocabulary     int       `json:"vocabulary"`
	NeighborCount  int       `json:"neighbor_count"`
	ContentBuildMS int64     `json:"content_build_ms"`
	CollabBuildMS  int64     `json:"collaborative_build_ms"`
	BuiltAt        time.Time `json:"built_at"`
	CacheEnabled   bool      `json:"cache_enabled"`
	CacheEntries   int       `json:"cache_entries"`
	CacheHits      int64     `json:"cache_hits"`
	CacheMisses    int64     `json:"cache_misses"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status  string      `json:"status"`
	Version string      `json:"version"`
	Uptime  float64     `json:"uptime_seconds"`
	Model   ModelStatus `json:"model"`
}
