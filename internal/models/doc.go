// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package models defines the HTTP API data transfer objects.

  - APIResponse, Metadata, APIError: the envelope every endpoint returns
  - RecommendationResponse: content, collaborative and hybrid results
  - MovieList, UserList: picker sources
  - HealthStatus, ModelStatus: liveness and model statistics

Domain types (movies, ratings, results) live in internal/recommend; this
package only shapes what goes over the wire.
*/
package models
