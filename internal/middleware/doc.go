// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: UUID-based request tracking; populates the logging context with
    request_id and correlation_id so engine logs can be joined to requests
  - PrometheusMetrics: request count, latency and in-flight instrumentation,
    labeled by chi route pattern rather than raw path

Both have the func(http.Handler) http.Handler shape expected by chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Get("/movies", handler.Movies)
	})

Labeling by route pattern keeps metric cardinality bounded: every request to
/api/v1/recommendations/user/{userID} shares one series regardless of the id.
*/
package middleware
