// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package api provides the HTTP REST API layer for Cinerank.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for the recommendation endpoints
  - Response formatting: the {status, data, metadata, error} envelope
  - Request validation: go-playground/validator structs

Endpoints:

	GET /api/v1/health                                    liveness and model status
	GET /api/v1/movies                                    sorted titles
	GET /api/v1/users                                     sorted user ids
	GET /api/v1/recommendations/content?title=&k=         content strategy
	GET /api/v1/recommendations/user/{userID}?k=          collaborative strategy
	GET /api/v1/recommendations/hybrid?user_id=&title=&k= hybrid strategy
	GET /metrics                                          Prometheus exposition

An unknown title or user is not an error: recommendation endpoints answer 200
with found=false and the reason. Malformed parameters answer 400 with code
VALIDATION_ERROR.

Usage Example:

	handler := api.NewHandler(engine, version)
	router := api.NewRouter(handler, cfg)
	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())

Middleware order (outermost first): request ID with logging context, real IP,
panic recovery, CORS, then for /api/v1: rate limiting, security headers,
Prometheus metrics, per-request timeout and gzip compression.
*/
package api
