// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed by the API at /metrics in Prometheus text format:

	curl http://localhost:8501/metrics

# Available Metrics

Recommendation:
  - cinerank_recommend_requests_total: queries (counter)
    Labels: strategy, outcome
  - cinerank_recommend_duration_seconds: query latency (histogram)
    Labels: strategy

Model:
  - cinerank_model_build_duration_seconds: last build time (gauge)
    Labels: model
  - cinerank_catalog_movies, cinerank_rating_users: dataset size (gauges)

Result cache:
  - cinerank_result_cache_hits_total, cinerank_result_cache_misses_total
  - cinerank_result_cache_entries, cinerank_result_cache_expired_total

HTTP API:
  - cinerank_api_requests_total: requests (counter)
    Labels: route, status
  - cinerank_api_request_duration_seconds: latency (histogram)
    Labels: route
  - cinerank_api_active_requests: in-flight requests (gauge)
  - cinerank_api_rate_limit_hits_total: rejections (counter)
    Labels: route

# Usage

	start := time.Now()
	res := engine.RecommendContent(ctx, title, k)
	metrics.RecordRecommendation("content", !res.NotFound, time.Since(start))

Route labels are chi route patterns, never raw paths, so label cardinality
stays bounded.
*/
package metrics
