// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package cache provides a thread-safe, generic LRU cache with TTL expiration.

The recommendation engine uses it to memoize query results. Models are
immutable once built, so a cached result is only ever dropped for capacity or
age, never for staleness.

# Usage

	results := cache.NewLRU[recommend.Result](10000, 10*time.Minute)
	results.Add("content|toy story|5", res)
	if res, ok := results.Get("content|toy story|5"); ok {
		...
	}

Expired entries are removed lazily on Get and in bulk by CleanupExpired,
which the supervisor's cache sweep service calls on an interval.

# Thread Safety

All methods are safe for concurrent use. Get mutates recency order, so every
operation takes the same mutex.
*/
package cache
