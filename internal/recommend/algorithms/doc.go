// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

// Package algorithms implements the similarity models behind the
// recommendation engine.
//
// # Models
//
//   - ContentBased: TF-IDF over pipe-delimited genre tokens, linear kernel
//     over all movie pairs (implements recommend.ContentModel)
//   - UserBasedCF: cosine similarity over a dense user x movie rating pivot,
//     neighbor-mean scoring (implements recommend.CollaborativeModel)
//
// Both models compute their full pairwise similarity matrix once, in
// parallel row chunks, and are read-only afterwards.
//
// # Determinism
//
// Every ranking uses a stable sort, so equal scores keep catalog row order
// (content) or ascending movieId order (collaborative). The query movie and
// the query user are excluded by identity, never by position.
//
// # Usage
//
//	engine, err := algorithms.BuildEngine(ctx, movies, ratings, cfg, logger)
//
// BuildEngine records model build durations and dataset sizes in Prometheus.
package algorithms
