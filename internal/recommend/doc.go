// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

// Package recommend implements the movie recommendation facade.
//
// # Architecture
//
// Three strategies are served from immutable models built once at startup:
//
//   - Content: TF-IDF genre vectors compared with a linear kernel
//   - Collaborative: user-based filtering over a dense rating matrix
//   - Hybrid: a frequency merge of widened content and collaborative lists
//
// The models themselves live in the algorithms subpackage; this package owns
// the Catalog, the query contracts and the Engine that ties them together.
//
// # Results
//
// Queries never fail. An unknown title or user produces a Result with
// NotFound set and a Reason ("Movie not found." or "User not found."). The
// hybrid merge ignores NotFound sides, so a reason string is never ranked as a
// title.
//
// # Usage
//
//	engine, err := algorithms.BuildEngine(ctx, movies, ratings, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	res := engine.RecommendContent(ctx, "Toy Story", 5)
//	if res.NotFound {
//	    fmt.Println(res.Reason)
//	}
//
// # Thread Safety
//
// Models are read-only after construction. The only shared mutable state is
// the result cache, which locks internally.
package recommend
