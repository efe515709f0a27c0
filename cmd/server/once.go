// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/tomtom215/cinerank/internal/recommend"
)

// oneShot is the part of the engine the -once mode queries.
type oneShot interface {
	RecommendContent(ctx context.Context, title string, topN int) recommend.Result
	RecommendCollaborative(ctx context.Context, userID, topN int) recommend.Result
	HybridRecommendation(ctx context.Context, userID int, title string, topN int) recommend.Result
}

// printRecommendations writes one numbered block per strategy. A NotFound
// result prints its reason as the only line.
func printRecommendations(ctx context.Context, w io.Writer, engine oneShot, title string, userID, k int) {
	blocks := []struct {
		heading string
		result  recommend.Result
	}{
		{fmt.Sprintf("Content-based recommendations for %q", title), engine.RecommendContent(ctx, title, k)},
		{fmt.Sprintf("Collaborative recommendations for user %d", userID), engine.RecommendCollaborative(ctx, userID, k)},
		{fmt.Sprintf("Hybrid recommendations for user %d and %q", userID, title), engine.HybridRecommendation(ctx, userID, title, k)},
	}

	for i, b := range blocks {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s:\n", b.heading)
		for j, item := range b.result.Items() {
			fmt.Fprintf(w, "%2d. %s\n", j+1, item)
		}
	}
}
