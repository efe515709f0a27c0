// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import "sort"

// mergeByFrequency ranks titles by how often they occur in candidates and
// returns at most n distinct titles. Ties keep first-seen order.
func mergeByFrequency(candidates []string, n int) []string {
	if n <= 0 || len(candidates) == 0 {
		return []string{}
	}

	counts := make(map[string]int, len(candidates))
	order := make([]string, 0, len(candidates))
	for _, title := range candidates {
		if counts[title] == 0 {
			order = append(order, title)
		}
		counts[title]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}

// mergeHybrid combines a content and a collaborative result.
// NotFound sides contribute no candidates; the merge is NotFound only when
// both sides are.
func mergeHybrid(content, collaborative Result, n int) Result {
	if content.NotFound && collaborative.NotFound {
		return Missing(content.Reason + " " + collaborative.Reason)
	}

	candidates := make([]string, 0, len(content.Titles)+len(collaborative.Titles))
	if content.IsFound() {
		candidates = append(candidates, content.Titles...)
	}
	if collaborative.IsFound() {
		candidates = append(candidates, collaborative.Titles...)
	}
	return Found(mergeByFrequency(candidates, n))
}
