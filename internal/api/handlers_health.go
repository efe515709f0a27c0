// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinerank/internal/models"
)

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	s := h.engine.Status()
	health := models.HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Model: models.ModelStatus{
			Movies:         s.Movies,
			Users:          s.Users,
			RatedMovies:    s.RatedMovies,
			Vocabulary:     s.Vocabulary,
			NeighborCount:  s.NeighborCount,
			ContentBuildMS: s.Build.ContentDuration.Milliseconds(),
			CollabBuildMS:  s.Build.CollaborativeDuration.Milliseconds(),
			BuiltAt:        s.Build.BuiltAt,
			CacheEnabled:   s.CacheEnabled,
			CacheEntries:   s.Cache.Size,
			CacheHits:      s.Cache.Hits,
			CacheMisses:    s.Cache.Misses,
		},
	}
	if s.Movies == 0 {
		health.Status = "degraded"
	}

	respondSuccess(w, r, start, health)
}
