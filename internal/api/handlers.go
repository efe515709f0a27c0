// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinerank/internal/recommend"
)

// Recommender is the engine surface the HTTP layer depends on.
// *recommend.Engine satisfies it.
type Recommender interface {
	RecommendContent(ctx context.Context, title string, topN int) recommend.Result
	RecommendCollaborative(ctx context.Context, userID, topN int) recommend.Result
	HybridRecommendation(ctx context.Context, userID int, title string, topN int) recommend.Result
	Catalog() *recommend.Catalog
	Users() []int
	GetConfig() *recommend.Config
	Status() recommend.Status
}

var _ Recommender = (*recommend.Engine)(nil)

// Handler handles all HTTP API requests
type Handler struct {
	engine    Recommender
	startTime time.Time
	version   string
}

// NewHandler creates a new Handler instance
func NewHandler(engine Recommender, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		engine:    engine,
		startTime: time.Now(),
		version:   version,
	}
}

// effectiveK resolves the k a response reports: zero means the engine default.
func (h *Handler) effectiveK(k int) int {
	if k <= 0 {
		return h.engine.GetConfig().DefaultTopN
	}
	return k
}
