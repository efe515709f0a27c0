// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerank/internal/cache"
	"github.com/tomtom215/cinerank/internal/logging"
	"github.com/tomtom215/cinerank/internal/metrics"
)

// Engine is the recommendation facade. It answers content, collaborative and
// hybrid queries against immutable models. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog       *Catalog
	content       ContentModel
	collaborative CollaborativeModel
	build         BuildInfo

	// results is nil when caching is disabled
	results *cache.LRU[Result]
}

// Status summarizes the models an Engine serves.
type Status struct {
	Movies        int         `json:"movies"`
	Users         int         `json:"users"`
	RatedMovies   int         `json:"rated_movies"`
	Vocabulary    int         `json:"vocabulary"`
	NeighborCount int         `json:"neighbor_count"`
	Build         BuildInfo   `json:"build"`
	CacheEnabled  bool        `json:"cache_enabled"`
	Cache         cache.Stats `json:"cache"`
}

// NewEngine creates a recommendation engine serving models.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, models Models, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if models.Catalog == nil || models.Content == nil || models.Collaborative == nil {
		return nil, errors.New("catalog, content and collaborative models are required")
	}

	e := &Engine{
		config:        cfg.Clone(),
		logger:        logger.With().Str("component", "recommend").Logger(),
		catalog:       models.Catalog,
		content:       models.Content,
		collaborative: models.Collaborative,
		build:         models.Build,
	}
	if cfg.Cache.Enabled {
		e.results = cache.NewLRU[Result](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	return e, nil
}

// RecommendContent returns the topN movies whose genres are most similar to
// title. An unknown title yields a NotFound result.
func (e *Engine) RecommendContent(ctx context.Context, title string, topN int) Result {
	topN = e.prepareTopN(topN)
	return e.serve(ctx, StrategyContent, contentKey(title, topN), func() Result {
		return e.contentTitles(title, topN)
	})
}

// RecommendCollaborative returns the topN movies rated highest by the users
// most similar to userID, skipping movies the user already rated. An unknown
// user yields a NotFound result.
func (e *Engine) RecommendCollaborative(ctx context.Context, userID, topN int) Result {
	topN = e.prepareTopN(topN)
	return e.serve(ctx, StrategyCollaborative, collaborativeKey(userID, topN), func() Result {
		return e.collaborativeTitles(userID, topN)
	})
}

// HybridRecommendation blends a widened content query for title with a
// widened collaborative query for userID and keeps the topN titles that occur
// most often across both. Ties keep first-seen order, content first.
func (e *Engine) HybridRecommendation(ctx context.Context, userID int, title string, topN int) Result {
	topN = e.prepareTopN(topN)
	return e.serve(ctx, StrategyHybrid, hybridKey(userID, title, topN), func() Result {
		candidates := topN * e.config.CandidateMultiplier
		return mergeHybrid(
			e.contentTitles(title, candidates),
			e.collaborativeTitles(userID, candidates),
			topN,
		)
	})
}

// serve wraps a query with caching, metrics and logging.
func (e *Engine) serve(ctx context.Context, strategy, key string, compute func() Result) Result {
	start := time.Now()
	logger := e.createRequestLogger(ctx, strategy)

	if res, ok := e.tryGetCached(key); ok {
		metrics.RecordRecommendation(strategy, res.IsFound(), time.Since(start))
		logger.Debug().Str("cache_key", key).Msg("cache hit")
		return res
	}

	res := compute()
	e.storeCache(key, res)

	metrics.RecordRecommendation(strategy, res.IsFound(), time.Since(start))
	logger.Debug().
		Bool("found", res.IsFound()).
		Int("returned", len(res.Titles)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return res.clone()
}

func (e *Engine) contentTitles(title string, n int) Result {
	key, ok := e.catalog.Key(title)
	if !ok {
		return Missing(ReasonMovieNotFound)
	}
	neighbors, ok := e.content.SimilarMovies(key, n)
	if !ok {
		return Missing(ReasonMovieNotFound)
	}

	titles := make([]string, 0, len(neighbors))
	for _, nb := range neighbors {
		if m, ok := e.catalog.Movie(nb.ID); ok {
			titles = append(titles, m.Title)
		}
	}
	return Found(titles)
}

func (e *Engine) collaborativeTitles(userID, n int) Result {
	neighbors, ok := e.collaborative.RecommendForUser(userID, n)
	if !ok {
		return Missing(ReasonUserNotFound)
	}

	// Movies rated but absent from the catalog are skipped, not padded.
	titles := make([]string, 0, len(neighbors))
	for _, nb := range neighbors {
		if title, ok := e.catalog.Title(nb.ID); ok {
			titles = append(titles, title)
		}
	}
	return Found(titles)
}

// prepareTopN applies the default. Larger requests are honored as is.
func (e *Engine) prepareTopN(topN int) int {
	if topN <= 0 {
		return e.config.DefaultTopN
	}
	return topN
}

func (e *Engine) createRequestLogger(ctx context.Context, strategy string) zerolog.Logger {
	logCtx := e.logger.With().Str("strategy", strategy)
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}
	if correlationID := logging.CorrelationIDFromContext(ctx); correlationID != "" {
		logCtx = logCtx.Str("correlation_id", correlationID)
	}
	return logCtx.Logger()
}

func (e *Engine) tryGetCached(key string) (Result, bool) {
	if e.results == nil {
		return Result{}, false
	}
	res, ok := e.results.Get(key)
	metrics.RecordCacheLookup(ok)
	if !ok {
		return Result{}, false
	}
	return res.clone(), true
}

func (e *Engine) storeCache(key string, res Result) {
	if e.results != nil {
		e.results.Add(key, res.clone())
	}
}

// Cache keys end with the free-text title so they cannot collide.
func contentKey(title string, n int) string {
	return StrategyContent + "|" + strconv.Itoa(n) + "|" + title
}

func collaborativeKey(userID, n int) string {
	return StrategyCollaborative + "|" + strconv.Itoa(n) + "|" + strconv.Itoa(userID)
}

func hybridKey(userID int, title string, n int) string {
	return StrategyHybrid + "|" + strconv.Itoa(n) + "|" + strconv.Itoa(userID) + "|" + title
}

// CleanupCache removes expired cached results and returns how many were removed.
func (e *Engine) CleanupCache() int {
	if e.results == nil {
		return 0
	}
	removed := e.results.CleanupExpired()
	metrics.RecordCacheSweep(removed, e.results.Len())
	return removed
}

// Catalog returns the movie catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Users returns the known user ids in ascending order.
func (e *Engine) Users() []int {
	return e.collaborative.Users()
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// Status returns model statistics.
func (e *Engine) Status() Status {
	s := Status{
		Movies:        e.catalog.Len(),
		Users:         len(e.collaborative.Users()),
		RatedMovies:   e.collaborative.NumMovies(),
		Vocabulary:    e.content.Vocabulary(),
		NeighborCount: e.collaborative.NeighborCount(),
		Build:         e.build,
		CacheEnabled:  e.results != nil,
	}
	if e.results != nil {
		s.Cache = e.results.Stats()
	}
	return s
}
