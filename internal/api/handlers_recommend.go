// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinerank/internal/logging"
	"github.com/tomtom215/cinerank/internal/models"
	"github.com/tomtom215/cinerank/internal/recommend"
)

// Strategy names reported in responses.
const (
	StrategyContent       = "content"
	StrategyCollaborative = "collaborative"
	StrategyHybrid        = "hybrid"
)

// ContentRecommendations handles GET /api/v1/recommendations/content?title=&k=
func (h *Handler) ContentRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	k, apiErr := parseIntQuery(r, "k")
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	req := ContentRecommendationRequest{Title: r.URL.Query().Get("title"), K: k}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	if apiErr := checkK(req.K, h.engine.GetConfig().MaxTopN); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	res := h.engine.RecommendContent(r.Context(), req.Title, req.K)
	h.logResult(r, StrategyContent, res)

	respondSuccess(w, r, start, h.recommendationResponse(StrategyContent, req.Title, nil, req.K, res))
}

// UserRecommendations handles GET /api/v1/recommendations/user/{userID}?k=
func (h *Handler) UserRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, apiErr := parseUserID("userID", chi.URLParam(r, "userID"))
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	k, apiErr := parseIntQuery(r, "k")
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	req := UserRecommendationRequest{UserID: userID, K: k}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	if apiErr := checkK(req.K, h.engine.GetConfig().MaxTopN); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	res := h.engine.RecommendCollaborative(r.Context(), req.UserID, req.K)
	h.logResult(r, StrategyCollaborative, res)

	respondSuccess(w, r, start, h.recommendationResponse(StrategyCollaborative, "", &req.UserID, req.K, res))
}

// HybridRecommendations handles GET /api/v1/recommendations/hybrid?user_id=&title=&k=
func (h *Handler) HybridRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	k, apiErr := parseIntQuery(r, "k")
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	q := r.URL.Query()
	req := HybridRecommendationRequest{UserID: q.Get("user_id"), Title: q.Get("title"), K: k}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	userID, apiErr := parseUserID("user_id", req.UserID)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	if apiErr := checkK(req.K, h.engine.GetConfig().MaxTopN); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	res := h.engine.HybridRecommendation(r.Context(), userID, req.Title, req.K)
	h.logResult(r, StrategyHybrid, res)

	respondSuccess(w, r, start, h.recommendationResponse(StrategyHybrid, req.Title, &userID, req.K, res))
}

// Movies handles GET /api/v1/movies
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	titles := h.engine.Catalog().Titles()
	respondSuccess(w, r, start, models.MovieList{Total: len(titles), Titles: titles})
}

// Users handles GET /api/v1/users
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	users := h.engine.Users()
	if users == nil {
		users = []int{}
	}
	respondSuccess(w, r, start, models.UserList{Total: len(users), UserIDs: users})
}

func (h *Handler) recommendationResponse(strategy, title string, userID *int, k int, res recommend.Result) models.RecommendationResponse {
	titles := res.Titles
	if titles == nil {
		titles = []string{}
	}
	return models.RecommendationResponse{
		Strategy: strategy,
		Title:    title,
		UserID:   userID,
		K:        h.effectiveK(k),
		Found:    res.IsFound(),
		Reason:   res.Reason,
		Titles:   titles,
		Items:    res.Items(),
	}
}

func (h *Handler) logResult(r *http.Request, strategy string, res recommend.Result) {
	logging.Ctx(r.Context()).Debug().
		Str("strategy", strategy).
		Bool("found", res.IsFound()).
		Int("titles", len(res.Titles)).
		Msg("Recommendation served")
}
