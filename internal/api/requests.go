// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/cinerank/internal/models"
)

// ContentRecommendationRequest holds the query of GET /recommendations/content.
type ContentRecommendationRequest struct {
	Title string `query:"title" validate:"notblank"`
	K     int    `query:"k" validate:"gte=0"`
}

// UserRecommendationRequest holds the parameters of GET /recommendations/user/{userID}.
type UserRecommendationRequest struct {
	UserID int `query:"userID"`
	K      int `query:"k" validate:"gte=0"`
}

// HybridRecommendationRequest holds the query of GET /recommendations/hybrid.
type HybridRecommendationRequest struct {
	UserID string `query:"user_id" validate:"required"`
	Title  string `query:"title" validate:"notblank"`
	K      int    `query:"k" validate:"gte=0"`
}

// parseIntQuery reads an optional integer query parameter. An absent
// parameter yields 0, which the engine treats as "use the default".
func parseIntQuery(r *http.Request, key string) (int, *models.APIError) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidParam(key, fmt.Sprintf("%s must be an integer", key))
	}
	return n, nil
}

// parseUserID parses a user id from a path or query value.
func parseUserID(field, raw string) (int, *models.APIError) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalidParam(field, fmt.Sprintf("%s must be an integer", field))
	}
	return id, nil
}

// checkK rejects k above the engine's maximum.
func checkK(k, maxK int) *models.APIError {
	if k > maxK {
		return invalidParam("k", fmt.Sprintf("k must be less than or equal to %d", maxK))
	}
	return nil
}
