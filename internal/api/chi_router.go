// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinerank/internal/config"
	"github.com/tomtom215/cinerank/internal/middleware"
)

const defaultRequestTimeout = 30 * time.Second

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	timeout       time.Duration
}

// NewRouter creates a Router. A nil cfg uses default middleware settings.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	router := &Router{
		handler: handler,
		timeout: defaultRequestTimeout,
	}
	if cfg == nil {
		router.chiMiddleware = NewChiMiddleware(nil)
		return router
	}

	router.chiMiddleware = NewChiMiddlewareFromConfig(cfg.Security)
	if cfg.Server.Timeout > 0 {
		router.timeout = cfg.Server.Timeout
	}
	return router
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(chimiddleware.Timeout(router.timeout))
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Get("/health", router.handler.Health)
		r.Get("/movies", router.handler.Movies)
		r.Get("/users", router.handler.Users)

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/content", router.handler.ContentRecommendations)
			r.Get("/user/{userID}", router.handler.UserRecommendations)
			r.Get("/hybrid", router.handler.HybridRecommendations)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
