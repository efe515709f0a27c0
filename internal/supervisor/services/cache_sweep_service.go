// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const defaultSweepInterval = time.Minute

// CacheCleaner drops expired cached results and reports how many were removed.
// *recommend.Engine satisfies it.
type CacheCleaner interface {
	CleanupCache() int
}

// CacheSweepService periodically evicts expired recommendation results so
// idle entries do not hold memory until they are next looked up.
type CacheSweepService struct {
	cleaner  CacheCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheSweepService creates a sweeper. A non-positive interval falls back to one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheSweepService(cleaner CacheCleaner, interval time.Duration, logger zerolog.Logger) *CacheSweepService {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &CacheSweepService{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger.With().Str("service", "cache-sweep").Logger(),
		name:     "cache-sweep",
	}
}

// Serve implements suture.Service.
func (s *CacheSweepService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("cache sweeper running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if removed := s.cleaner.CleanupCache(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired results evicted")
			}
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *CacheSweepService) String() string {
	return s.name
}
