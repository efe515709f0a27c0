// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

// Package logging provides centralized zerolog-based logging for Cinerank.
//
// A single global logger is configured once at startup and shared by every
// package. JSON output is the default; console output is meant for local
// development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("movies", n).Msg("Catalog loaded")
//	logging.Error().Err(err).Msg("Dataset load failed")
//
//	// With request context (correlation and request IDs)
//	logging.Ctx(ctx).Debug().Str("title", title).Msg("Content query")
//
// # Configuration
//
// Environment variables (read by the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # slog interoperability
//
// NewSlogLogger returns a *slog.Logger that writes through zerolog. The
// supervisor tree uses it to feed suture events into the same log stream.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
