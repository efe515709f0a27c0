// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package services provides suture.Service wrappers for Cinerank components.

Each wrapper implements the suture v4 Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and identifies itself through fmt.Stringer for supervisor log messages.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe pattern to Serve
  - http.ErrServerClosed is treated as a clean stop

Cache Sweeper (CacheSweepService):
  - Periodically drops expired entries from the engine result cache
  - Runs on a ticker and stops on context cancellation

# Usage

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	tree.AddDataService(services.NewCacheSweepService(engine, cfg.Recommend.CacheSweepInterval, logger))
*/
package services
