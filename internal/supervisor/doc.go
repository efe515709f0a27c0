// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package supervisor provides process supervision for Cinerank using suture v4.

# Overview

	RootSupervisor ("cinerank")
	├── DataSupervisor ("data-layer")
	│   └── CacheSweepService (when the result cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Models are built before the tree starts and never change afterwards, so the
data layer only carries maintenance of the result cache. Each layer counts
failures independently: a sweeper that keeps crashing backs off without the
HTTP server being restarted.

Supervisor events (service failures, restarts, backoff) are logged through
sutureslog, with the slog records routed into zerolog by the logging package.

# Usage Example

	slogger := slog.New(logging.NewSlogHandler())
	tree, err := supervisor.NewSupervisorTree(slogger, supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}

	tree.AddDataService(services.NewCacheSweepService(engine, cfg.Recommend.CacheSweepInterval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tree.Serve(ctx)

# Testing

MockService fails a configurable number of runs and then blocks until
canceled, which is enough to observe restarts and layer isolation.

See also:
  - internal/supervisor/services: suture.Service wrappers
  - github.com/thejerf/suture/v4
*/
package supervisor
