// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package main is the entry point for the Cinerank server.

Cinerank answers "what should I watch next" with three strategies over a
MovieLens-style dataset: genre similarity (content), similar users
(collaborative) and a frequency merge of both (hybrid).

# Startup

 1. Configuration: Koanf v2 with defaults, an optional YAML file and environment variables
 2. Logging: zerolog with JSON or console output
 3. Dataset: movies.csv and ratings.csv through the csv or duckdb loader
 4. Models: TF-IDF similarity matrix and user similarity, built once
 5. Supervisor tree: cache sweeper and HTTP server under suture v4

Models are immutable after startup. Reloading the dataset means restarting
the process.

# Flags

	-once          answer one query for each strategy on stdout and exit
	-title string  movie title for -once (default "Toy Story")
	-user int      user id for -once (default 1)
	-k int         number of titles for -once (default 5)

# Example Usage

	export MOVIES_PATH=/srv/movielens/movies.csv
	export RATINGS_PATH=/srv/movielens/ratings.csv
	./cinerank

	curl 'localhost:8501/api/v1/recommendations/hybrid?user_id=1&title=Toy+Story'

	./cinerank -once -title "Heat" -user 42

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for HTTP_SHUTDOWN_TIMEOUT before the process exits.
*/
package main
