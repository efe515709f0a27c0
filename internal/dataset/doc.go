// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

/*
Package dataset loads the movie catalog and the ratings table.

Two files are read:

	movies.csv   movieId,title,genres
	ratings.csv  userId,movieId,rating[,timestamp]

Columns are located by header name, so column order does not matter and extra
columns are ignored. Catalog rows keep their file order; the recommendation
models key movies by it.

# Loaders

  - LoadCSV reads both files with encoding/csv.
  - LoadDuckDB reads both files through an in-memory DuckDB connection using
    read_csv, which is considerably faster on the full MovieLens dataset.
  - Load picks one of them from config.DataConfig.Loader.

Malformed numeric fields are errors that name the file and line. A catalog
with no rows is reported as ErrEmptyCatalog.
*/
package dataset
