// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// DuckDB driver - read_csv does the parsing in-process
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/cinerank/internal/recommend"
)

// DuckDBReader reads dataset tables through an in-memory DuckDB connection.
type DuckDBReader struct {
	db *sql.DB
}

// NewDuckDBReader opens an in-memory DuckDB connection.
func NewDuckDBReader() (*DuckDBReader, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	// A single connection keeps the in-memory database consistent.
	db.SetMaxOpenConns(1)
	return &DuckDBReader{db: db}, nil
}

// Close closes the database connection.
func (r *DuckDBReader) Close() error {
	return r.db.Close()
}

// LoadDuckDB reads the movies and ratings tables with DuckDB's read_csv.
func LoadDuckDB(ctx context.Context, moviesPath, ratingsPath string) (*Dataset, error) {
	reader, err := NewDuckDBReader()
	if err != nil {
		return nil, err
	}
	defer reader.Close() //nolint:errcheck // in-memory database, nothing to flush

	movies, err := reader.ReadMovies(ctx, moviesPath)
	if err != nil {
		return nil, err
	}
	ratings, err := reader.ReadRatings(ctx, ratingsPath)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Movies: movies, Ratings: ratings}
	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", moviesPath, err)
	}
	return ds, nil
}

// ReadMovies returns the catalog rows in file order. All columns are read as
// text and cast explicitly so type sniffing cannot reinterpret titles.
func (r *DuckDBReader) ReadMovies(ctx context.Context, path string) ([]recommend.Movie, error) {
	columns, err := r.columns(ctx, path)
	if err != nil {
		return nil, err
	}
	genres := "''"
	if columns[colGenres] {
		genres = fmt.Sprintf("COALESCE(%s, '')", colGenres)
	}

	query := fmt.Sprintf(`
		SELECT
			CAST(%s AS BIGINT),
			COALESCE(%s, ''),
			%s
		FROM %s`,
		colMovieID, colTitle, genres, readCSV(path))

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query movies %s: %w", path, err)
	}
	defer rows.Close() //nolint:errcheck // checked via rows.Err

	var movies []recommend.Movie
	for rows.Next() {
		var (
			id     int64
			m      recommend.Movie
			genres string
		)
		if err := rows.Scan(&id, &m.Title, &genres); err != nil {
			return nil, fmt.Errorf("scan movie row %d of %s: %w", len(movies)+1, path, err)
		}
		m.ID = int(id)
		m.GenreText = genres
		m.Genres = recommend.SplitGenres(genres)
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read movies %s: %w", path, err)
	}
	return movies, nil
}

// ReadRatings returns every rating row. A timestamp column, if present, is ignored.
func (r *DuckDBReader) ReadRatings(ctx context.Context, path string) ([]recommend.Rating, error) {
	query := fmt.Sprintf(`
		SELECT
			CAST(%s AS BIGINT),
			CAST(%s AS BIGINT),
			CAST(%s AS DOUBLE)
		FROM %s`,
		colUserID, colMovieID, colRating, readCSV(path))

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ratings %s: %w", path, err)
	}
	defer rows.Close() //nolint:errcheck // checked via rows.Err

	var ratings []recommend.Rating
	for rows.Next() {
		var userID, movieID int64
		var rating float64
		if err := rows.Scan(&userID, &movieID, &rating); err != nil {
			return nil, fmt.Errorf("scan rating row %d of %s: %w", len(ratings)+1, path, err)
		}
		ratings = append(ratings, recommend.Rating{UserID: int(userID), MovieID: int(movieID), Rating: normalizeRating(rating)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read ratings %s: %w", path, err)
	}
	return ratings, nil
}

// columns returns the header names of the CSV file at path.
func (r *DuckDBReader) columns(ctx context.Context, path string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT * FROM "+readCSV(path)+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("query header %s: %w", path, err)
	}
	defer rows.Close() //nolint:errcheck // header only

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}
	columns := make(map[string]bool, len(names))
	for _, name := range names {
		columns[name] = true
	}
	return columns, nil
}

// readCSV renders a read_csv table function call for path.
func readCSV(path string) string {
	return fmt.Sprintf("read_csv(%s, header = true, all_varchar = true)", quoteLiteral(path))
}

// quoteLiteral quotes s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
