// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tomtom215/cinerank/internal/recommend"
)

// ctxCheckInterval is how many rows are read between cancellation checks.
const ctxCheckInterval = 4096

// LoadCSV reads the movies and ratings tables from CSV files.
func LoadCSV(ctx context.Context, moviesPath, ratingsPath string) (*Dataset, error) {
	movies, err := readMoviesCSV(ctx, moviesPath)
	if err != nil {
		return nil, err
	}
	ratings, err := readRatingsCSV(ctx, ratingsPath)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Movies: movies, Ratings: ratings}
	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", moviesPath, err)
	}
	return ds, nil
}

func readMoviesCSV(ctx context.Context, path string) ([]recommend.Movie, error) {
	var movies []recommend.Movie

	err := scanCSV(ctx, path, []string{colMovieID, colTitle}, func(t *csvTable) error {
		id, err := t.int(colMovieID)
		if err != nil {
			return err
		}
		genres := t.optional(colGenres)
		movies = append(movies, recommend.Movie{
			ID:        id,
			Title:     t.optional(colTitle),
			GenreText: genres,
			Genres:    recommend.SplitGenres(genres),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func readRatingsCSV(ctx context.Context, path string) ([]recommend.Rating, error) {
	var ratings []recommend.Rating

	err := scanCSV(ctx, path, []string{colUserID, colMovieID, colRating}, func(t *csvTable) error {
		userID, err := t.int(colUserID)
		if err != nil {
			return err
		}
		movieID, err := t.int(colMovieID)
		if err != nil {
			return err
		}
		rating, err := t.float(colRating)
		if err != nil {
			return err
		}
		ratings = append(ratings, recommend.Rating{UserID: userID, MovieID: movieID, Rating: normalizeRating(rating)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// csvTable exposes the current record by column name.
type csvTable struct {
	path    string
	reader  *csv.Reader
	columns map[string]int
	record  []string
}

func (t *csvTable) line(col int) int {
	if col >= len(t.record) {
		col = 0
	}
	line, _ := t.reader.FieldPos(col)
	return line
}

// raw returns the named field, or "" when the record is too short to hold it.
func (t *csvTable) raw(name string) (string, int) {
	col := t.columns[name]
	if col >= len(t.record) {
		return "", col
	}
	return t.record[col], col
}

// optional returns the named field, or "" when the column is absent.
func (t *csvTable) optional(name string) string {
	col, ok := t.columns[name]
	if !ok || col >= len(t.record) {
		return ""
	}
	return t.record[col]
}

func (t *csvTable) int(name string) (int, error) {
	v, col := t.raw(name)
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s line %d: invalid %s %q: %w", t.path, t.line(col), name, v, err)
	}
	return n, nil
}

func (t *csvTable) float(name string) (float64, error) {
	v, col := t.raw(name)
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: invalid %s %q: %w", t.path, t.line(col), name, v, err)
	}
	return f, nil
}

// scanCSV opens path, resolves the header against required and calls row for
// every data record.
func scanCSV(ctx context.Context, path string, required []string, row func(*csvTable) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	r := csv.NewReader(f)
	r.ReuseRecord = true
	// Trailing optional fields may be absent.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w: file has no header", path, ErrMissingColumn)
	}
	if err != nil {
		return fmt.Errorf("read %s header: %w", path, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return fmt.Errorf("%s: %w %q", path, ErrMissingColumn, name)
		}
	}

	t := &csvTable{path: path, reader: r, columns: columns}
	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 && ctx.Err() != nil {
			return ctx.Err()
		}

		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		t.record = record

		if err := row(t); err != nil {
			return err
		}
	}
}
