// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package algorithms

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/cinerank/internal/recommend"
)

// ContentConfig contains configuration for the content model.
type ContentConfig struct {
	// NumWorkers is the number of parallel similarity workers.
	// Zero means runtime.NumCPU().
	NumWorkers int
}

// ContentBased ranks movies by genre similarity.
//
// Each movie's genre field is tokenized on the separator, weighted with
// TF-IDF and L2-normalized, so the linear kernel of two vectors is their
// cosine similarity:
//
//	sim(a, b) = sum_t w(t, a) * w(t, b)
//
// The full pairwise matrix is computed once at construction. It is
// symmetric with entries in [0, 1]; a movie with no genre tokens has a zero
// vector and zero similarity to everything, itself included.
type ContentBased struct {
	BaseAlgorithm

	n          int
	vocabulary int

	// similarity is the row-major n x n similarity matrix indexed by row key
	similarity []float64
}

// NewContentBased builds the content model for every row of catalog.
func NewContentBased(ctx context.Context, catalog *recommend.Catalog, cfg ContentConfig) (*ContentBased, error) {
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	start := time.Now()

	movies := catalog.Movies()
	docs := make([][]string, len(movies))
	for i, m := range movies {
		docs[i] = movieTokens(m)
	}

	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	vectorizer, vectors := fitTransform(docs)

	n := len(vectors)
	c := &ContentBased{
		BaseAlgorithm: NewBaseAlgorithm("content"),
		n:             n,
		vocabulary:    vectorizer.size(),
		similarity:    make([]float64, n*n),
	}

	err := parallelRows(ctx, n, cfg.NumWorkers, func(row int) {
		out := c.similarity[row*n : (row+1)*n]
		for col := range out {
			out[col] = dot(vectors[row], vectors[col])
		}
	})
	if err != nil {
		return nil, fmt.Errorf("content similarity: %w", err)
	}

	c.markBuilt(start)
	return c, nil
}

// movieTokens tokenizes the raw genre field, falling back to pre-split genres
// when the raw field is absent.
func movieTokens(m recommend.Movie) []string {
	if m.GenreText != "" {
		return Tokenize(m.GenreText)
	}
	tokens := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		tokens = append(tokens, Tokenize(g)...)
	}
	return tokens
}

// Similarity returns the similarity between two row keys, or 0 when either
// key is out of range.
func (c *ContentBased) Similarity(a, b int) float64 {
	if a < 0 || a >= c.n || b < 0 || b >= c.n {
		return 0
	}
	return c.similarity[a*c.n+b]
}

// SimilarMovies returns the n rows most similar to key by non-increasing
// similarity. Equal scores keep row order. key itself is never returned.
func (c *ContentBased) SimilarMovies(key, n int) ([]recommend.Neighbor, bool) {
	if key < 0 || key >= c.n {
		return nil, false
	}
	if n <= 0 {
		return []recommend.Neighbor{}, true
	}

	row := c.similarity[key*c.n : (key+1)*c.n]
	candidates := make([]recommend.Neighbor, 0, c.n-1)
	for other, score := range row {
		if other == key {
			continue
		}
		candidates = append(candidates, recommend.Neighbor{ID: other, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates, true
}

// Vocabulary returns the number of distinct genre tokens.
func (c *ContentBased) Vocabulary() int {
	return c.vocabulary
}

// Len returns the number of rows in the model.
func (c *ContentBased) Len() int {
	return c.n
}
