// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package algorithms

import (
	"context"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/tomtom215/cinerank/internal/recommend"
)

// BaseAlgorithm provides common bookkeeping for all models.
type BaseAlgorithm struct {
	name          string
	builtAt       time.Time
	buildDuration time.Duration
}

// NewBaseAlgorithm creates a new base algorithm with the given name.
func NewBaseAlgorithm(name string) BaseAlgorithm {
	return BaseAlgorithm{
		name: name,
	}
}

// Name returns the model identifier.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// BuiltAt returns when the model finished building.
func (b *BaseAlgorithm) BuiltAt() time.Time {
	return b.builtAt
}

// BuildDuration returns how long the model took to build.
func (b *BaseAlgorithm) BuildDuration() time.Duration {
	return b.buildDuration
}

// markBuilt records build completion. Called once, before the model is shared.
func (b *BaseAlgorithm) markBuilt(start time.Time) {
	b.builtAt = time.Now()
	b.buildDuration = b.builtAt.Sub(start)
}

// workerCount resolves a configured worker count against the number of rows.
func workerCount(configured, rows int) int {
	workers := configured
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > rows {
		workers = rows
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// parallelRows calls fill for every row in [0, rows), splitting rows into
// contiguous chunks across workers. fill must only write state owned by its row.
func parallelRows(ctx context.Context, rows, workers int, fill func(row int)) error {
	if rows == 0 {
		return nil
	}
	workers = workerCount(workers, rows)
	chunkSize := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > rows {
			end = rows
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			for row := start; row < end; row++ {
				if ContextCancelled(ctx) {
					return
				}
				fill(row)
			}
		}(start, end)
	}

	wg.Wait()
	return ctx.Err()
}

// sparseEntry is one non-zero coordinate of a sparse vector.
type sparseEntry struct {
	index int
	value float64
}

// sparseVector holds non-zero coordinates in ascending index order.
type sparseVector []sparseEntry

// dot returns the inner product of two sparse vectors. Products are summed in
// ascending index order, so dot(a, b) == dot(b, a) exactly.
func dot(a, b sparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].index == b[j].index:
			sum += a[i].value * b[j].value
			i++
			j++
		case a[i].index < b[j].index:
			i++
		default:
			j++
		}
	}
	return sum
}

// l2Normalize scales v in place to unit length. Zero vectors stay zero.
func l2Normalize(v sparseVector) {
	var norm float64
	for _, e := range v {
		norm += e.value * e.value
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i].value /= norm
	}
}

// Ensure models implement the facade interfaces.
var (
	_ recommend.ContentModel       = (*ContentBased)(nil)
	_ recommend.CollaborativeModel = (*UserBasedCF)(nil)
)

// ContextCancelled checks if the context has been canceled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
