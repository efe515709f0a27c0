// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package algorithms

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/tomtom215/cinerank/internal/recommend"
)

// CollaborativeConfig contains configuration for user-based filtering.
type CollaborativeConfig struct {
	// NeighborCount is the number of most similar users to average.
	// Default: recommend.DefaultNeighborCount.
	NeighborCount int

	// NumWorkers is the number of parallel similarity workers.
	// Zero means runtime.NumCPU().
	NumWorkers int
}

// UserBasedCF implements user-based collaborative filtering.
//
// Ratings are pivoted into a user x movie matrix (users and movies in
// ascending id order, duplicate ratings averaged, missing or NaN cells 0). User
// similarity is the cosine of rating rows. For a target user u with the
// NeighborCount most similar other users N(u):
//
//	score(u, i) = (1 / |N(u)|) * sum_{v in N(u)} r(v, i)
//
// Movies u rated with a positive value are never recommended.
type UserBasedCF struct {
	BaseAlgorithm
	config CollaborativeConfig

	userIDs   []int
	movieIDs  []int
	userIndex map[int]int

	// ratings holds each user's row, sparse over movie columns
	ratings []sparseVector

	// similarity is the row-major users x users cosine matrix
	similarity []float64
}

// NewUserBasedCF builds the collaborative model from ratings.
func NewUserBasedCF(ctx context.Context, ratings []recommend.Rating, cfg CollaborativeConfig) (*UserBasedCF, error) {
	if cfg.NeighborCount <= 0 {
		cfg.NeighborCount = recommend.DefaultNeighborCount
	}
	start := time.Now()

	u := &UserBasedCF{
		BaseAlgorithm: NewBaseAlgorithm("collaborative"),
		config:        cfg,
	}
	u.pivot(ratings)

	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	// Cosine similarity is the dot product of unit-length rows.
	unit := make([]sparseVector, len(u.ratings))
	for i, row := range u.ratings {
		unit[i] = slices.Clone(row)
		l2Normalize(unit[i])
	}

	n := len(u.userIDs)
	u.similarity = make([]float64, n*n)
	err := parallelRows(ctx, n, cfg.NumWorkers, func(row int) {
		out := u.similarity[row*n : (row+1)*n]
		for col := range out {
			out[col] = dot(unit[row], unit[col])
		}
	})
	if err != nil {
		return nil, fmt.Errorf("user similarity: %w", err)
	}

	u.markBuilt(start)
	return u, nil
}

// pivot builds the id orderings and sparse rating rows.
func (u *UserBasedCF) pivot(ratings []recommend.Rating) {
	type cell struct{ user, movie int }
	sums := make(map[cell]float64, len(ratings))
	counts := make(map[cell]int, len(ratings))
	users := make(map[int]struct{})
	movies := make(map[int]struct{})

	for _, r := range ratings {
		users[r.UserID] = struct{}{}
		movies[r.MovieID] = struct{}{}
		if math.IsNaN(r.Rating) || math.IsInf(r.Rating, 0) {
			continue
		}
		k := cell{r.UserID, r.MovieID}
		sums[k] += r.Rating
		counts[k]++
	}

	u.userIDs = sortedKeys(users)
	u.movieIDs = sortedKeys(movies)

	u.userIndex = make(map[int]int, len(u.userIDs))
	for i, id := range u.userIDs {
		u.userIndex[id] = i
	}
	movieIndex := make(map[int]int, len(u.movieIDs))
	for i, id := range u.movieIDs {
		movieIndex[id] = i
	}

	u.ratings = make([]sparseVector, len(u.userIDs))
	for k, sum := range sums {
		mean := sum / float64(counts[k])
		if mean == 0 {
			continue
		}
		row := u.userIndex[k.user]
		u.ratings[row] = append(u.ratings[row], sparseEntry{index: movieIndex[k.movie], value: mean})
	}
	for _, row := range u.ratings {
		sort.Slice(row, func(i, j int) bool { return row[i].index < row[j].index })
	}
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Neighbors returns the NeighborCount users most similar to userID, excluding
// userID itself. Equal similarities keep ascending user order.
func (u *UserBasedCF) Neighbors(userID int) ([]recommend.Neighbor, bool) {
	idx, ok := u.userIndex[userID]
	if !ok {
		return nil, false
	}
	return u.neighbors(idx), true
}

func (u *UserBasedCF) neighbors(idx int) []recommend.Neighbor {
	n := len(u.userIDs)
	row := u.similarity[idx*n : (idx+1)*n]

	candidates := make([]recommend.Neighbor, 0, n)
	for other, sim := range row {
		if other == idx {
			continue
		}
		candidates = append(candidates, recommend.Neighbor{ID: u.userIDs[other], Score: sim})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > u.config.NeighborCount {
		candidates = candidates[:u.config.NeighborCount]
	}
	return candidates
}

// RecommendForUser returns up to n movieIds ranked by the mean rating of the
// user's neighbors. Equal means keep ascending movieId order. Movies the user
// rated with a positive value are skipped.
func (u *UserBasedCF) RecommendForUser(userID, n int) ([]recommend.Neighbor, bool) {
	idx, ok := u.userIndex[userID]
	if !ok {
		return nil, false
	}
	if n <= 0 {
		return []recommend.Neighbor{}, true
	}

	neighbors := u.neighbors(idx)

	means := make([]float64, len(u.movieIDs))
	for _, nb := range neighbors {
		for _, e := range u.ratings[u.userIndex[nb.ID]] {
			means[e.index] += e.value
		}
	}
	if len(neighbors) > 0 {
		for col := range means {
			means[col] /= float64(len(neighbors))
		}
	}

	watched := make(map[int]struct{}, len(u.ratings[idx]))
	for _, e := range u.ratings[idx] {
		if e.value > 0 {
			watched[e.index] = struct{}{}
		}
	}

	candidates := make([]recommend.Neighbor, 0, len(means)-len(watched))
	for col, mean := range means {
		if _, seen := watched[col]; seen {
			continue
		}
		candidates = append(candidates, recommend.Neighbor{ID: u.movieIDs[col], Score: mean})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates, true
}

// Similarity returns the cosine similarity of two users, or 0 when either is unknown.
func (u *UserBasedCF) Similarity(a, b int) float64 {
	ia, okA := u.userIndex[a]
	ib, okB := u.userIndex[b]
	if !okA || !okB {
		return 0
	}
	return u.similarity[ia*len(u.userIDs)+ib]
}

// Users returns the known user ids in ascending order.
func (u *UserBasedCF) Users() []int {
	return slices.Clone(u.userIDs)
}

// NumMovies returns the number of rated movies.
func (u *UserBasedCF) NumMovies() int {
	return len(u.movieIDs)
}

// NeighborCount returns how many similar users feed a query.
func (u *UserBasedCF) NeighborCount() int {
	return u.config.NeighborCount
}
