// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinerank/internal/metrics"
)

// fakeContent returns a fixed ranking of row keys for every known key,
// skipping the query key.
type fakeContent struct {
	ranking []int
	calls   atomic.Int64
}

func (f *fakeContent) SimilarMovies(key, n int) ([]Neighbor, bool) {
	f.calls.Add(1)
	if key < 0 || key >= len(f.ranking)+1 {
		return nil, false
	}
	out := []Neighbor{}
	for _, k := range f.ranking {
		if k == key {
			continue
		}
		if len(out) == n {
			break
		}
		out = append(out, Neighbor{ID: k, Score: 1})
	}
	return out, true
}

func (f *fakeContent) Vocabulary() int { return 3 }

// fakeCollaborative recommends fixed movieIds per user.
type fakeCollaborative struct {
	recs  map[int][]int
	calls atomic.Int64
}

func (f *fakeCollaborative) RecommendForUser(userID, n int) ([]Neighbor, bool) {
	f.calls.Add(1)
	ids, ok := f.recs[userID]
	if !ok {
		return nil, false
	}
	out := []Neighbor{}
	for _, id := range ids {
		if len(out) == n {
			break
		}
		out = append(out, Neighbor{ID: id, Score: 1})
	}
	return out, true
}

func (f *fakeCollaborative) Users() []int {
	users := make([]int, 0, len(f.recs))
	for id := range f.recs {
		users = append(users, id)
	}
	return users
}

func (f *fakeCollaborative) NumMovies() int     { return 4 }
func (f *fakeCollaborative) NeighborCount() int { return 5 }

type engineFixture struct {
	engine        *Engine
	content       *fakeContent
	collaborative *fakeCollaborative
}

func newTestEngine(t *testing.T, cfg *Config) engineFixture {
	t.Helper()
	catalog := NewCatalog([]Movie{
		{ID: 1, Title: "Alpha"},
		{ID: 2, Title: "Bravo"},
		{ID: 3, Title: "Charlie"},
		{ID: 4, Title: "Delta"},
		{ID: 5, Title: "Echo"},
	})
	content := &fakeContent{ranking: []int{1, 2, 3, 4, 0}}
	collaborative := &fakeCollaborative{recs: map[int][]int{
		7: {3, 99, 5, 1},
		8: {},
	}}

	engine, err := NewEngine(cfg, Models{
		Catalog:       catalog,
		Content:       content,
		Collaborative: collaborative,
		Build:         BuildInfo{BuiltAt: time.Now()},
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engineFixture{engine: engine, content: content, collaborative: collaborative}
}

func TestNewEngine_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(nil, Models{}, zerolog.Nop()); err == nil {
		t.Error("expected error for missing models")
	}

	bad := DefaultConfig()
	bad.DefaultTopN = 0
	if _, err := NewEngine(bad, Models{}, zerolog.Nop()); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestEngine_RecommendContent(t *testing.T) {
	t.Parallel()
	f := newTestEngine(t, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		title string
		topN  int
		want  Result
	}{
		{"ranked titles", "Alpha", 2, Found([]string{"Bravo", "Charlie"})},
		{"query movie excluded", "Bravo", 3, Found([]string{"Charlie", "Delta", "Echo"})},
		{"default top n", "Alpha", 0, Found([]string{"Bravo", "Charlie", "Delta", "Echo"})},
		{"unknown title", "Zulu", 5, Missing(ReasonMovieNotFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.engine.RecommendContent(ctx, tt.title, tt.topN)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RecommendContent(%q, %d) = %+v, want %+v", tt.title, tt.topN, got, tt.want)
			}
		})
	}
}

func TestEngine_RecommendCollaborative(t *testing.T) {
	t.Parallel()
	f := newTestEngine(t, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		userID int
		topN   int
		want   Result
	}{
		// movieId 99 is rated but absent from the catalog
		{"uncatalogued ids skipped", 7, 5, Found([]string{"Charlie", "Echo", "Alpha"})},
		{"truncated", 7, 1, Found([]string{"Charlie"})},
		{"nothing to recommend", 8, 5, Found(nil)},
		{"unknown user", 42, 5, Missing(ReasonUserNotFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.engine.RecommendCollaborative(ctx, tt.userID, tt.topN)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RecommendCollaborative(%d, %d) = %+v, want %+v", tt.userID, tt.topN, got, tt.want)
			}
		})
	}
}

func TestEngine_HybridRecommendation(t *testing.T) {
	t.Parallel()
	f := newTestEngine(t, nil)
	ctx := context.Background()

	// Content for Alpha (top 4): Bravo, Charlie, Delta, Echo
	// Collaborative for 7 (top 4): Charlie, Echo, Alpha
	got := f.engine.HybridRecommendation(ctx, 7, "Alpha", 2)
	if want := Found([]string{"Charlie", "Echo"}); !reflect.DeepEqual(got, want) {
		t.Errorf("HybridRecommendation() = %+v, want %+v", got, want)
	}

	got = f.engine.HybridRecommendation(ctx, 42, "Zulu", 2)
	if want := Missing("Movie not found. User not found."); !reflect.DeepEqual(got, want) {
		t.Errorf("HybridRecommendation(unknown, unknown) = %+v, want %+v", got, want)
	}

	got = f.engine.HybridRecommendation(ctx, 42, "Alpha", 2)
	if want := Found([]string{"Bravo", "Charlie"}); !reflect.DeepEqual(got, want) {
		t.Errorf("HybridRecommendation(unknown user) = %+v, want %+v", got, want)
	}
}

func TestEngine_TopN(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.DefaultTopN = 1
	cfg.MaxTopN = 2
	f := newTestEngine(t, cfg)
	ctx := context.Background()

	// MaxTopN bounds the HTTP API only; the engine returns what was asked for.
	if got := f.engine.RecommendContent(ctx, "Alpha", 3); len(got.Titles) != 3 {
		t.Errorf("topN above MaxTopN returned %d titles, want 3", len(got.Titles))
	}
	// Asking for more than the catalog holds returns every other movie.
	if got := f.engine.RecommendContent(ctx, "Alpha", 50); len(got.Titles) != 4 {
		t.Errorf("topN 50 returned %d titles, want all 4 others", len(got.Titles))
	}
	if got := f.engine.RecommendContent(ctx, "Alpha", -3); len(got.Titles) != 1 {
		t.Errorf("negative topN returned %d titles, want default 1", len(got.Titles))
	}
}

func TestEngine_Cache(t *testing.T) {
	t.Parallel()
	f := newTestEngine(t, nil)
	ctx := context.Background()

	first := f.engine.RecommendContent(ctx, "Alpha", 2)
	second := f.engine.RecommendContent(ctx, "Alpha", 2)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
	if calls := f.content.calls.Load(); calls != 1 {
		t.Errorf("model called %d times, want 1", calls)
	}

	// Mutating a returned result must not corrupt the cache.
	second.Titles[0] = "mutated"
	third := f.engine.RecommendContent(ctx, "Alpha", 2)
	if third.Titles[0] != "Bravo" {
		t.Errorf("cache returned mutated result %v", third.Titles)
	}

	// Different top N is a different key.
	f.engine.RecommendContent(ctx, "Alpha", 3)
	if calls := f.content.calls.Load(); calls != 2 {
		t.Errorf("model called %d times, want 2", calls)
	}

	// NotFound results are cached too.
	f.engine.RecommendCollaborative(ctx, 42, 5)
	f.engine.RecommendCollaborative(ctx, 42, 5)
	if calls := f.collaborative.calls.Load(); calls != 1 {
		t.Errorf("collaborative model called %d times, want 1", calls)
	}

	s := f.engine.Status()
	if !s.CacheEnabled || s.Cache.Hits < 2 || s.Cache.Size != 3 {
		t.Errorf("Status().Cache = %+v, enabled=%v", s.Cache, s.CacheEnabled)
	}
}

func TestEngine_CacheDisabled(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	f := newTestEngine(t, cfg)
	ctx := context.Background()

	f.engine.RecommendContent(ctx, "Alpha", 2)
	f.engine.RecommendContent(ctx, "Alpha", 2)
	if calls := f.content.calls.Load(); calls != 2 {
		t.Errorf("model called %d times, want 2 with caching off", calls)
	}
	if f.engine.CleanupCache() != 0 {
		t.Error("CleanupCache() should be a no-op without a cache")
	}
	if f.engine.Status().CacheEnabled {
		t.Error("Status().CacheEnabled = true")
	}
}

func TestEngine_CleanupCache(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Cache.TTL = time.Millisecond
	f := newTestEngine(t, cfg)

	f.engine.RecommendContent(context.Background(), "Alpha", 2)
	time.Sleep(5 * time.Millisecond)

	if removed := f.engine.CleanupCache(); removed != 1 {
		t.Errorf("CleanupCache() = %d, want 1", removed)
	}
}

func TestEngine_Metrics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	f := newTestEngine(t, cfg)
	ctx := context.Background()

	found := metrics.RecommendRequests.WithLabelValues(StrategyHybrid, metrics.OutcomeFound)
	notFound := metrics.RecommendRequests.WithLabelValues(StrategyHybrid, metrics.OutcomeNotFound)
	beforeFound, beforeNotFound := testutil.ToFloat64(found), testutil.ToFloat64(notFound)

	f.engine.HybridRecommendation(ctx, 7, "Alpha", 2)
	f.engine.HybridRecommendation(ctx, 42, "Zulu", 2)

	if got := testutil.ToFloat64(found) - beforeFound; got != 1 {
		t.Errorf("found delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(notFound) - beforeNotFound; got != 1 {
		t.Errorf("not_found delta = %v, want 1", got)
	}
}

func TestEngine_Status(t *testing.T) {
	t.Parallel()
	f := newTestEngine(t, nil)

	s := f.engine.Status()
	if s.Movies != 5 || s.Users != 2 || s.RatedMovies != 4 || s.Vocabulary != 3 || s.NeighborCount != 5 {
		t.Errorf("Status() = %+v", s)
	}
	if f.engine.Catalog().Len() != 5 {
		t.Error("Catalog() should expose the catalog")
	}
	if len(f.engine.Users()) != 2 {
		t.Errorf("Users() = %v", f.engine.Users())
	}

	cfg := f.engine.GetConfig()
	cfg.DefaultTopN = 99
	if f.engine.GetConfig().DefaultTopN != DefaultTopN {
		t.Error("GetConfig() must return a copy")
	}
}

func TestEngine_Concurrent(t *testing.T) {
	t.Parallel()
	f := newTestEngine(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				f.engine.RecommendContent(ctx, "Alpha", 1+i%4)
			case 1:
				f.engine.RecommendCollaborative(ctx, 7, 1+i%4)
			default:
				f.engine.HybridRecommendation(ctx, 7, "Bravo", 1+i%4)
			}
		}(i)
	}
	wg.Wait()
}
