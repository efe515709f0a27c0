// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero default top n", func(c *Config) { c.DefaultTopN = 0 }, true},
		{"max below default", func(c *Config) { c.MaxTopN = 2 }, true},
		{"zero neighbors", func(c *Config) { c.NeighborCount = 0 }, true},
		{"zero multiplier", func(c *Config) { c.CandidateMultiplier = 0 }, true},
		{"negative workers", func(c *Config) { c.NumWorkers = -1 }, true},
		{"cache zero ttl", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"cache zero entries", func(c *Config) { c.Cache.MaxEntries = 0 }, true},
		{"disabled cache ignores sizing", func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.TTL = 0
			c.Cache.MaxEntries = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.NeighborCount = 42
	clone.Cache.Enabled = false

	if cfg.NeighborCount != DefaultNeighborCount || !cfg.Cache.Enabled {
		t.Error("Clone() must not share state with the original")
	}
}
