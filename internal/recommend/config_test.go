// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package recommend

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("limits have valid defaults", func(t *testing.T) {
		if cfg.DefaultK != 5 {
			t.Errorf("DefaultK = %d, want 5", cfg.DefaultK)
		}
		if cfg.MaxK != 25 {
			t.Errorf("MaxK = %d, want 25", cfg.MaxK)
		}
	})

	t.Run("blocked tags are populated", func(t *testing.T) {
		if len(cfg.BlockedTags) != len(DefaultBlockedTags) {
			t.Errorf("BlockedTags = %v, want %v", cfg.BlockedTags, DefaultBlockedTags)
		}
	})

	t.Run("blocked tags are a copy", func(t *testing.T) {
		other := DefaultConfig()
		other.BlockedTags[0] = "changed"
		if DefaultBlockedTags[0] == "changed" {
			t.Error("DefaultConfig must not alias DefaultBlockedTags")
		}
	})

	t.Run("validates", func(t *testing.T) {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero default k", func(c *Config) { c.DefaultK = 0 }, true},
		{"max below default", func(c *Config) { c.MaxK = 2 }, true},
		{"max equals default", func(c *Config) { c.MaxK = c.DefaultK }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestConfig_ClampK(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		in, want int
	}{
		{-3, 5},
		{0, 5},
		{1, 1},
		{12, 12},
		{25, 25},
		{26, 25},
		{1000, 25},
	}

	for _, tt := range tests {
		if got := cfg.ClampK(tt.in); got != tt.want {
			t.Errorf("ClampK(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestConfig_IsBlocked(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		tags []Tag
		want bool
	}{
		{"no tags", nil, false},
		{"clean", []Tag{{ID: 1, Name: "Puzzle"}, {ID: 2, Name: "Co-op"}}, false},
		{"exact", []Tag{{ID: 3, Name: "Nudity"}}, true},
		{"case insensitive", []Tag{{ID: 4, Name: "sexual content"}}, true},
		{"padded", []Tag{{ID: 5, Name: " NSFW "}}, true},
		{"substring is not a match", []Tag{{ID: 6, Name: "Mature Themes"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.IsBlocked(tt.tags); got != tt.want {
				t.Errorf("IsBlocked(%v) = %v, want %v", tt.tags, got, tt.want)
			}
		})
	}
}
