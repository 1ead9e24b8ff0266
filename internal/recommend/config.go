// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package recommend

import (
	"fmt"
	"strings"
)

// Config contains the caller-side limits and content filters applied around
// RankBySharedTags.
type Config struct {
	// DefaultK is used when a request does not ask for a specific count.
	// Default: 5.
	DefaultK int `json:"default_k"`

	// MaxK caps any requested count.
	// Default: 25.
	MaxK int `json:"max_k"`

	// BlockedTags are tag names that mark an entity as adult content.
	// Matching is case-insensitive.
	BlockedTags []string `json:"blocked_tags"`

	// ExcludeBlocked drops entities carrying a blocked tag from results.
	// Default: false (targets are only flagged).
	ExcludeBlocked bool `json:"exclude_blocked"`
}

// DefaultBlockedTags are the content tags flagged by default.
var DefaultBlockedTags = []string{"NSFW", "Nudity", "Mature", "Sexual Content", "Hentai"}

// DefaultConfig returns a Config with the standard limits.
func DefaultConfig() Config {
	blocked := make([]string, len(DefaultBlockedTags))
	copy(blocked, DefaultBlockedTags)

	return Config{
		DefaultK:       5,
		MaxK:           25,
		BlockedTags:    blocked,
		ExcludeBlocked: false,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be positive, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("max_k must be >= default_k, got %d < %d", c.MaxK, c.DefaultK)
	}
	return nil
}

// ClampK maps a requested count into [1, MaxK]. Non-positive requests fall
// back to DefaultK.
func (c Config) ClampK(k int) int {
	if k <= 0 {
		k = c.DefaultK
	}
	return min(max(k, 1), c.MaxK)
}

// IsBlocked reports whether any of tags is one of the blocked tag names.
func (c Config) IsBlocked(tags []Tag) bool {
	for _, t := range tags {
		for _, b := range c.BlockedTags {
			if strings.EqualFold(strings.TrimSpace(t.Name), strings.TrimSpace(b)) {
				return true
			}
		}
	}
	return false
}
