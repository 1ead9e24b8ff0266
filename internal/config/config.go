// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package config

import (
	"time"

	"github.com/tomtom215/gamefinder/internal/catalog"
	"github.com/tomtom215/gamefinder/internal/fuzzy"
	"github.com/tomtom215/gamefinder/internal/logging"
	"github.com/tomtom215/gamefinder/internal/recommend"
)

// Config holds all application configuration
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Logging   LoggingConfig   `koanf:"logging"`
	Fuzzy     FuzzyConfig     `koanf:"fuzzy"`
	Recommend RecommendConfig `koanf:"recommend"`
	Typo      TypoConfig      `koanf:"typo"`
	Cache     CacheConfig     `koanf:"cache"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// CatalogConfig locates the catalog snapshot.
type CatalogConfig struct {
	// Path is a .json, .yaml or .yml snapshot file.
	Path string `koanf:"path" validate:"required,notblank"`

	// SuggestLimit bounds phonetic suggestions for searches with no match.
	SuggestLimit int `koanf:"suggest_limit" validate:"gte=1"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// FuzzyConfig holds name matching thresholds.
type FuzzyConfig struct {
	EditThreshold  float64 `koanf:"edit_threshold" validate:"gte=0,lte=100"`
	TokenThreshold float64 `koanf:"token_threshold" validate:"gte=0,lte=100"`

	// MinConfidence rejects single-best matches scoring below it. 0 disables it.
	MinConfidence float64 `koanf:"min_confidence" validate:"gte=0,lte=100"`
}

// RecommendConfig holds tag-overlap recommendation settings.
type RecommendConfig struct {
	DefaultK       int      `koanf:"default_k" validate:"gte=1"`
	MaxK           int      `koanf:"max_k" validate:"gte=1"`
	BlockedTags    []string `koanf:"blocked_tags"`
	ExcludeBlocked bool     `koanf:"exclude_blocked"`
}

// TypoConfig holds random typo fixture settings.
type TypoConfig struct {
	// Seed of 0 seeds from the clock on every request.
	Seed            int64   `koanf:"seed"`
	VerifyThreshold float64 `koanf:"verify_threshold" validate:"gte=0,lt=100"`
	MaxSample       int     `koanf:"max_sample" validate:"gte=1"`
	Workers         int     `koanf:"workers" validate:"gte=1"`
}

// CacheConfig holds the fuzzy result cache settings.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries" validate:"gte=0"`
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	// Textfile, when set, receives the Prometheus text exposition on exit.
	Textfile string `koanf:"textfile"`
}

// CatalogOptions converts the configuration into catalog service options.
func (c *Config) CatalogOptions() catalog.Options {
	blocked := make([]string, len(c.Recommend.BlockedTags))
	copy(blocked, c.Recommend.BlockedTags)

	return catalog.Options{
		Thresholds: fuzzy.Thresholds{
			Edit:  c.Fuzzy.EditThreshold,
			Token: c.Fuzzy.TokenThreshold,
		},
		MinConfidence: c.Fuzzy.MinConfidence,
		Recommend: recommend.Config{
			DefaultK:       c.Recommend.DefaultK,
			MaxK:           c.Recommend.MaxK,
			BlockedTags:    blocked,
			ExcludeBlocked: c.Recommend.ExcludeBlocked,
		},
		Typo: catalog.TypoOptions{
			Seed:            c.Typo.Seed,
			VerifyThreshold: c.Typo.VerifyThreshold,
			MaxSample:       c.Typo.MaxSample,
			Workers:         c.Typo.Workers,
		},
		CacheEnabled:    c.Cache.Enabled,
		CacheTTL:        c.Cache.TTL,
		CacheMaxEntries: c.Cache.MaxEntries,
		SuggestLimit:    c.Catalog.SuggestLimit,
	}
}

// LoggingOptions converts the configuration into logger settings.
func (c *Config) LoggingOptions() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}
