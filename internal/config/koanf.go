// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/gamefinder/internal/catalog"
	"github.com/tomtom215/gamefinder/internal/fuzzy"
	"github.com/tomtom215/gamefinder/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/gamefinder/config.yaml",
	"/etc/gamefinder/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	opts := catalog.DefaultOptions()

	return &Config{
		Catalog: CatalogConfig{
			Path:         "catalog.json",
			SuggestLimit: opts.SuggestLimit,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Fuzzy: FuzzyConfig{
			EditThreshold:  fuzzy.DefaultEditThreshold,
			TokenThreshold: fuzzy.DefaultTokenThreshold,
			MinConfidence:  0, // no floor; the best candidate always wins
		},
		Recommend: RecommendConfig{
			DefaultK:       opts.Recommend.DefaultK,
			MaxK:           opts.Recommend.MaxK,
			BlockedTags:    append([]string(nil), recommend.DefaultBlockedTags...),
			ExcludeBlocked: false,
		},
		Typo: TypoConfig{
			Seed:            opts.Typo.Seed,
			VerifyThreshold: opts.Typo.VerifyThreshold,
			MaxSample:       opts.Typo.MaxSample,
			Workers:         opts.Typo.Workers,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: opts.CacheMaxEntries,
		},
		Metrics: MetricsConfig{
			Textfile: "",
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"recommend.blocked_tags",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML lists arrive as slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		// An empty value clears the list.
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	"catalog_path":          "catalog.path",
	"catalog_suggest_limit": "catalog.suggest_limit",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"fuzzy_edit_threshold":  "fuzzy.edit_threshold",
	"fuzzy_token_threshold": "fuzzy.token_threshold",
	"fuzzy_min_confidence":  "fuzzy.min_confidence",

	"recommend_default_k":       "recommend.default_k",
	"recommend_max_k":           "recommend.max_k",
	"blocked_content_tags":      "recommend.blocked_tags",
	"recommend_exclude_blocked": "recommend.exclude_blocked",

	"typo_seed":             "typo.seed",
	"typo_verify_threshold": "typo.verify_threshold",
	"typo_max_sample":       "typo.max_sample",
	"typo_workers":          "typo.workers",

	"cache_enabled":     "cache.enabled",
	"cache_ttl":         "cache.ttl",
	"cache_max_entries": "cache.max_entries",

	"metrics_textfile": "metrics.textfile",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - CATALOG_PATH -> catalog.path
//   - LOG_LEVEL -> logging.level
//   - BLOCKED_CONTENT_TAGS -> recommend.blocked_tags
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated variables never reach the config.
	return ""
}

// GetKoanfInstance returns a new Koanf instance for custom configuration sources.
func GetKoanfInstance() *koanf.Koanf {
	return koanf.New(".")
}
