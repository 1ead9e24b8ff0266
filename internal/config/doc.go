// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

/*
Package config provides centralized configuration management for Gamefinder.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, then config.yaml, config.yml,
    /etc/gamefinder/config.yaml and /etc/gamefinder/config.yml
 3. Environment variables

# Environment Variables

Catalog:
  - CATALOG_PATH: Snapshot file, .json/.yaml/.yml (default: catalog.json)
  - CATALOG_SUGGEST_LIMIT: Phonetic suggestions for empty searches (default: 5)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Add caller file:line (default: false)

Fuzzy matching:
  - FUZZY_EDIT_THRESHOLD: Minimum edit similarity for search (default: 60)
  - FUZZY_TOKEN_THRESHOLD: Minimum token overlap for search (default: 25)
  - FUZZY_MIN_CONFIDENCE: Floor for single-best lookups, 0 disables (default: 0)

Recommendations:
  - RECOMMEND_DEFAULT_K: Results when none requested (default: 5)
  - RECOMMEND_MAX_K: Upper bound on requested results (default: 25)
  - BLOCKED_CONTENT_TAGS: Comma-separated adult content tags
  - RECOMMEND_EXCLUDE_BLOCKED: Drop flagged apps from results (default: false)

Typo fixtures:
  - TYPO_SEED: Random seed, 0 seeds from the clock (default: 42)
  - TYPO_VERIFY_THRESHOLD: Score a typo must exceed to be kept (default: 75)
  - TYPO_MAX_SAMPLE: Fixtures per request cap (default: 25)
  - TYPO_WORKERS: Concurrent generators (default: 4)

Cache:
  - CACHE_ENABLED: Memoize fuzzy resolutions (default: true)
  - CACHE_TTL: Entry lifetime (default: 5m)
  - CACHE_MAX_ENTRIES: Size bound, 0 is unbounded (default: 10000)

Metrics:
  - METRICS_TEXTFILE: Write Prometheus text exposition here on exit

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Error().Err(err).Msg("Failed to load configuration")
	    return exitError
	}
	logging.Init(cfg.LoggingOptions())
	svc, err := catalog.NewService(snap, cfg.CatalogOptions(), logging.WithComponent("catalog"))
*/
package config
