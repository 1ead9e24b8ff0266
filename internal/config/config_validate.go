// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package config

import (
	"fmt"

	"github.com/tomtom215/gamefinder/internal/catalog"
	"github.com/tomtom215/gamefinder/internal/validation"
)

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	// The service re-checks the converted options; this catches anything
	// the per-section rules above do not cover.
	return c.CatalogOptions().Validate()
}

// validateCatalog validates the snapshot path
func (c *Config) validateCatalog() error {
	if _, err := catalog.FormatFromPath(c.Catalog.Path); err != nil {
		return fmt.Errorf("CATALOG_PATH is invalid: %w", err)
	}
	return nil
}

// validateRecommend validates recommendation limits
func (c *Config) validateRecommend() error {
	if c.Recommend.MaxK < c.Recommend.DefaultK {
		return fmt.Errorf("RECOMMEND_MAX_K (%d) must be at least RECOMMEND_DEFAULT_K (%d)",
			c.Recommend.MaxK, c.Recommend.DefaultK)
	}
	return nil
}

// validateCache validates cache settings (only if enabled)
func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when CACHE_ENABLED=true, got %s", c.Cache.TTL)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
