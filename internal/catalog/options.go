// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package catalog

import (
	"fmt"
	"time"

	"github.com/tomtom215/gamefinder/internal/fuzzy"
	"github.com/tomtom215/gamefinder/internal/recommend"
	"github.com/tomtom215/gamefinder/internal/typo"
)

// Sample size limits.
const (
	DefaultSampleCount = 15
	DefaultMaxSample   = 25
)

// TypoOptions controls random typo fixture generation.
type TypoOptions struct {
	// Seed drives app selection and corruption. 0 seeds from the clock.
	Seed int64

	// VerifyThreshold is the score a corruption must exceed to be kept.
	VerifyThreshold float64

	// MaxSample caps the number of fixtures per request.
	MaxSample int

	// Workers bounds concurrent fixture generation.
	Workers int
}

// Options configures a Service.
type Options struct {
	Thresholds fuzzy.Thresholds

	// MinConfidence rejects fuzzy matches scoring below it. 0 disables the floor.
	MinConfidence float64

	Recommend recommend.Config
	Typo      TypoOptions

	CacheEnabled    bool
	CacheTTL        time.Duration
	CacheMaxEntries int

	// SuggestLimit bounds phonetic suggestions returned for empty searches.
	SuggestLimit int
}

// DefaultOptions returns the standard service options.
func DefaultOptions() Options {
	return Options{
		Thresholds:    fuzzy.DefaultThresholds(),
		MinConfidence: 0,
		Recommend:     recommend.DefaultConfig(),
		Typo: TypoOptions{
			Seed:            42,
			VerifyThreshold: typo.DefaultVerifyThreshold,
			MaxSample:       DefaultMaxSample,
			Workers:         4,
		},
		CacheEnabled:    true,
		CacheTTL:        5 * time.Minute,
		CacheMaxEntries: 10000,
		SuggestLimit:    5,
	}
}

// Validate checks the options for errors.
func (o Options) Validate() error {
	if err := o.Thresholds.Validate(); err != nil {
		return err
	}
	if o.MinConfidence < 0 || o.MinConfidence > fuzzy.MaxScore {
		return fmt.Errorf("min confidence must be in [0, 100], got %f", o.MinConfidence)
	}
	if err := o.Recommend.Validate(); err != nil {
		return err
	}
	if o.Typo.VerifyThreshold < 0 || o.Typo.VerifyThreshold >= fuzzy.MaxScore {
		return fmt.Errorf("typo verify threshold must be in [0, 100), got %f", o.Typo.VerifyThreshold)
	}
	if o.Typo.MaxSample < 1 {
		return fmt.Errorf("typo max sample must be positive, got %d", o.Typo.MaxSample)
	}
	if o.Typo.Workers < 1 {
		return fmt.Errorf("typo workers must be positive, got %d", o.Typo.Workers)
	}
	if o.CacheEnabled && o.CacheTTL <= 0 {
		return fmt.Errorf("cache ttl must be positive when cache is enabled, got %s", o.CacheTTL)
	}
	return nil
}

// clampSample maps a requested fixture count into [1, MaxSample]. Zero
// selects DefaultSampleCount.
func (o Options) clampSample(count int) int {
	if count == 0 {
		count = DefaultSampleCount
	}
	return min(max(count, 1), o.Typo.MaxSample)
}
