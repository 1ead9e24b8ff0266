// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package catalog

import (
	"testing"
)

func TestDefaultOptions_Valid(t *testing.T) {
	t.Parallel()

	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() = %v", err)
	}
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"edit threshold above 100", func(o *Options) { o.Thresholds.Edit = 101 }},
		{"negative token threshold", func(o *Options) { o.Thresholds.Token = -1 }},
		{"negative confidence", func(o *Options) { o.MinConfidence = -0.5 }},
		{"zero default k", func(o *Options) { o.Recommend.DefaultK = 0 }},
		{"max k below default", func(o *Options) { o.Recommend.MaxK = 2 }},
		{"unreachable verify threshold", func(o *Options) { o.Typo.VerifyThreshold = 100 }},
		{"zero max sample", func(o *Options) { o.Typo.MaxSample = 0 }},
		{"zero workers", func(o *Options) { o.Typo.Workers = 0 }},
		{"zero ttl with cache", func(o *Options) { o.CacheTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := DefaultOptions()
			tt.mutate(&opts)
			if err := opts.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	opts := DefaultOptions()
	opts.CacheEnabled = false
	opts.CacheTTL = 0
	if err := opts.Validate(); err != nil {
		t.Errorf("zero ttl with cache disabled should pass, got %v", err)
	}
}

func TestOptions_ClampSample(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	tests := []struct {
		in, want int
	}{
		{0, DefaultSampleCount},
		{1, 1},
		{-3, 1},
		{25, 25},
		{26, 25},
	}
	for _, tt := range tests {
		if got := opts.clampSample(tt.in); got != tt.want {
			t.Errorf("clampSample(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
