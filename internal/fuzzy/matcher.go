// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package fuzzy

import (
	"fmt"
	"sort"
	"strings"
)

// Default inclusion thresholds for ResolveAll.
const (
	DefaultEditThreshold  = 60.0
	DefaultTokenThreshold = 25.0
)

// Thresholds holds the per-metric inclusion thresholds for ResolveAll.
// Edit similarity runs higher than token overlap for near matches, so each
// metric is tested against its own bar.
type Thresholds struct {
	// Edit is the minimum Similarity score, in [0, 100].
	Edit float64 `json:"edit_threshold" validate:"gte=0,lte=100"`

	// Token is the minimum TokenOverlap score, in [0, 100].
	Token float64 `json:"token_threshold" validate:"gte=0,lte=100"`
}

// DefaultThresholds returns the standard 60/25 thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Edit:  DefaultEditThreshold,
		Token: DefaultTokenThreshold,
	}
}

// Validate checks that both thresholds are within [0, 100].
func (t Thresholds) Validate() error {
	if t.Edit < 0 || t.Edit > MaxScore {
		return fmt.Errorf("edit threshold must be in [0, 100], got %f", t.Edit)
	}
	if t.Token < 0 || t.Token > MaxScore {
		return fmt.Errorf("token threshold must be in [0, 100], got %f", t.Token)
	}
	return nil
}

// accepts reports whether either score reaches its threshold.
func (t Thresholds) accepts(similarity, overlap float64) bool {
	return similarity >= t.Edit || overlap >= t.Token
}

// ResolveAll returns every candidate whose edit Similarity reaches th.Edit or
// whose TokenOverlap reaches th.Token. Each result carries the larger of the
// two scores, and results are stably sorted by that score, highest first.
//
// A query that matches nothing yields an empty, non-nil slice.
//
// ResolveAll panics if name is nil.
func ResolveAll[T any](query string, candidates []T, name NameFunc[T], th Thresholds) []Match[T] {
	if name == nil {
		panic("fuzzy: ResolveAll called with nil name accessor")
	}

	q := normalizeQuery(query)
	matches := make([]Match[T], 0)

	for _, c := range candidates {
		n := strings.ToLower(name(c))
		similarity := Similarity(q, n)
		overlap := TokenOverlap(q, n)
		if !th.accepts(similarity, overlap) {
			continue
		}
		matches = append(matches, Match[T]{
			Entity: c,
			Score:  max(similarity, overlap),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}
