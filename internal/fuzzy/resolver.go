// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package fuzzy

import "strings"

// NameFunc reads the display name of a candidate entity.
type NameFunc[T any] func(T) string

// Match pairs a candidate entity with its similarity score in [0, 100].
type Match[T any] struct {
	Entity T
	Score  float64
}

// ResolveBest scans every candidate once and returns the one whose name is
// most similar to query under CombinedSimilarity.
//
// The query is trimmed and lower-cased before comparison. Only a strictly
// higher score replaces the current best, so equal scores keep the earlier
// candidate. The boolean is false only when candidates is empty; no minimum
// score is enforced.
//
// ResolveBest panics if name is nil.
func ResolveBest[T any](query string, candidates []T, name NameFunc[T]) (Match[T], bool) {
	if name == nil {
		panic("fuzzy: ResolveBest called with nil name accessor")
	}

	var best Match[T]
	if len(candidates) == 0 {
		return best, false
	}

	q := normalizeQuery(query)
	for i, c := range candidates {
		score := CombinedSimilarity(q, strings.ToLower(name(c)))
		if i == 0 || score > best.Score {
			best = Match[T]{Entity: c, Score: score}
		}
	}

	return best, true
}

// normalizeQuery trims surrounding whitespace and lower-cases the query.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
