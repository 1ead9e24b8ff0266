// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

// Package fuzzy resolves free-text, possibly misspelled identifiers to catalog
// entities without requiring exact string or id matches.
//
// # Metrics
//
// Two unrelated string metrics are provided, both scored in [0, 100]:
//
//   - Similarity: character-level, derived from case-insensitive Levenshtein
//     edit distance normalized by the longer string's rune length
//   - TokenOverlap: word-level Jaccard index over lower-cased whitespace tokens
//
// CombinedSimilarity takes the maximum of the two. A single strong signal is
// enough: "Knight Hollow" scores 100 by tokens, "Hallo Night" scores ~77 by
// edits, and neither would survive an average.
//
// Edge cases are fixed by convention rather than errors:
//
//	Similarity("", "")   == 100 // two empty strings are identical
//	TokenOverlap("", "") == 0   // empty union means no similarity
//
// # Resolution
//
// ResolveBest returns the single best candidate and its score. It never
// imposes a confidence floor: with a non-empty candidate list there is always
// a best match, however poor, and callers decide what score is good enough.
//
//	best, ok := fuzzy.ResolveBest("hallo night", apps, func(a App) string { return a.Name })
//	if !ok {
//	    // no candidates at all
//	}
//
// ResolveAll returns every candidate whose edit similarity or token overlap
// reaches its own threshold, sorted by score:
//
//	matches := fuzzy.ResolveAll("pools", tags, tagName, fuzzy.DefaultThresholds())
//
// # Thread Safety
//
// Every function in this package is pure. Inputs are never mutated and no
// package state exists, so all calls are safe for concurrent use.
package fuzzy
