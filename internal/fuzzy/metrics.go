// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package fuzzy

import "strings"

// MaxScore is the score of two strings that are identical under a metric.
const MaxScore = 100.0

// EditDistance computes the case-insensitive Levenshtein distance between two
// strings: the minimum number of single-rune insertions, deletions, or
// substitutions that turn one into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func EditDistance(a, b string) int {
	return levenshtein([]rune(strings.ToLower(a)), []rune(strings.ToLower(b)))
}

// levenshtein runs the two-row dynamic program over already lower-cased runes.
func levenshtein(a, b []rune) int {
	// Keep a as the shorter slice so the rolling rows stay small.
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// TokenOverlap returns the Jaccard index of the lower-cased whitespace word
// sets of a and b, scaled to [0, 100]. It returns 0 when both strings contain
// no words.
func TokenOverlap(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union) * MaxScore
}

// tokenSet splits s on whitespace into a set of lower-cased words.
func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// Similarity scores two strings by normalized edit distance:
//
//	(1 - EditDistance(a, b) / max(len(a), len(b))) * 100
//
// Lengths are counted in runes. Two empty strings score 100.
func Similarity(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return MaxScore
	}

	distance := levenshtein(ra, rb)
	return (1 - float64(distance)/float64(maxLen)) * MaxScore
}

// CombinedSimilarity is the larger of Similarity and TokenOverlap.
func CombinedSimilarity(a, b string) float64 {
	return max(Similarity(a, b), TokenOverlap(a, b))
}
