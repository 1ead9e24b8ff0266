// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

// Package phonetic produces "did you mean" suggestions for queries that the
// edit-distance matcher could not place.
//
// Suggestions come from two passes over a prepared Index:
//
//  1. Phonetic: Double Metaphone codes are computed per word for the query
//     and for every entry. Entries sharing at least one code are ranked by
//     Jaro-Winkler similarity and kept above the phonetic threshold (0.70).
//
//  2. Fuzzy fallback: entries without a shared code are kept only when their
//     Jaro-Winkler similarity clears the stricter fuzzy threshold (0.85).
//
// Phonetic suggestions always rank ahead of fuzzy ones. Scores are reported
// on the same [0, 100] scale as package fuzzy.
package phonetic

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

const (
	defaultPhoneticThreshold = 0.70
	defaultFuzzyThreshold    = 0.85
	defaultLimit             = 5
)

// Option configures a Suggester.
type Option func(*Suggester)

// WithPhoneticThreshold sets the minimum Jaro-Winkler score, in [0, 1], for
// entries that share a phonetic code with the query.
func WithPhoneticThreshold(threshold float64) Option {
	return func(s *Suggester) {
		s.phoneticThreshold = threshold
	}
}

// WithFuzzyThreshold sets the minimum Jaro-Winkler score, in [0, 1], for
// entries with no phonetic overlap.
func WithFuzzyThreshold(threshold float64) Option {
	return func(s *Suggester) {
		s.fuzzyThreshold = threshold
	}
}

// WithLimit sets the default number of suggestions returned.
func WithLimit(limit int) Option {
	return func(s *Suggester) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// Suggester ranks Index entries by phonetic and Jaro-Winkler similarity.
// It is read-only after construction and safe for concurrent use.
type Suggester struct {
	phoneticThreshold float64
	fuzzyThreshold    float64
	limit             int
}

// New returns a Suggester configured with opts.
func New(opts ...Option) *Suggester {
	s := &Suggester{
		phoneticThreshold: defaultPhoneticThreshold,
		fuzzyThreshold:    defaultFuzzyThreshold,
		limit:             defaultLimit,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Entry is a named item that can be suggested.
type Entry struct {
	ID   int64
	Name string
}

type indexEntry struct {
	Entry
	lower  string
	tokens []string
	codes  map[string]struct{}
}

// Index holds precomputed lower-cased forms, tokens, and Double Metaphone
// codes for a fixed set of entries.
type Index struct {
	entries []indexEntry
}

// NewIndex prepares entries for repeated suggestion lookups. Entries with a
// blank name are skipped.
func NewIndex(entries []Entry) *Index {
	idx := &Index{entries: make([]indexEntry, 0, len(entries))}
	for _, e := range entries {
		lower := strings.ToLower(strings.TrimSpace(e.Name))
		if lower == "" {
			continue
		}
		tokens := strings.Fields(lower)
		idx.entries = append(idx.entries, indexEntry{
			Entry:  e,
			lower:  lower,
			tokens: tokens,
			codes:  codesForTokens(tokens),
		})
	}
	return idx
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Suggestion is a ranked candidate for a misheard or misspelled query.
type Suggestion struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Phonetic bool    `json:"phonetic"`
}

// Suggest returns up to limit suggestions for query, phonetic matches first
// and then by descending score. A non-positive limit uses the Suggester's
// default.
func (s *Suggester) Suggest(query string, idx *Index, limit int) []Suggestion {
	if limit <= 0 {
		limit = s.limit
	}

	out := make([]Suggestion, 0)
	lower := strings.ToLower(strings.TrimSpace(query))
	if idx == nil || lower == "" {
		return out
	}

	tokens := strings.Fields(lower)
	codes := codesForTokens(tokens)

	for i := range idx.entries {
		e := &idx.entries[i]
		score := bestJWScore(tokens, e.tokens, lower, e.lower)

		phonetic := codesOverlap(codes, e.codes)
		threshold := s.fuzzyThreshold
		if phonetic {
			threshold = s.phoneticThreshold
		}
		if score < threshold {
			continue
		}

		out = append(out, Suggestion{
			ID:       e.ID,
			Name:     e.Name,
			Score:    score * 100,
			Phonetic: phonetic,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Phonetic != out[j].Phonetic {
			return out[i].Phonetic
		}
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// codesForTokens returns the union of primary and secondary Double Metaphone
// codes for tokens, excluding empty codes.
func codesForTokens(tokens []string) map[string]struct{} {
	codes := make(map[string]struct{}, len(tokens)*2)
	for _, t := range tokens {
		p, s := matchr.DoubleMetaphone(t)
		if p != "" {
			codes[p] = struct{}{}
		}
		if s != "" {
			codes[s] = struct{}{}
		}
	}
	return codes
}

func codesOverlap(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}

// bestJWScore is the highest Jaro-Winkler similarity among the full strings,
// the space-stripped strings, and every token pair.
func bestJWScore(inputTokens, entryTokens []string, inputFull, entryFull string) float64 {
	score := matchr.JaroWinkler(inputFull, entryFull, false)

	if len(inputTokens) > 1 || len(entryTokens) > 1 {
		joined := matchr.JaroWinkler(strings.Join(inputTokens, ""), strings.Join(entryTokens, ""), false)
		score = max(score, joined)
	}

	for _, it := range inputTokens {
		for _, et := range entryTokens {
			score = max(score, matchr.JaroWinkler(it, et, false))
		}
	}

	return score
}
