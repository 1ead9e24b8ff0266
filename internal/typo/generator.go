// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package typo

import (
	"math/rand"
	"strconv"
	"strings"
	"unicode"

	"github.com/tomtom215/gamefinder/internal/fuzzy"
)

const (
	// DefaultVerifyThreshold is the score a corruption must exceed to be kept.
	DefaultVerifyThreshold = 75.0

	// DefaultFiller replaces whitespace in the fill operator.
	DefaultFiller = '+'

	// minCorruptibleLen is the shortest name, in runes, that gets corrupted.
	minCorruptibleLen = 4

	// maxOperators bounds how many operators a single Corrupt call applies.
	maxOperators = 3
)

// Candidate is the id and display name of an entity in the verification pool.
type Candidate struct {
	ID   int64
	Name string
}

func candidateName(c Candidate) string { return c.Name }

// Operator identifies one corruption step.
type Operator int

const (
	// OpDuplicate repeats one random character.
	OpDuplicate Operator = iota
	// OpRemoveWhitespace deletes all whitespace.
	OpRemoveWhitespace
	// OpFillWhitespace replaces each whitespace run with the filler.
	OpFillWhitespace
	// OpCapitalize upper-cases a random subset of letters.
	OpCapitalize
	// OpStripPunctuation removes everything but letters, digits, and spaces.
	OpStripPunctuation
	// OpReferenceID abandons corruption and yields the reference id.
	OpReferenceID
)

// String returns the operator name used in logs and metrics.
func (o Operator) String() string {
	switch o {
	case OpDuplicate:
		return "duplicate"
	case OpRemoveWhitespace:
		return "remove_whitespace"
	case OpFillWhitespace:
		return "fill_whitespace"
	case OpCapitalize:
		return "capitalize"
	case OpStripPunctuation:
		return "strip_punctuation"
	case OpReferenceID:
		return "reference_id"
	default:
		return "unknown"
	}
}

// Option configures a Generator.
type Option func(*Generator)

// WithVerifyThreshold sets the score a corruption must strictly exceed.
func WithVerifyThreshold(threshold float64) Option {
	return func(g *Generator) {
		g.threshold = threshold
	}
}

// WithFiller sets the rune that replaces whitespace.
func WithFiller(filler rune) Option {
	return func(g *Generator) {
		g.filler = filler
	}
}

// Generator produces verified typos from a seeded random source.
type Generator struct {
	rng       *rand.Rand
	threshold float64
	filler    rune
}

// New returns a Generator seeded with seed.
func New(seed int64, opts ...Option) *Generator {
	return NewWithRand(rand.New(rand.NewSource(seed)), opts...) //nolint:gosec // fixtures, not secrets
}

// NewWithRand returns a Generator drawing from rng.
func NewWithRand(rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		rng:       rng,
		threshold: DefaultVerifyThreshold,
		filler:    DefaultFiller,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Result describes one Corrupt call.
type Result struct {
	// Text is the fixture: a verified typo or the decimal reference id.
	Text string

	// Operators lists the operators applied, in order.
	Operators []Operator

	// Verified is true when Text is a corruption that passed the self-check.
	Verified bool

	// Score is the resolver score of Text, or 0 when verification was skipped.
	Score float64
}

// Corrupt returns a misspelling of name that fuzzy resolution against pool
// still maps to referenceID, or the decimal form of referenceID.
func (g *Generator) Corrupt(name string, referenceID int64, pool []Candidate) string {
	return g.CorruptDetailed(name, referenceID, pool).Text
}

// CorruptDetailed is Corrupt with the applied operators and verification
// outcome attached.
func (g *Generator) CorruptDetailed(name string, referenceID int64, pool []Candidate) Result {
	fallback := Result{Text: strconv.FormatInt(referenceID, 10)}

	if len([]rune(name)) < minCorruptibleLen || len(pool) == 0 {
		return fallback
	}

	ops := availableOperators(name, referenceID)
	steps := 1 + g.rng.Intn(maxOperators)

	text := name
	applied := make([]Operator, 0, steps)
	for i := 0; i < steps; i++ {
		op := ops[g.rng.Intn(len(ops))]
		applied = append(applied, op)
		if op == OpReferenceID {
			fallback.Operators = applied
			return fallback
		}
		text = g.apply(op, text)
	}
	fallback.Operators = applied

	if text == name {
		return fallback
	}

	best, ok := fuzzy.ResolveBest(text, pool, candidateName)
	if !ok || best.Entity.ID != referenceID || best.Score <= g.threshold {
		fallback.Score = best.Score
		return fallback
	}

	return Result{
		Text:      text,
		Operators: applied,
		Verified:  true,
		Score:     best.Score,
	}
}

// availableOperators returns the operators that make sense for name.
func availableOperators(name string, referenceID int64) []Operator {
	ops := []Operator{OpDuplicate, OpCapitalize, OpStripPunctuation}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		ops = append(ops, OpRemoveWhitespace, OpFillWhitespace)
	}
	if referenceID != 0 {
		ops = append(ops, OpReferenceID)
	}
	return ops
}

// apply runs a single text operator.
func (g *Generator) apply(op Operator, text string) string {
	switch op {
	case OpDuplicate:
		return g.duplicate(text)
	case OpRemoveWhitespace:
		return removeWhitespace(text)
	case OpFillWhitespace:
		return fillWhitespace(text, g.filler)
	case OpCapitalize:
		return g.capitalize(text)
	case OpStripPunctuation:
		return stripPunctuation(text)
	default:
		return text
	}
}

func (g *Generator) duplicate(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}
	i := g.rng.Intn(len(runes))

	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:i+1]...)
	out = append(out, runes[i:]...)
	return string(out)
}

func (g *Generator) capitalize(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		if unicode.IsLetter(r) && g.rng.Intn(2) == 0 {
			runes[i] = unicode.ToUpper(r)
		}
	}
	return string(runes)
}

func removeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), "")
}

func fillWhitespace(text string, filler rune) string {
	return strings.Join(strings.Fields(text), string(filler))
}

func stripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
}
