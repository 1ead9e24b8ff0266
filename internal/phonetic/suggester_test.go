// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []Entry{
	{ID: 367520, Name: "Hollow Knight"},
	{ID: 105600, Name: "Terraria"},
	{ID: 413150, Name: "Stardew Valley"},
}

func TestSuggest_Phonetic(t *testing.T) {
	t.Parallel()

	s := New()
	got := s.Suggest("hollo nite", NewIndex(catalog), 0)

	require.NotEmpty(t, got)
	assert.Equal(t, int64(367520), got[0].ID)
	assert.Equal(t, "Hollow Knight", got[0].Name)
	assert.True(t, got[0].Phonetic)
	assert.Greater(t, got[0].Score, 70.0)
	assert.LessOrEqual(t, got[0].Score, 100.0)

	for _, sug := range got {
		assert.NotEqual(t, int64(105600), sug.ID, "Terraria sounds nothing like the query")
	}
}

func TestSuggest_EmptyInputs(t *testing.T) {
	t.Parallel()

	s := New()
	assert.Empty(t, s.Suggest("", NewIndex(catalog), 5))
	assert.Empty(t, s.Suggest("   ", NewIndex(catalog), 5))
	assert.Empty(t, s.Suggest("terraria", nil, 5))
	assert.Empty(t, s.Suggest("terraria", NewIndex(nil), 5))
	assert.NotNil(t, s.Suggest("terraria", nil, 5))
}

func TestSuggest_Limit(t *testing.T) {
	t.Parallel()

	idx := NewIndex([]Entry{
		{ID: 400, Name: "Portal"},
		{ID: 620, Name: "Portal 2"},
		{ID: 317400, Name: "Portal Stories: Mel"},
	})

	assert.Len(t, New().Suggest("portal", idx, 2), 2)
	assert.Len(t, New(WithLimit(1)).Suggest("portal", idx, 0), 1)
	assert.Len(t, New().Suggest("portal", idx, 10), 3)
}

func TestSuggest_ExactNameScoresMax(t *testing.T) {
	t.Parallel()

	got := New().Suggest("Terraria", NewIndex(catalog), 1)
	require.Len(t, got, 1)
	assert.Equal(t, int64(105600), got[0].ID)
	assert.InDelta(t, 100.0, got[0].Score, 1e-9)
}

func TestSuggest_Thresholds(t *testing.T) {
	t.Parallel()

	strict := New(WithPhoneticThreshold(1.01), WithFuzzyThreshold(1.01))
	assert.Empty(t, strict.Suggest("Terraria", NewIndex(catalog), 5))
}

func TestNewIndex_SkipsBlankNames(t *testing.T) {
	t.Parallel()

	idx := NewIndex([]Entry{{ID: 1, Name: ""}, {ID: 2, Name: "   "}, {ID: 3, Name: "Celeste"}})
	assert.Equal(t, 1, idx.Len())
}

func TestCodesOverlap(t *testing.T) {
	t.Parallel()

	a := codesForTokens([]string{"knight"})
	b := codesForTokens([]string{"nite"})
	c := codesForTokens([]string{"terraria"})

	assert.True(t, codesOverlap(a, b))
	assert.False(t, codesOverlap(a, c))
	assert.False(t, codesOverlap(a, map[string]struct{}{}))
}
