// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity struct {
	ID   int64
	Name string
}

func entityName(e entity) string { return e.Name }

var smallCatalog = []entity{
	{ID: 1, Name: "Hollow Knight"},
	{ID: 2, Name: "Terraria"},
}

func TestResolveBest_Empty(t *testing.T) {
	t.Parallel()

	_, ok := ResolveBest("anything", nil, entityName)
	assert.False(t, ok)

	_, ok = ResolveBest("anything", []entity{}, entityName)
	assert.False(t, ok)
}

func TestResolveBest_ExactName(t *testing.T) {
	t.Parallel()

	m, ok := ResolveBest("Terraria", smallCatalog, entityName)
	require.True(t, ok)
	assert.Equal(t, int64(2), m.Entity.ID)
	assert.Equal(t, MaxScore, m.Score)
}

func TestResolveBest_Typo(t *testing.T) {
	t.Parallel()

	m, ok := ResolveBest("Hallo Night", smallCatalog, entityName)
	require.True(t, ok)
	assert.Equal(t, int64(1), m.Entity.ID)
	assert.Greater(t, m.Score, 75.0)
}

func TestResolveBest_QueryNormalization(t *testing.T) {
	t.Parallel()

	m, ok := ResolveBest("   TERRARIA \t", smallCatalog, entityName)
	require.True(t, ok)
	assert.Equal(t, int64(2), m.Entity.ID)
	assert.Equal(t, MaxScore, m.Score)
}

func TestResolveBest_AlwaysReturnsBestWhenNonEmpty(t *testing.T) {
	t.Parallel()

	// Nothing relates to the query, yet a best candidate is still reported.
	m, ok := ResolveBest("xyz", []entity{{1, "abc"}, {2, "def"}}, entityName)
	require.True(t, ok)
	assert.Equal(t, int64(1), m.Entity.ID)
	assert.Equal(t, 0.0, m.Score)

	// Whitespace-only queries compare as the empty string.
	m, ok = ResolveBest("   ", smallCatalog, entityName)
	require.True(t, ok)
	assert.Equal(t, int64(1), m.Entity.ID)
}

func TestResolveBest_TiesKeepFirst(t *testing.T) {
	t.Parallel()

	candidates := []entity{
		{ID: 10, Name: "Portal"},
		{ID: 11, Name: "portal"},
		{ID: 12, Name: "PORTAL"},
	}
	m, ok := ResolveBest("portal", candidates, entityName)
	require.True(t, ok)
	assert.Equal(t, int64(10), m.Entity.ID)
}

func TestResolveBest_LaterHigherScoreWins(t *testing.T) {
	t.Parallel()

	candidates := []entity{
		{ID: 1, Name: "Dark Souls III"},
		{ID: 2, Name: "Dark Souls"},
	}
	m, ok := ResolveBest("dark souls", candidates, entityName)
	require.True(t, ok)
	assert.Equal(t, int64(2), m.Entity.ID)
}

func TestResolveBest_DoesNotMutateCandidates(t *testing.T) {
	t.Parallel()

	candidates := []entity{{1, "Hollow Knight"}, {2, "Terraria"}}
	_, _ = ResolveBest("HOLLOW", candidates, entityName)
	assert.Equal(t, "Hollow Knight", candidates[0].Name)
	assert.Equal(t, "Terraria", candidates[1].Name)
}

func TestResolveBest_NilAccessorPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		ResolveBest[entity]("x", smallCatalog, nil)
	})
}

func TestResolveBest_StringCandidates(t *testing.T) {
	t.Parallel()

	developers := []string{"Team Cherry", "Re-Logic", "Arrowhead Game Studios"}
	m, ok := ResolveBest("team chery", developers, func(s string) string { return s })
	require.True(t, ok)
	assert.Equal(t, "Team Cherry", m.Entity)
}
