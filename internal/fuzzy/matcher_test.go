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

func TestDefaultThresholds(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	assert.Equal(t, 60.0, th.Edit)
	assert.Equal(t, 25.0, th.Token)
	assert.NoError(t, th.Validate())
}

func TestThresholds_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		th      Thresholds
		wantErr bool
	}{
		{"zero", Thresholds{}, false},
		{"max", Thresholds{Edit: 100, Token: 100}, false},
		{"negative edit", Thresholds{Edit: -1, Token: 25}, true},
		{"edit over 100", Thresholds{Edit: 101, Token: 25}, true},
		{"negative token", Thresholds{Edit: 60, Token: -0.5}, true},
		{"token over 100", Thresholds{Edit: 60, Token: 100.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.th.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveAll_FuzzyTag(t *testing.T) {
	t.Parallel()

	tags := []entity{
		{ID: 1, Name: "Pool"},
		{ID: 2, Name: "Racing"},
		{ID: 3, Name: "Puzzle"},
	}

	matches := ResolveAll("Pools", tags, entityName, DefaultThresholds())
	require.Len(t, matches, 1)
	assert.Equal(t, int64(1), matches[0].Entity.ID)
	assert.InDelta(t, 80.0, matches[0].Score, 1e-9)
}

func TestResolveAll_Unrelated(t *testing.T) {
	t.Parallel()

	matches := ResolveAll("qqqqqqq", smallCatalog, entityName, DefaultThresholds())
	assert.NotNil(t, matches)
	assert.Empty(t, matches)

	matches = ResolveAll("anything", nil, entityName, DefaultThresholds())
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestResolveAll_SortedStable(t *testing.T) {
	t.Parallel()

	candidates := []entity{
		{ID: 1, Name: "Dark Souls III"},
		{ID: 2, Name: "Souls Dark"},
		{ID: 3, Name: "Terraria"},
		{ID: 4, Name: "Dark Souls"},
	}

	matches := ResolveAll("dark souls", candidates, entityName, DefaultThresholds())
	require.Len(t, matches, 3)

	// Equal scores keep input order.
	assert.Equal(t, int64(2), matches[0].Entity.ID)
	assert.Equal(t, int64(4), matches[1].Entity.ID)
	assert.Equal(t, int64(1), matches[2].Entity.ID)

	assert.Equal(t, 100.0, matches[0].Score)
	assert.Equal(t, 100.0, matches[1].Score)
	assert.InDelta(t, (1-4.0/14.0)*100, matches[2].Score, 1e-9)
}

func TestResolveAll_MetricsTestedSeparately(t *testing.T) {
	t.Parallel()

	// "souls dark" has zero edit similarity to the query but full token
	// overlap, so only the token threshold admits it.
	candidates := []entity{{ID: 1, Name: "Souls Dark"}}

	onlyEdit := Thresholds{Edit: 60, Token: 101}
	assert.Empty(t, ResolveAll("dark souls", candidates, entityName, onlyEdit))

	onlyToken := Thresholds{Edit: 101, Token: 25}
	assert.Len(t, ResolveAll("dark souls", candidates, entityName, onlyToken), 1)
}

func TestResolveAll_ThresholdInclusive(t *testing.T) {
	t.Parallel()

	// Similarity("abc", "abcd") is exactly 75.
	candidates := []entity{{ID: 1, Name: "abcd"}}

	assert.Len(t, ResolveAll("abc", candidates, entityName, Thresholds{Edit: 75, Token: 100}), 1)
	assert.Empty(t, ResolveAll("abc", candidates, entityName, Thresholds{Edit: 75.01, Token: 100}))
}

func TestResolveAll_NilAccessorPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		ResolveAll[entity]("x", smallCatalog, nil, DefaultThresholds())
	})
}
