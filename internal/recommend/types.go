// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package recommend

// Tag is a descriptive label attached to catalog entities.
type Tag struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Pair links an entity to one of its tags.
type Pair struct {
	EntityID int64
	TagID    int64
}

// Membership is the set of entity-tag links, built once and queried in O(1).
type Membership map[Pair]struct{}

// NewMembership builds a Membership from entity-tag pairs. Duplicate pairs
// collapse.
func NewMembership(pairs []Pair) Membership {
	m := make(Membership, len(pairs))
	for _, p := range pairs {
		m[p] = struct{}{}
	}
	return m
}

// Has reports whether entityID is linked to tagID.
func (m Membership) Has(entityID, tagID int64) bool {
	_, ok := m[Pair{EntityID: entityID, TagID: tagID}]
	return ok
}

// Len returns the number of distinct pairs.
func (m Membership) Len() int {
	return len(m)
}

// IDFunc reads the stable id of a candidate entity.
type IDFunc[T any] func(T) int64

// Scored is a ranked entity with its integer tag-overlap percentage.
type Scored[T any] struct {
	Entity T   `json:"entity"`
	Score  int `json:"score"`
}
