// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package recommend

import (
	"fmt"
	"math"
	"sort"
)

// RankBySharedTags scores each pool entity by the percentage of targetTags it
// shares according to membership, drops entities scoring 0, and returns the
// rest sorted by score (highest first, ties in pool order) and truncated to
// topK.
//
// targetTags are deduplicated by id. The pool must not contain the target.
//
// RankBySharedTags panics if id is nil or topK is negative.
func RankBySharedTags[T any](targetTags []Tag, pool []T, id IDFunc[T], membership Membership, topK int) []Scored[T] {
	if id == nil {
		panic("recommend: RankBySharedTags called with nil id accessor")
	}
	if topK < 0 {
		panic(fmt.Sprintf("recommend: RankBySharedTags called with negative topK %d", topK))
	}

	tagIDs := uniqueTagIDs(targetTags)
	results := make([]Scored[T], 0)
	if len(tagIDs) == 0 || topK == 0 {
		return results
	}

	for _, entity := range pool {
		entityID := id(entity)

		shared := 0
		for _, tagID := range tagIDs {
			if membership.Has(entityID, tagID) {
				shared++
			}
		}

		score := sharedPercent(shared, len(tagIDs))
		if score == 0 {
			continue
		}
		results = append(results, Scored[T]{Entity: entity, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// sharedPercent returns round(shared/total*100) with half-to-even rounding,
// or 0 when total is 0.
func sharedPercent(shared, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(shared) / float64(total) * 100))
}

// uniqueTagIDs returns the distinct tag ids in first-seen order.
func uniqueTagIDs(tags []Tag) []int64 {
	seen := make(map[int64]struct{}, len(tags))
	ids := make([]int64, 0, len(tags))
	for _, t := range tags {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		ids = append(ids, t.ID)
	}
	return ids
}
