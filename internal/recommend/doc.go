// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

// Package recommend ranks catalog entities by how many of a target entity's
// descriptive tags they share.
//
// # Scoring
//
// For every pool entity the effective tag set is the target's tags that the
// membership relation links to that entity. Tags the pool entity carries but
// the target lacks are ignored, so broadly tagged entities are not penalized.
//
//	score = round(|effective| / |target tags| * 100)
//
// Rounding is half-to-even. A target without tags scores every entity 0.
// Entities scoring 0 are dropped, the rest are stably sorted by score and
// truncated to topK.
//
// # Usage
//
//	membership := recommend.NewMembership(pairs)
//	recs := recommend.RankBySharedTags(target.Tags, pool,
//	    func(a App) int64 { return a.ID }, membership, 5)
//
// The caller removes the target from the pool beforehand and clamps topK
// through Config.ClampK.
//
// # Thread Safety
//
// RankBySharedTags is pure. Membership is read-only after construction and is
// safe to share between goroutines.
package recommend
