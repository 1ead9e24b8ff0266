// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package catalog

import "errors"

var (
	// ErrNotFound is returned when no app, developer or tag answers a query.
	ErrNotFound = errors.New("not found")

	// ErrNoTags is returned when a recommendation target carries no tags.
	ErrNoTags = errors.New("app has no tags to recommend from")

	// ErrLowConfidence is returned when the best fuzzy match scores below the
	// configured confidence floor.
	ErrLowConfidence = errors.New("best match below confidence floor")

	// ErrEmptyCatalog is returned when a snapshot contains no apps.
	ErrEmptyCatalog = errors.New("catalog is empty")
)
