// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

/*
Package catalog loads a game catalog snapshot and answers lookup, search,
recommendation and typo fixture queries over it.

# Snapshot

A snapshot is a JSON or YAML file holding a list of apps with their tags,
genres and categories:

	{"apps": [{"appid": 10, "name": "Hollow Knight", "developer": "Team Cherry",
	           "tags": [{"id": 1, "name": "Metroidvania"}]}]}

Load normalizes names to NFC, validates every app and rejects duplicate ids.
The snapshot is immutable once a Service is built over it.

# Queries

App and tag queries accept a numeric id as well. An all-digit query is looked
up by id and never fuzzy matched. Developers have no id and are matched by
name only. Queries are trimmed and converted to NFC like catalog names.

  - LookupApp: single best app, fuzzy by default, case-insensitive equality
    in exact mode
  - LookupDeveloper, AppsByTag: the same resolution over developer and tag names
  - Related: tags, genres or categories of an app
  - Search: every app passing either similarity threshold, with phonetic
    suggestions when nothing passes
  - SearchLike, Complete: substring and prefix listings
  - Recommend: apps ranked by the share of the target's tags they carry
  - RandomSample: typo fixtures that still resolve to their app

Fuzzy results are memoized in a TTL cache keyed by entity kind and the
lower-cased query. Scores in results are rounded to two decimals.

# Errors

Data conditions surface as ErrNotFound, ErrNoTags or ErrLowConfidence, wrapped
with the query. Malformed requests return *validation.RequestValidationError.

	rec, err := svc.Recommend(ctx, catalog.RecommendRequest{Query: "hollow night"})
	switch {
	case errors.Is(err, catalog.ErrNoTags):
	    // nothing to rank against
	case err != nil:
	    return err
	}
*/
package catalog
