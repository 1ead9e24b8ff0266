// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

/*
Package cache provides the in-memory structures the catalog service keeps
next to a loaded snapshot.

# TTL Cache

Cache memoizes resolution results. Fuzzy resolution scans every candidate
name, so repeated queries within one process (a typo fixture batch resolving
the same names, or a program embedding the service) are served from memory
instead. Entries expire after a fixed TTL, and a background goroutine
sweeps them until Close is called. Hits and misses are exported through the
metrics package.

	c := cache.NewWithLimit(5*time.Minute, 10000)
	defer c.Close()

	key := cache.GenerateKey("resolve_app", map[string]any{"q": q})
	if v, ok := c.Get(key); ok {
	    return v.(fuzzy.Match[catalog.App]), nil
	}

A cache belongs to one Service and therefore to one snapshot. Close stops
the sweeper; GetStats and HitRate report how well the cache served.

# Trie

Trie is a case-insensitive prefix tree over app names used for
autocomplete. Several payloads can share one key.

	t := cache.NewTrie[int64](10)
	t.Insert("Hollow Knight", 367520)
	hits := t.Autocomplete("holl", 5)
	ids, ok := t.Search("hollow knight")
*/
package cache
