// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package catalog

import (
	"sort"

	"github.com/tomtom215/gamefinder/internal/cache"
	"github.com/tomtom215/gamefinder/internal/phonetic"
	"github.com/tomtom215/gamefinder/internal/recommend"
	"github.com/tomtom215/gamefinder/internal/typo"
)

// index holds the read-only lookup structures derived from a snapshot.
// Apps are kept in ascending id order.
type index struct {
	apps       []App
	byID       map[int64]int
	membership recommend.Membership

	tags      []recommend.Tag
	tagByID   map[int64]recommend.Tag
	appsByTag map[int64][]int

	developers      []string
	appsByDeveloper map[string][]int

	names    *cache.Trie[int64]
	phonetic *phonetic.Index
	pool     []typo.Candidate
}

func buildIndex(snap *Snapshot) *index {
	apps := make([]App, len(snap.Apps))
	copy(apps, snap.Apps)
	sort.SliceStable(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })

	idx := &index{
		apps:            apps,
		byID:            make(map[int64]int, len(apps)),
		membership:      snap.Membership(),
		tagByID:         make(map[int64]recommend.Tag),
		appsByTag:       make(map[int64][]int),
		appsByDeveloper: make(map[string][]int),
		names:           cache.NewTrie[int64](0),
		pool:            make([]typo.Candidate, len(apps)),
	}

	entries := make([]phonetic.Entry, len(apps))
	for i := range apps {
		app := &apps[i]
		idx.byID[app.ID] = i
		idx.names.Insert(app.Name, app.ID)
		idx.pool[i] = typo.Candidate{ID: app.ID, Name: app.Name}
		entries[i] = phonetic.Entry{ID: app.ID, Name: app.Name}

		for _, t := range app.Tags {
			if _, seen := idx.tagByID[t.ID]; !seen {
				idx.tagByID[t.ID] = t
				idx.tags = append(idx.tags, t)
			}
			idx.appsByTag[t.ID] = appendUnique(idx.appsByTag[t.ID], i)
		}

		if app.Developer != "" {
			if _, seen := idx.appsByDeveloper[app.Developer]; !seen {
				idx.developers = append(idx.developers, app.Developer)
			}
			idx.appsByDeveloper[app.Developer] = append(idx.appsByDeveloper[app.Developer], i)
		}
	}
	idx.phonetic = phonetic.NewIndex(entries)

	sort.SliceStable(idx.tags, func(i, j int) bool { return idx.tags[i].ID < idx.tags[j].ID })

	return idx
}

// appendUnique appends i unless it is already the last element. Apps are
// visited in order, so a repeated tag on one app only hits the tail.
func appendUnique(list []int, i int) []int {
	if n := len(list); n > 0 && list[n-1] == i {
		return list
	}
	return append(list, i)
}

func (idx *index) app(id int64) (App, bool) {
	i, ok := idx.byID[id]
	if !ok {
		return App{}, false
	}
	return idx.apps[i], true
}

func (idx *index) summaries(positions []int) []Summary {
	out := make([]Summary, len(positions))
	for i, p := range positions {
		out[i] = idx.apps[p].Summarize()
	}
	return out
}
