// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestTrie_BasicOperations(t *testing.T) {
	t.Parallel()

	trie := NewTrie[int64](0)

	if !trie.Insert("Hollow Knight", 367520) {
		t.Error("Insert should return true for new key")
	}
	if trie.Insert("hollow knight", 999) {
		t.Error("Insert should return false for existing key")
	}

	if trie.Size() != 1 {
		t.Errorf("Size() = %d, want 1", trie.Size())
	}

	items, found := trie.Search("HOLLOW KNIGHT")
	if !found {
		t.Fatal("Search should find key case-insensitively")
	}
	if len(items) != 2 || items[0] != 367520 || items[1] != 999 {
		t.Errorf("Search() items = %v, want [367520 999]", items)
	}

	if _, found := trie.Search("hollow"); found {
		t.Error("Search should not find partial key")
	}
}

func TestTrie_BlankKeys(t *testing.T) {
	t.Parallel()

	trie := NewTrie[int](0)
	if trie.Insert("", 1) || trie.Insert("   ", 2) {
		t.Error("blank keys should be ignored")
	}
	if trie.Size() != 0 {
		t.Errorf("Size() = %d, want 0", trie.Size())
	}
	if _, found := trie.Search(""); found {
		t.Error("Search of blank key should find nothing")
	}
}

func TestTrie_Autocomplete(t *testing.T) {
	t.Parallel()

	trie := NewTrie[int](0)
	for i, name := range []string{"Dark Souls III", "Dark Souls", "Darkest Dungeon", "Terraria", "Dark Souls II"} {
		trie.Insert(name, i)
	}

	got := trie.Autocomplete("dark", 0)
	want := []string{"Dark Souls", "Dark Souls II", "Dark Souls III", "Darkest Dungeon"}
	if len(got) != len(want) {
		t.Fatalf("Autocomplete() returned %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Value != want[i] {
			t.Errorf("result[%d] = %q, want %q", i, got[i].Value, want[i])
		}
	}

	limited := trie.Autocomplete("dark souls", 2)
	if len(limited) != 2 {
		t.Errorf("limited Autocomplete() returned %d, want 2", len(limited))
	}

	none := trie.Autocomplete("zelda", 5)
	if none == nil || len(none) != 0 {
		t.Errorf("unknown prefix should return empty non-nil slice, got %v", none)
	}
}

func TestTrie_DefaultLimit(t *testing.T) {
	t.Parallel()

	trie := NewTrie[int](3)
	for i := 0; i < 10; i++ {
		trie.Insert(fmt.Sprintf("game %02d", i), i)
	}
	if got := len(trie.Autocomplete("game", 0)); got != 3 {
		t.Errorf("Autocomplete() with default limit returned %d, want 3", got)
	}
}

func TestTrie_UnicodeKeys(t *testing.T) {
	t.Parallel()

	trie := NewTrie[int](0)
	trie.Insert("Pokémon Café", 1)
	trie.Insert("Pokémon", 2)

	if items, found := trie.Search("POKÉMON CAFÉ"); !found || len(items) != 1 || items[0] != 1 {
		t.Errorf("Search() = %v, %v; want [1], true", items, found)
	}

	hits := trie.Autocomplete("poké", 0)
	if len(hits) != 2 || hits[0].Value != "Pokémon" || hits[1].Value != "Pokémon Café" {
		t.Errorf("Autocomplete(poké) = %+v", hits)
	}
	if got := trie.Autocomplete("pokémon c", 0); len(got) != 1 {
		t.Errorf("Autocomplete(pokémon c) = %+v, want one hit", got)
	}
}

func TestTrie_Concurrent(t *testing.T) {
	t.Parallel()

	trie := NewTrie[int](0)

	var wg sync.WaitGroup
	numGoroutines := 50
	numOps := 100

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOps; j++ {
				key := string(rune('a' + (id % 26)))
				trie.Insert(key, j)
				trie.Search(key)
				trie.Autocomplete(key, 3)
			}
		}(i)
	}
	wg.Wait()

	if trie.Size() != 26 {
		t.Errorf("Size = %d, want 26", trie.Size())
	}
}

func BenchmarkTrie_Autocomplete(b *testing.B) {
	trie := NewTrie[int](10)
	for i := 0; i < 5000; i++ {
		trie.Insert(fmt.Sprintf("game title %d", i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trie.Autocomplete("game title 4", 10)
	}
}
