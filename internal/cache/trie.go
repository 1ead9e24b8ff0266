// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package cache

import (
	"sort"
	"strings"
	"sync"
)

// DefaultMaxSuggestions bounds Autocomplete when no limit is given.
const DefaultMaxSuggestions = 10

type trieNode[V any] struct {
	children map[rune]*trieNode[V]
	value    string // original spelling of the first inserted key ending here
	items    []V    // payloads of every key ending here, in insertion order
}

func newTrieNode[V any]() *trieNode[V] {
	return &trieNode[V]{children: make(map[rune]*trieNode[V])}
}

// Trie is a thread-safe, case-insensitive prefix tree used for name
// autocomplete. Several payloads may share one key, e.g. two apps released
// under the same name.
type Trie[V any] struct {
	mu             sync.RWMutex
	root           *trieNode[V]
	keys           int
	maxSuggestions int
}

// TrieResult is one autocomplete hit.
type TrieResult[V any] struct {
	Value string // key as first inserted
	Items []V
}

// NewTrie creates an empty trie returning at most maxSuggestions results
// per Autocomplete call. maxSuggestions <= 0 selects DefaultMaxSuggestions.
func NewTrie[V any](maxSuggestions int) *Trie[V] {
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	return &Trie[V]{
		root:           newTrieNode[V](),
		maxSuggestions: maxSuggestions,
	}
}

func normalizeTrieKey(key string) []rune {
	return []rune(strings.ToLower(strings.TrimSpace(key)))
}

// Insert adds item under key. It reports whether key was new. Blank keys
// are ignored.
func (t *Trie[V]) Insert(key string, item V) bool {
	runes := normalizeTrieKey(key)
	if len(runes) == 0 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range runes {
		next := node.children[ch]
		if next == nil {
			next = newTrieNode[V]()
			node.children[ch] = next
		}
		node = next
	}

	isNew := len(node.items) == 0
	if isNew {
		node.value = strings.TrimSpace(key)
		t.keys++
	}
	node.items = append(node.items, item)
	return isNew
}

// Search returns the payloads stored under exactly key.
func (t *Trie[V]) Search(key string) ([]V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(normalizeTrieKey(key))
	if node == nil || len(node.items) == 0 {
		return nil, false
	}
	return append([]V(nil), node.items...), true
}

// Autocomplete returns keys starting with prefix in alphabetical order,
// limited to limit results (or the trie default when limit <= 0). An
// unknown prefix yields an empty, non-nil slice.
func (t *Trie[V]) Autocomplete(prefix string, limit int) []TrieResult[V] {
	if limit <= 0 {
		limit = t.maxSuggestions
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	results := []TrieResult[V]{}
	node := t.find(normalizeTrieKey(prefix))
	if node == nil {
		return results
	}

	collect(node, &results)
	sort.SliceStable(results, func(i, j int) bool {
		return strings.ToLower(results[i].Value) < strings.ToLower(results[j].Value)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (t *Trie[V]) find(runes []rune) *trieNode[V] {
	node := t.root
	for _, ch := range runes {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

func collect[V any](node *trieNode[V], results *[]TrieResult[V]) {
	if len(node.items) > 0 {
		*results = append(*results, TrieResult[V]{
			Value: node.value,
			Items: append([]V(nil), node.items...),
		})
	}
	for _, child := range node.children {
		collect(child, results)
	}
}

// Size returns the number of distinct keys.
func (t *Trie[V]) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.keys
}
