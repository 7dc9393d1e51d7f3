// Package headerfilter applies a flattrie membership set to a
// caller's candidate collection, e.g. the header names of one request
// tested against a small internal set. The cost of a pass is
// proportional to the candidate collection, not to the stored set.
package headerfilter

import (
	"sync/atomic"

	"github.com/flatbit/go-flattrie/flattrie"
)

// Partition splits items into those whose key is stored in the trie
// and those whose key is not. Both subsets preserve the original
// relative order; items itself is not modified.
func Partition[T any](t *flattrie.Trie, items []T, key func(T) string) (matched, unmatched []T) {
	for _, it := range items {
		if t.Has(key(it)) {
			matched = append(matched, it)
		} else {
			unmatched = append(unmatched, it)
		}
	}
	return matched, unmatched
}

// Filter holds the active trie behind an atomically swapped handle.
// Replacing the set (e.g. on configuration reload) publishes a freshly
// built Trie; readers that loaded the old one keep using it until they
// finish. Lookups never lock and never block.
type Filter struct {
	trie atomic.Pointer[flattrie.Trie]
}

// New returns a Filter with t as the active set.
func New(t *flattrie.Trie) *Filter {
	var f Filter
	f.trie.Store(t)
	return &f
}

// Load returns the currently active trie.
func (f *Filter) Load() *flattrie.Trie {
	return f.trie.Load()
}

// Swap publishes t as the active set and returns the previous one.
func (f *Filter) Swap(t *flattrie.Trie) *flattrie.Trie {
	return f.trie.Swap(t)
}

// Has reports whether name is in the active set.
func (f *Filter) Has(name string) bool {
	return f.trie.Load().Has(name)
}

// Drop returns a new slice holding the names that are not in the
// active set, in their original order. The input slice is untouched.
func (f *Filter) Drop(names []string) []string {
	t := f.trie.Load()

	kept := make([]string, 0, len(names))
	for _, name := range names {
		if !t.Has(name) {
			kept = append(kept, name)
		}
	}
	return kept
}
