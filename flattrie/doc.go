// Package flattrie implements a compact, read-only membership trie for
// short byte-string keys over a small alphabet, built for hot paths
// that test arbitrary candidate strings (e.g. HTTP header names)
// against a small fixed set.
//
// The structure is produced in two strictly sequential phases. A
// Builder ingests (key, payload) pairs into an ordinary pointer tree,
// then flattens it into one contiguous arena of fixed-size nodes. The
// published Trie is immutable and is walked without locking and
// without allocating.
//
// Arena node layout:
// -----------------
//
//	bitmap [2]uint64   existence bits, one per alphabet symbol
//	base   uint32      arena index of the node's first child
//	term   bool        the node's prefix is itself a stored key
//	val    interface{} payload, set only when term is set
//
// The children of a node are stored contiguously starting at base, in
// increasing symbol order, so a child is addressed without pointers:
//
//	child(i) = arena[base + popcount(bitmap below bit i)]
//
// Example arena for the key set {"cf-ray", "x-forwarded-for"}:
//
//	          [0:root]
//	         /        \
//	   [1:'c']        [2:'x']
//	      |              |
//	   [3:'f']        [4:'-']
//	      |              |
//	     ...            ...
//
// A lookup performs, per key byte: one table load (byte to symbol),
// one bitmap test and one popcount. A candidate that diverges from
// every stored key in its first byte or two is rejected after one or
// two such steps regardless of how long the stored keys are, which is
// the dominant case when probing arbitrary inputs against a small
// internal set.
package flattrie
