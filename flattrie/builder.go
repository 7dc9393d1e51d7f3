package flattrie

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSymbol = errors.New("flattrie: key byte outside alphabet")
	ErrDuplicateKey  = errors.New("flattrie: duplicate key")
)

// KV is a key with its associated payload value.
type KV struct {
	Key string
	Val interface{}
}

// bnode is a build-time node: plain owned pointers, replaced by the
// flat arena on Build.
type bnode struct {
	children map[uint8]*bnode
	term     bool
	val      interface{}
}

// Builder accumulates keys and flattens them into an immutable Trie.
// It is not safe for concurrent use; the Tries it publishes are.
type Builder struct {
	alpha *Alphabet
	root  *bnode
	size  int
}

func NewBuilder(a *Alphabet) *Builder {
	return &Builder{
		alpha: a,
		root:  &bnode{},
	}
}

// Add inserts a key with its payload. Keys must be pre-normalized to
// the alphabet (e.g. lowercased by the key source): a byte outside
// the alphabet fails with ErrInvalidSymbol, a repeated key with
// ErrDuplicateKey. The Builder never case-folds, so the build and
// query paths see identical bytes. A failed Add leaves the Builder
// unchanged.
func (b *Builder) Add(key string, val interface{}) error {
	for i := 0; i < len(key); i++ {
		if !b.alpha.Contains(key[i]) {
			return fmt.Errorf("%w: key %q, byte %q at offset %d",
				ErrInvalidSymbol, key, key[i], i)
		}
	}

	cur := b.root
	for i := 0; i < len(key); i++ {
		sym := b.alpha.sym[key[i]]
		if cur.children == nil {
			cur.children = make(map[uint8]*bnode)
		}
		next, ok := cur.children[sym]
		if !ok {
			next = &bnode{}
			cur.children[sym] = next
		}
		cur = next
	}

	if cur.term {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	cur.term = true
	cur.val = val
	b.size++

	return nil
}

// Len returns the number of keys added so far.
func (b *Builder) Len() int {
	return b.size
}

// Build flattens the intermediate tree into a compact arena: nodes in
// breadth-first order, every node's children contiguous in increasing
// symbol order. Building from zero keys is valid and yields a
// root-only trie that never matches. Build may be called again after
// further Adds; every call publishes an independent Trie.
func (b *Builder) Build() (*Trie, error) {
	// The breadth-first walk fixes every node's arena index. Children
	// are appended in one batch per parent, which makes them
	// contiguous.
	order := []*bnode{b.root}
	for i := 0; i < len(order); i++ {
		bn := order[i]
		for sym := 0; sym < b.alpha.size; sym++ {
			if child, ok := bn.children[uint8(sym)]; ok {
				order = append(order, child)
			}
		}
	}

	arena := make([]node, len(order))
	next := uint32(1) // arena index of the next unplaced child
	for i, bn := range order {
		cn := &arena[i]
		cn.term = bn.term
		cn.val = bn.val
		cn.base = next
		for sym := 0; sym < b.alpha.size; sym++ {
			if _, ok := bn.children[uint8(sym)]; ok {
				cn.bitmap[sym>>6] |= 1 << (sym & 0x3F)
				next++
			}
		}
	}

	return &Trie{alpha: b.alpha, arena: arena, size: b.size}, nil
}

// Build constructs a Trie from kvs in one call.
func Build(a *Alphabet, kvs ...KV) (*Trie, error) {
	b := NewBuilder(a)
	for _, kv := range kvs {
		if err := b.Add(kv.Key, kv.Val); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
