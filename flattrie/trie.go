package flattrie

import (
	"github.com/hideo55/go-popcount"
)

// bitmapWords is the number of 64-bit words in a node's existence
// bitmap. Two words cover any 7-bit ASCII alphabet while keeping the
// node a fixed-size record.
const bitmapWords = 2

// node is one arena record. The tree shape is encoded entirely by the
// existence bitmap and the base offset: the children of a node occupy
// arena[base : base+popcount(bitmap)] in increasing symbol order.
type node struct {
	bitmap [bitmapWords]uint64
	base   uint32
	term   bool
	val    interface{}
}

// Trie is the published, immutable membership structure. All nodes
// live in one contiguous arena with the root at index 0, so a lookup
// touches no pointers and allocates nothing. A Trie is safe for
// unsynchronized concurrent readers.
type Trie struct {
	alpha *Alphabet
	arena []node
	size  int
}

// Get looks up key and returns its payload. A byte outside the
// alphabet or a missing child rejects the key immediately; absence is
// an ordinary result, not an error.
func (t *Trie) Get(key string) (interface{}, bool) {
	cur := &t.arena[0]

	for i := 0; i < len(key); i++ {
		sym := t.alpha.sym[key[i]]
		if sym == noSym {
			return nil, false // byte outside the alphabet
		}

		var (
			ofs = sym >> 6
			bit = sym & 0x3F // the lowest 6 bits (2**6 == 64)
			bmp = cur.bitmap[ofs]
		)
		if (bmp>>bit)&0x01 == 0 {
			return nil, false // no child for this symbol
		}

		cnt := popcount.Count(bmp & ((1 << bit) - 1))
		for j := uint8(0); j < ofs; j++ {
			cnt += popcount.Count(cur.bitmap[j])
		}
		cur = &t.arena[uint64(cur.base)+cnt]
	}

	if cur.term {
		return cur.val, true
	}
	return nil, false // prefix of a stored key, not a key itself
}

// Has reports whether key is a member of the stored set.
func (t *Trie) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Len returns the number of stored keys.
func (t *Trie) Len() int {
	return t.size
}

// NumNodes returns the number of arena nodes. An empty set still has
// the root node.
func (t *Trie) NumNodes() int {
	return len(t.arena)
}

// Alphabet returns the alphabet the trie was built over.
func (t *Trie) Alphabet() *Alphabet {
	return t.alpha
}

// lookupSteps counts the bitmask-test steps a Get of key performs.
// A lookup that diverges at byte i has done i+1 steps; one that
// consumes the whole key has done len(key).
func (t *Trie) lookupSteps(key string) int {
	cur := &t.arena[0]

	for i := 0; i < len(key); i++ {
		sym := t.alpha.sym[key[i]]
		if sym == noSym {
			return i + 1
		}

		var (
			ofs = sym >> 6
			bit = sym & 0x3F
			bmp = cur.bitmap[ofs]
		)
		if (bmp>>bit)&0x01 == 0 {
			return i + 1
		}

		cnt := popcount.Count(bmp & ((1 << bit) - 1))
		for j := uint8(0); j < ofs; j++ {
			cnt += popcount.Count(cur.bitmap[j])
		}
		cur = &t.arena[uint64(cur.base)+cnt]
	}

	return len(key)
}
