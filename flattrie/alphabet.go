package flattrie

import (
	"errors"
	"fmt"
)

const (
	// noSym marks a byte that is not a symbol of the alphabet.
	noSym = 0xFF

	// maxSymbols is bound by the fixed-size existence bitmap of a
	// compact node (bitmapWords 64-bit words).
	maxSymbols = bitmapWords * 64
)

var (
	ErrDuplicateSymbol  = errors.New("flattrie: duplicate alphabet symbol")
	ErrAlphabetTooLarge = errors.New("flattrie: too many alphabet symbols")
)

// headerSymbols are the bytes of canonical (lowercased) header names.
const headerSymbols = "abcdefghijklmnopqrstuvwxyz0123456789-"

// Alphabet maps raw key bytes to dense symbol indexes [0..Size).
// The symbol index doubles as the bit position in a node's existence
// bitmap, so the alphabet size bounds the branching factor.
type Alphabet struct {
	sym  [256]uint8
	size int
}

// NewAlphabet builds an alphabet from the given symbols. The i-th
// byte of symbols becomes symbol index i. A repeated byte or more
// than 128 symbols is an error.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) > maxSymbols {
		return nil, fmt.Errorf("%w: %d > %d", ErrAlphabetTooLarge, len(symbols), maxSymbols)
	}

	var a Alphabet

	for i := range a.sym {
		a.sym[i] = noSym
	}

	for i := 0; i < len(symbols); i++ {
		b := symbols[i]
		if a.sym[b] != noSym {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, b)
		}
		a.sym[b] = uint8(i)
	}
	a.size = len(symbols)

	return &a, nil
}

// HeaderAlphabet returns the alphabet of canonical HTTP header names:
// lowercase letters, digits and the hyphen.
func HeaderAlphabet() *Alphabet {
	a, err := NewAlphabet(headerSymbols)
	if err != nil {
		panic(err) // unreachable, the constant is valid
	}
	return a
}

// Size returns the number of symbols in the alphabet.
func (a *Alphabet) Size() int {
	return a.size
}

// Contains reports whether b is a symbol of the alphabet.
func (a *Alphabet) Contains(b byte) bool {
	return a.sym[b] != noSym
}
