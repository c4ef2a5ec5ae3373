// SPDX-License-Identifier: MIT

// Package distribution: Alphabet, the construction-time symbol↔index
// bijection used by the Dense strategy.
//
// Determinism:
//   - Index order is the order symbols were given to NewAlphabet; it never
//     changes after construction.
//   - Symbol(i) and Index(s) are O(1) (slice + hash map).

package distribution

import "fmt"

// Alphabet is an immutable, ordered set of distinct symbols.
type Alphabet[S comparable] struct {
	symbols []S       // index → symbol
	index   map[S]int // symbol → index
}

// NewAlphabet builds a bijection over the given symbols, in order.
//
// Errors:
//   - ErrEmptyAlphabet when no symbol is given.
//   - ErrDuplicateSymbol when a symbol repeats.
//
// Complexity: O(k) time and space.
func NewAlphabet[S comparable](symbols ...S) (*Alphabet[S], error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	a := &Alphabet[S]{
		symbols: make([]S, len(symbols)),
		index:   make(map[S]int, len(symbols)),
	}
	for i, s := range symbols {
		if _, dup := a.index[s]; dup {
			return nil, fmt.Errorf("NewAlphabet(%s): %w", symbolString(s), ErrDuplicateSymbol)
		}
		a.symbols[i] = s
		a.index[s] = i
	}

	return a, nil
}

// Letters builds a byte alphabet from the characters of s ("ACGT" → A,C,G,T).
func Letters(s string) (*Alphabet[byte], error) {
	return NewAlphabet([]byte(s)...)
}

// MustLetters is Letters for package-level tables; it panics on an invalid
// literal, which is a programmer error.
func MustLetters(s string) *Alphabet[byte] {
	a, err := Letters(s)
	if err != nil {
		panic(err)
	}

	return a
}

// Len returns the alphabet size k.
func (a *Alphabet[S]) Len() int {
	if a == nil {
		return 0
	}

	return len(a.symbols)
}

// Index returns the position of s and whether s belongs to the alphabet.
func (a *Alphabet[S]) Index(s S) (int, bool) {
	if a == nil {
		return 0, false
	}
	i, ok := a.index[s]

	return i, ok
}

// Contains reports whether s belongs to the alphabet.
func (a *Alphabet[S]) Contains(s S) bool {
	_, ok := a.Index(s)

	return ok
}

// Symbol returns the symbol at position i. It panics when i is outside
// [0, Len()), like a slice index.
func (a *Alphabet[S]) Symbol(i int) S { return a.symbols[i] }

// Symbols returns a copy of the symbols in index order.
func (a *Alphabet[S]) Symbols() []S {
	out := make([]S, a.Len())
	if a != nil {
		copy(out, a.symbols)
	}

	return out
}

// String renders byte alphabets as their letters, others with %v.
func (a *Alphabet[S]) String() string {
	if a == nil {
		return ""
	}
	if b, ok := any(a.symbols).([]byte); ok {
		return string(b)
	}

	return fmt.Sprint(a.symbols)
}
