package weighted

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wstr/distribution"
	"github.com/katalvlaran/wstr/matrix"
)

// Sequence is an ordered list of weighted symbols plus an optional gap symbol.
//
// The gap is interpretive metadata only: it is never required to appear in
// any position's distribution, and setting it does not touch the positions.
// Length changes only through Append, Clear or decoding.
type Sequence[D distribution.Store[byte]] struct {
	symbols []*Symbol[D]
	gap     byte
	hasGap  bool
}

// NewSequence returns a sequence over the given symbols, without a gap.
// Nil symbols are skipped.
func NewSequence[D distribution.Store[byte]](symbols ...*Symbol[D]) *Sequence[D] {
	seq := &Sequence[D]{symbols: make([]*Symbol[D], 0, len(symbols))}
	for _, sy := range symbols {
		if sy != nil {
			seq.symbols = append(seq.symbols, sy)
		}
	}

	return seq
}

// SetGap designates g as the gap symbol.
func (seq *Sequence[D]) SetGap(g byte) {
	seq.gap = g
	seq.hasGap = true
}

// ClearGap returns the sequence to the "no gap" state.
func (seq *Sequence[D]) ClearGap() {
	seq.gap = 0
	seq.hasGap = false
}

// Gap returns the gap symbol and whether one is set.
func (seq *Sequence[D]) Gap() (byte, bool) { return seq.gap, seq.hasGap }

// HasGap reports whether a gap symbol is set.
func (seq *Sequence[D]) HasGap() bool { return seq.hasGap }

// Len returns the number of positions.
func (seq *Sequence[D]) Len() int { return len(seq.symbols) }

// At returns the symbol at position i.
func (seq *Sequence[D]) At(i int) (*Symbol[D], error) {
	if i < 0 || i >= len(seq.symbols) {
		return nil, fmt.Errorf("Sequence.At(%d) len=%d: %w", i, len(seq.symbols), ErrIndexOutOfRange)
	}

	return seq.symbols[i], nil
}

// Set replaces the symbol at position i.
func (seq *Sequence[D]) Set(i int, sy *Symbol[D]) error {
	if sy == nil {
		return fmt.Errorf("Sequence.Set(%d): %w", i, ErrNilSymbol)
	}
	if i < 0 || i >= len(seq.symbols) {
		return fmt.Errorf("Sequence.Set(%d) len=%d: %w", i, len(seq.symbols), ErrIndexOutOfRange)
	}
	seq.symbols[i] = sy

	return nil
}

// Append adds symbols at the end.
func (seq *Sequence[D]) Append(symbols ...*Symbol[D]) error {
	for _, sy := range symbols {
		if sy == nil {
			return fmt.Errorf("Sequence.Append: %w", ErrNilSymbol)
		}
	}
	seq.symbols = append(seq.symbols, symbols...)

	return nil
}

// Clear drops every position; the gap setting is kept.
func (seq *Sequence[D]) Clear() { seq.symbols = nil }

// Symbols returns the positions in order. The slice is a copy; the symbols
// themselves are shared.
func (seq *Sequence[D]) Symbols() []*Symbol[D] {
	return append([]*Symbol[D](nil), seq.symbols...)
}

// Consensus returns, for each position, its heaviest symbol (plain Heaviest,
// not the gap-excluding variant).
//
// With includeGap=false, positions whose heaviest symbol equals the gap are
// dropped from the output. Without a gap set, both modes are identical.
//
// Errors:
//   - distribution.ErrEmptyDistribution (wrapped with the position) when a
//     position has no entries.
func (seq *Sequence[D]) Consensus(includeGap bool) (string, error) {
	var b strings.Builder
	b.Grow(len(seq.symbols))
	for i, sy := range seq.symbols {
		c, err := sy.HeaviestSymbol()
		if err != nil {
			return "", fmt.Errorf("Sequence.Consensus position %d: %w", i, err)
		}
		if !includeGap && seq.hasGap && c == seq.gap {
			continue
		}
		b.WriteByte(c)
	}

	return b.String(), nil
}

// Heaviest is Consensus(true).
func (seq *Sequence[D]) Heaviest() (string, error) { return seq.Consensus(true) }

// HeaviestUngapped is Consensus(false).
func (seq *Sequence[D]) HeaviestUngapped() (string, error) { return seq.Consensus(false) }

// Profile exports the sequence as a Len() × len(symbols) matrix where
// cell (i, j) is Probability(symbols[j]) at position i. Ambiguity decoding of
// the store applies, so extended symbols may be requested as columns.
//
// Errors:
//   - ErrEmptySequence for a zero-length sequence.
//   - matrix.ErrInvalidDimensions when symbols is empty.
func (seq *Sequence[D]) Profile(symbols []byte) (*matrix.Dense, error) {
	if len(seq.symbols) == 0 {
		return nil, fmt.Errorf("Sequence.Profile: %w", ErrEmptySequence)
	}
	m, err := matrix.NewDense(len(seq.symbols), len(symbols))
	if err != nil {
		return nil, fmt.Errorf("Sequence.Profile: %w", err)
	}
	for i, sy := range seq.symbols {
		for j, s := range symbols {
			if err = m.Set(i, j, sy.Probability(s)); err != nil {
				return nil, fmt.Errorf("Sequence.Profile: %w", err)
			}
		}
	}

	return m, nil
}

// IsGood reports whether every position is well-formed under its own tolerance.
func (seq *Sequence[D]) IsGood() bool {
	for _, sy := range seq.symbols {
		if !sy.IsGood() {
			return false
		}
	}

	return true
}

// Equal is positional element-wise equality; different lengths are unequal.
// The gap setting is metadata and is not compared.
func (seq *Sequence[D]) Equal(other *Sequence[D]) bool {
	if seq == nil || other == nil {
		return seq == other
	}
	if len(seq.symbols) != len(other.symbols) {
		return false
	}
	for i := range seq.symbols {
		if !seq.symbols[i].Equal(other.symbols[i]) {
			return false
		}
	}

	return true
}
