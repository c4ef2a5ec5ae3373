// SPDX-License-Identifier: MIT

// Package distribution: Dense, the indexed strategy for fixed finite alphabets.
//
// Purpose:
//   - A flat []float64 of length k addressed through an Alphabet bijection.
//   - O(1) Get/Set without hashing the value slice; memory is O(k) whatever
//     the support, which is the trade-off against Sparse.
//
// Behavior highlights:
//   - Get on an out-of-alphabet symbol returns 0 (same no-fail convention as
//     Sparse); Set on one fails with ErrUnknownSymbol.
//   - Every alphabet position is an entry: Len()==k, Range visits all k
//     positions including zeros, Heaviest never fails for k>0.
//   - Ties resolve to the lowest index.

package distribution

import "fmt"

const kindDense = "Dense"

// Dense stores one probability per alphabet position.
type Dense[S comparable] struct {
	alpha *Alphabet[S] // shared, immutable
	data  []float64    // len == alpha.Len()
}

// NewDense returns an all-zero distribution over a.
// A nil alphabet yields an empty store (Len()==0).
func NewDense[S comparable](a *Alphabet[S]) *Dense[S] {
	return &Dense[S]{alpha: a, data: make([]float64, a.Len())}
}

// DenseOf returns a store over a filled positionally from values.
//
// Errors:
//   - ErrLengthMismatch when len(values) != a.Len().
//   - ErrBadProbability when a value is NaN, ±Inf or negative.
func DenseOf[S comparable](a *Alphabet[S], values ...float64) (*Dense[S], error) {
	if len(values) != a.Len() {
		return nil, fmt.Errorf("DenseOf(%d values, alphabet %d): %w", len(values), a.Len(), ErrLengthMismatch)
	}
	d := NewDense(a)
	for i, v := range values {
		if err := checkProbability(v); err != nil {
			return nil, storeErrorf(kindDense, "DenseOf", a.Symbol(i), err)
		}
		d.data[i] = v
	}

	return d, nil
}

// Alphabet returns the backing alphabet.
func (d *Dense[S]) Alphabet() *Alphabet[S] { return d.alpha }

// Get returns the mass of s, 0 when s is outside the alphabet.
func (d *Dense[S]) Get(s S) float64 {
	if i, ok := d.alpha.Index(s); ok {
		return d.data[i]
	}

	return 0
}

// Set writes p at the position of s.
//
// Errors:
//   - ErrUnknownSymbol when s is outside the alphabet.
//   - ErrBadProbability when p is NaN, ±Inf or negative.
func (d *Dense[S]) Set(s S, p float64) error {
	i, ok := d.alpha.Index(s)
	if !ok {
		return storeErrorf(kindDense, "Set", s, ErrUnknownSymbol)
	}
	if err := checkProbability(p); err != nil {
		return storeErrorf(kindDense, "Set", s, err)
	}
	d.data[i] = p

	return nil
}

// Heaviest scans positions in index order; ties resolve to the lowest index.
func (d *Dense[S]) Heaviest() (S, error) {
	var zero S
	if len(d.data) == 0 {
		return zero, storeErrorf(kindDense, "Heaviest", zero, ErrEmptyDistribution)
	}
	best := 0
	for i := 1; i < len(d.data); i++ {
		if d.data[i] > d.data[best] {
			best = i
		}
	}

	return d.alpha.Symbol(best), nil
}

// HeaviestExcluding scans every position except the one of x. A symbol
// outside the alphabet excludes nothing.
//
// Errors:
//   - ErrEmptyDistribution for an empty alphabet.
//   - ErrNoAlternative when the alphabet is exactly {x}.
func (d *Dense[S]) HeaviestExcluding(x S) (S, error) {
	var zero S
	if len(d.data) == 0 {
		return zero, storeErrorf(kindDense, "HeaviestExcluding", x, ErrEmptyDistribution)
	}
	skip, ok := d.alpha.Index(x)
	if !ok {
		skip = -1
	}
	best := -1
	for i, w := range d.data {
		if i == skip {
			continue
		}
		if best < 0 || w > d.data[best] {
			best = i
		}
	}
	if best < 0 {
		return zero, storeErrorf(kindDense, "HeaviestExcluding", x, ErrNoAlternative)
	}

	return d.alpha.Symbol(best), nil
}

// Sum returns the total mass.
func (d *Dense[S]) Sum() float64 {
	var total float64
	for _, w := range d.data {
		total += w
	}

	return total
}

// Len returns the alphabet size.
func (d *Dense[S]) Len() int { return len(d.data) }

// Range visits every alphabet position in index order, zeros included.
func (d *Dense[S]) Range(fn func(s S, p float64) bool) {
	for i, w := range d.data {
		if !fn(d.alpha.Symbol(i), w) {
			return
		}
	}
}

// Values returns a copy of the positional values.
func (d *Dense[S]) Values() []float64 { return append([]float64(nil), d.data...) }

// Clone returns an independent copy sharing the immutable alphabet.
func (d *Dense[S]) Clone() *Dense[S] {
	return &Dense[S]{alpha: d.alpha, data: append([]float64(nil), d.data...)}
}
