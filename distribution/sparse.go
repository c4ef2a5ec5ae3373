// SPDX-License-Identifier: MIT

// Package distribution: Sparse, the keyed strategy for open alphabets.
//
// Purpose:
//   - Store only the symbols that were written, so memory follows the observed
//     support rather than the alphabet size.
//   - Keep a deterministic canonical order (first insertion) so that ties in
//     Heaviest never depend on hash iteration.
//
// Complexity quicksheet:
//   - Get/Set: O(1) amortized; Heaviest/HeaviestExcluding/Sum/Range: O(n).

package distribution

const kindSparse = "Sparse"

// Sparse maps symbols to probabilities. The zero value is an empty,
// ready-to-use distribution.
type Sparse[S comparable] struct {
	index   map[S]int // symbol → slot in keys/weights
	keys    []S       // insertion order
	weights []float64 // parallel to keys
}

// NewSparse returns a Sparse store seeded with entries in the given order.
// A later entry for an already-seen symbol overwrites the earlier value but
// keeps its original position.
//
// Errors:
//   - ErrBadProbability when an entry is NaN, ±Inf or negative.
func NewSparse[S comparable](entries ...Entry[S]) (*Sparse[S], error) {
	sp := &Sparse[S]{}
	for _, e := range entries {
		if err := sp.Set(e.Symbol, e.P); err != nil {
			return nil, err
		}
	}

	return sp, nil
}

// Get returns the mass of s, 0 when s was never written.
func (sp *Sparse[S]) Get(s S) float64 {
	if i, ok := sp.index[s]; ok {
		return sp.weights[i]
	}

	return 0
}

// Has reports whether s has an entry (possibly an explicit zero).
func (sp *Sparse[S]) Has(s S) bool {
	_, ok := sp.index[s]

	return ok
}

// Set creates or overwrites the entry for s.
func (sp *Sparse[S]) Set(s S, p float64) error {
	if err := checkProbability(p); err != nil {
		return storeErrorf(kindSparse, "Set", s, err)
	}
	if i, ok := sp.index[s]; ok {
		sp.weights[i] = p

		return nil
	}
	if sp.index == nil {
		sp.index = make(map[S]int)
	}
	sp.index[s] = len(sp.keys)
	sp.keys = append(sp.keys, s)
	sp.weights = append(sp.weights, p)

	return nil
}

// Heaviest returns the first symbol of maximal mass in insertion order.
func (sp *Sparse[S]) Heaviest() (S, error) {
	var zero S
	if len(sp.keys) == 0 {
		return zero, storeErrorf(kindSparse, "Heaviest", zero, ErrEmptyDistribution)
	}
	best := 0
	for i := 1; i < len(sp.weights); i++ {
		if sp.weights[i] > sp.weights[best] { // strict: earlier entry wins ties
			best = i
		}
	}

	return sp.keys[best], nil
}

// HeaviestExcluding returns the first symbol of maximal mass other than x.
//
// Errors:
//   - ErrEmptyDistribution when the store has no entries.
//   - ErrNoAlternative when x is the only entry.
func (sp *Sparse[S]) HeaviestExcluding(x S) (S, error) {
	var zero S
	if len(sp.keys) == 0 {
		return zero, storeErrorf(kindSparse, "HeaviestExcluding", x, ErrEmptyDistribution)
	}
	best := -1
	for i, k := range sp.keys {
		if k == x {
			continue
		}
		if best < 0 || sp.weights[i] > sp.weights[best] {
			best = i
		}
	}
	if best < 0 {
		return zero, storeErrorf(kindSparse, "HeaviestExcluding", x, ErrNoAlternative)
	}

	return sp.keys[best], nil
}

// Sum returns the total mass.
func (sp *Sparse[S]) Sum() float64 {
	var total float64
	for _, w := range sp.weights {
		total += w
	}

	return total
}

// Len returns the number of stored entries, explicit zeros included.
func (sp *Sparse[S]) Len() int { return len(sp.keys) }

// Range visits entries in insertion order.
func (sp *Sparse[S]) Range(fn func(s S, p float64) bool) {
	for i, k := range sp.keys {
		if !fn(k, sp.weights[i]) {
			return
		}
	}
}

// Clone returns an independent copy preserving insertion order.
func (sp *Sparse[S]) Clone() *Sparse[S] {
	cp := &Sparse[S]{
		index:   make(map[S]int, len(sp.keys)),
		keys:    append([]S(nil), sp.keys...),
		weights: append([]float64(nil), sp.weights...),
	}
	for i, k := range cp.keys {
		cp.index[k] = i
	}

	return cp
}
