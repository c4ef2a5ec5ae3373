// SPDX-License-Identifier: MIT

// Package distribution: the Store contract shared by the sparse and dense
// strategies, plus strategy-independent helpers (semantic equality, the
// numeric write guard).
//
// Canonical order:
//   - Every Store enumerates its entries in a canonical, deterministic order:
//     insertion order for Sparse, alphabet order for Dense.
//   - Heaviest and HeaviestExcluding resolve ties to the FIRST maximal entry
//     in canonical order. For a parsed position both orders coincide with the
//     order of the file's alphabet, so the two strategies agree.

package distribution

import (
	"fmt"
	"math"
	"strconv"
)

// Store holds a mapping symbol → probability.
//
// Contract:
//   - Get never fails; an absent symbol reports exactly 0.
//   - Set overwrites or creates the entry for s. It does not validate the
//     total mass; only NaN, ±Inf and negative values are rejected.
//   - Heaviest fails with ErrEmptyDistribution when Len()==0.
//   - HeaviestExcluding(x) fails with ErrNoAlternative when no entry other
//     than x exists (and ErrEmptyDistribution when there are no entries).
//   - Range visits entries in canonical order until fn returns false.
//
// Implementations are not safe for concurrent mutation.
type Store[S comparable] interface {
	// Get returns the probability mass of s, 0 when absent.
	Get(s S) float64

	// Set writes p for s, creating the entry if needed.
	Set(s S, p float64) error

	// Heaviest returns the symbol with maximal mass (first in canonical order on ties).
	Heaviest() (S, error)

	// HeaviestExcluding returns the heaviest symbol other than x.
	HeaviestExcluding(x S) (S, error)

	// Sum returns the total stored mass (linear scan).
	Sum() float64

	// Len returns the number of stored entries (alphabet size for Dense).
	Len() int

	// Range calls fn for each entry in canonical order; stops when fn returns false.
	Range(fn func(s S, p float64) bool)
}

// Compile-time assertions.
var (
	_ Store[byte]   = (*Sparse[byte])(nil)
	_ Store[byte]   = (*Dense[byte])(nil)
	_ Store[string] = (*Sparse[string])(nil)
)

// Entry is a (symbol, probability) pair used to seed stores in a fixed order.
type Entry[S comparable] struct {
	Symbol S
	P      float64
}

// Equal reports semantic equality of two stores: for every symbol present in
// either, both report the same probability (absence counts as 0).
// Hence {a:1} equals {a:1, b:0}, and a Sparse store may equal a Dense one.
//
// Complexity: O(a.Len() + b.Len()) lookups.
func Equal[S comparable](a, b Store[S]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	eq := true
	a.Range(func(s S, p float64) bool {
		eq = b.Get(s) == p

		return eq
	})
	if !eq {
		return false
	}
	b.Range(func(s S, p float64) bool {
		eq = a.Get(s) == p

		return eq
	})

	return eq
}

// Support returns the symbols with strictly positive mass, in canonical order.
func Support[S comparable](st Store[S]) []S {
	out := make([]S, 0, st.Len())
	st.Range(func(s S, p float64) bool {
		if p > 0 {
			out = append(out, s)
		}

		return true
	})

	return out
}

// checkProbability enforces the write-side numeric policy.
func checkProbability(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return ErrBadProbability
	}

	return nil
}

// storeErrorf wraps a sentinel with the strategy, method and offending symbol.
func storeErrorf[S comparable](kind, method string, s S, err error) error {
	return fmt.Errorf("%s.%s(%s): %w", kind, method, symbolString(s), err)
}

// symbolString renders byte symbols as quoted characters, anything else via %v.
func symbolString[S comparable](s S) string {
	if b, ok := any(s).(byte); ok {
		return strconv.QuoteRune(rune(b))
	}

	return fmt.Sprint(s)
}
