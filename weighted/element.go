package weighted

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wstr/distribution"
)

// Element wraps one distribution store with a tolerance and the
// well-formedness rule
//
//	|1 − Σp| < tolerance + machine epsilon
//
// S is the symbol type, D the concrete store; D is a type parameter rather
// than an interface field so lookups on a Dense store stay statically
// dispatched.
type Element[S comparable, D distribution.Store[S]] struct {
	dist      D
	tolerance float64
}

// NewElement wraps dist. Under strict construction (the default) it fails
// with ErrInvalidProbabilityMass when dist is not well-formed under the
// configured tolerance. Ownership of dist passes to the element.
//
// S usually has to be given explicitly: weighted.NewElement[byte](store).
func NewElement[S comparable, D distribution.Store[S]](dist D, opts ...Option) (*Element[S, D], error) {
	o := gatherOptions(opts...)
	el := &Element[S, D]{dist: dist, tolerance: o.tolerance}
	if o.strict && !el.IsGood() {
		return nil, fmt.Errorf("NewElement(sum=%g, tolerance=%g): %w", dist.Sum(), o.tolerance, ErrInvalidProbabilityMass)
	}

	return el, nil
}

// Probability returns the mass of s; 0 when absent. Never fails.
func (el *Element[S, D]) Probability(s S) float64 { return el.dist.Get(s) }

// Set overwrites or creates the entry for s. The mass is not re-validated.
func (el *Element[S, D]) Set(s S, p float64) error { return el.dist.Set(s, p) }

// HeaviestSymbol returns the symbol of maximal mass.
// Fails with distribution.ErrEmptyDistribution on an empty store.
func (el *Element[S, D]) HeaviestSymbol() (S, error) { return el.dist.Heaviest() }

// HeaviestProbability returns the mass paired with HeaviestSymbol.
func (el *Element[S, D]) HeaviestProbability() (float64, error) {
	s, err := el.dist.Heaviest()
	if err != nil {
		return 0, err
	}

	return el.dist.Get(s), nil
}

// Sum returns the total mass.
func (el *Element[S, D]) Sum() float64 { return el.dist.Sum() }

// IsGood reports well-formedness under the stored tolerance.
func (el *Element[S, D]) IsGood() bool { return el.IsGoodWithin(el.tolerance) }

// IsGoodWithin reports well-formedness under tol instead of the stored
// tolerance. Pure predicate; nothing is modified.
func (el *Element[S, D]) IsGoodWithin(tol float64) bool {
	return math.Abs(1-el.dist.Sum()) < tol+machineEpsilon
}

// Tolerance returns the stored tolerance.
func (el *Element[S, D]) Tolerance() float64 { return el.tolerance }

// SetTolerance replaces the stored tolerance. Only later IsGood calls are
// affected; stored probabilities are untouched.
func (el *Element[S, D]) SetTolerance(tol float64) error {
	if !validTolerance(tol) {
		return fmt.Errorf("SetTolerance(%g): %w", tol, ErrBadTolerance)
	}
	el.tolerance = tol

	return nil
}

// Distribution exposes the backing store.
func (el *Element[S, D]) Distribution() D { return el.dist }

// Equal is semantic equality of the distributions; tolerance is ignored.
func (el *Element[S, D]) Equal(other *Element[S, D]) bool {
	if el == nil || other == nil {
		return el == other
	}

	return distribution.Equal[S](el.dist, other.dist)
}
