// Package distribution stores discrete probability distributions: a mapping
// from a symbol of some alphabet to a non-negative probability mass.
//
// Two interchangeable strategies satisfy one Store contract:
//
//   - Sparse — keyed by symbol; unbounded alphabets; memory follows the
//     observed support. Canonical order is first insertion.
//   - Dense  — a flat array addressed through an Alphabet bijection; fixed
//     finite alphabets; O(1) indexed access; memory O(k). Canonical order is
//     alphabet order.
//
// Both strategies agree on the observable semantics:
//
//   - Get of an absent symbol is exactly 0 and never fails.
//   - Equal is semantic: {a:1} equals {a:1, b:0}.
//   - Heaviest resolves ties to the first maximal entry in canonical order.
//
// Writes reject NaN, ±Inf and negative values (ErrBadProbability) but do not
// check that the mass sums to one; that is the job of package weighted.
//
// Strategies are selected at compile time through type parameters, so hot
// lookups on Dense stores do not go through an interface:
//
//	alpha, _ := distribution.Letters("ACGT")
//	d := distribution.NewDense(alpha)
//	_ = d.Set('G', 0.7)
//	_ = d.Set('A', 0.3)
//	s, _ := d.Heaviest() // 'G'
package distribution
