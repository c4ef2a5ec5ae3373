// Package weighted models uncertain symbolic sequences: every position holds
// a probability distribution over an alphabet instead of a single symbol.
//
// Layers, leaves first:
//
//   - Element[S, D]  — one distribution store D plus a tolerance. Strict
//     construction requires |1 − Σp| < tolerance + machine epsilon and fails
//     with ErrInvalidProbabilityMass otherwise; lenient construction defers
//     the check to IsGood.
//   - Symbol[D]      — an Element over byte symbols with gap-excluding queries.
//   - Sequence[D]    — ordered symbols plus an optional gap; consensus strings
//     and profile matrices.
//   - Collection[D]  — ordered sequences.
//
// Store strategies come from package distribution (Sparse, Dense) or from
// package dna (Dense with ambiguity-code decoding). Text input and output
// live in package wsio.
//
// Example:
//
//	sp, _ := distribution.NewSparse(
//		distribution.Entry[byte]{Symbol: 'a', P: .2},
//		distribution.Entry[byte]{Symbol: 'b', P: .8},
//	)
//	sy, err := weighted.NewSymbol(sp)                  // strict, tolerance 0
//	seq := weighted.NewSequence(sy)
//	s, _ := seq.Consensus(true)                        // "b"
package weighted
