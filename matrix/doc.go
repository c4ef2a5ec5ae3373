// Package matrix provides a small row-major float64 matrix used to export
// weighted sequences as position × symbol probability profiles.
//
// The matrix package provides:
//
//   - Dense with bounds-checked At/Set/Row (errors, never panics) and a
//     finite-only numeric policy on Set.
//   - RowSums and NormalizeRowsL1 for per-position mass checks and
//     renormalisation of lenient input.
//
// See weighted.Sequence.Profile for the producer of these matrices.
package matrix
