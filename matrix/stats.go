// SPDX-License-Identifier: MIT

// Package matrix - row statistics used on profile matrices.
//
// Determinism:
//   - Fixed i→j traversal; no randomness.
//   - Fast path on *Dense reads the flat slice; other Matrix values go through At.

package matrix

import "fmt"

const (
	opRowSums         = "RowSums"
	opNormalizeRowsL1 = "NormalizeRowsL1"
)

// matrixErrorf tags an error with the operation name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RowSums returns Σ_j x_ij for every row i. For a profile matrix this is the
// total probability mass of each position.
//
// Errors:
//   - ErrNilMatrix when X is nil; wrapped At errors on the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSums(X Matrix) ([]float64, error) {
	if X == nil {
		return nil, matrixErrorf(opRowSums, ErrNilMatrix)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, r)

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				sums[i] += d.data[base+j]
			}
		}

		return sums, nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// NormalizeRowsL1 returns a copy of X whose rows each sum (in absolute
// value) to one, together with the original L1 norms.
//
// Behavior highlights:
//   - Degenerate rows (norm==0) are left unchanged (stable policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowsL1(X Matrix) (*Dense, []float64, error) {
	if X == nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, ErrNilMatrix)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	norms := make([]float64, r)
	var v float64
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
			}
			out.data[base+j] = v
			if v < 0 {
				v = -v
			}
			norms[i] += v
		}
		if norms[i] > 0 {
			scale := 1.0 / norms[i]
			for j := 0; j < c; j++ {
				out.data[base+j] *= scale
			}
		}
	}

	return out, norms, nil
}
