// SPDX-License-Identifier: MIT
// Package matrix: Inverse via the adjugate.

package matrix

import "math"

// Inverse returns m⁻¹ computed as Adjoint(m) scaled by 1/Det(m).
// Stage 1 (Validate): non-nil and square.
// Stage 2 (Singularity): compute the determinant once; when |det| falls
// under the effective epsilon (DefaultEpsilon unless WithEpsilon is given)
// the matrix is treated as singular and ErrSingular is returned — never a
// zero or partial result.
// Stage 3 (Execute): scale the adjugate by the reciprocal determinant.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: dominated by Adjoint — O(n² · (n−1)!) time, O(n²) space.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det, err := Det(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(det) < gatherOptions(opts...).eps {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	adj, err := Adjoint(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	inv, err := Scale(adj, 1/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
