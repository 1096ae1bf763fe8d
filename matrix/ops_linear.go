// SPDX-License-Identifier: MIT
// Package matrix: linear kernels (Mul, MatVec, Transpose, Trace).
//
// Purpose:
//   - Provide the non-elementwise linear operations with the same contract
//     as the elementwise file: strict validation, fresh result, no mutation.
//
// Determinism & Performance:
//   - Fixed i→j→k loop orders; *Dense fast-paths walk flat buffers with
//     cached row offsets.

package matrix

// ZeroSum is the initial accumulator value for dot products and traces.
const ZeroSum = 0.0

// Mul returns the matrix product a·b.
// Stage 1 (Validate): ValidateMulShape — a.Cols must equal b.Rows.
// Stage 2 (Execute): triple loop with a dot-product accumulator per cell;
// fast-path when both operands are *Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(a.Rows * b.Cols * a.Cols) time, O(a.Rows * b.Cols) space.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewZero(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path: both *Dense → flat indexing with cached row bases.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var sum float64
			for i := 0; i < rows; i++ {
				baseA := i * inner // row i of a
				baseR := i * cols  // row i of the result
				for j := 0; j < cols; j++ {
					sum = ZeroSum
					for k := 0; k < inner; k++ {
						sum += da.data[baseA+k] * db.data[k*cols+j]
					}
					res.data[baseR+j] = sum
				}
			}

			return res, nil
		}
	}

	// Generic fallback via At.
	var va, vb, sum float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum = ZeroSum
			for k := 0; k < inner; k++ {
				if va, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if vb, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += va * vb
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// MatVec returns the product m·x as a fresh slice of length m.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols).
// Complexity: O(r*c) time, O(r) space.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(m, x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)

	// Fast path: flat row walks.
	if d, ok := m.(*Dense); ok {
		var sum float64
		for i := 0; i < rows; i++ {
			base := i * cols
			sum = ZeroSum
			for j := 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			out[i] = sum
		}

		return out, nil
	}

	// Generic fallback.
	var v, sum float64
	var err error
	for i := 0; i < rows; i++ {
		sum = ZeroSum
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Transpose returns the c×r matrix with entry (i,j) = m(j,i). Always
// succeeds on a non-nil operand.
// Errors: ErrNilMatrix. Complexity: O(r*c) time and space.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewZero(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path: read row-major, write column-major into the result.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[base+j]
			}
		}

		return res, nil
	}

	// Generic fallback.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Trace returns the sum of the main-diagonal entries.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n) time.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	sum := ZeroSum

	// Fast path: stride n+1 over the flat buffer.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += d.data[i*n+i]
		}

		return sum, nil
	}

	// Generic fallback.
	var v float64
	var err error
	for i := 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}
