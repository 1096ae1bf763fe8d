// SPDX-License-Identifier: MIT
// Package matrix: elementwise kernels (Add, Sub, Neg, Scale, Hadamard).
//
// Purpose:
//   - Declare the canonical elementwise operations shared by the package,
//     with strict fail-fast validation via the central validators.
//   - Keep all loops deterministic and cache-friendly with *Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 in fast-path, i→j in fallback).
//   - Single result allocation per call; operands are never mutated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opNeg       = "Neg"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opTrace     = "Trace"
	opMinor     = "Minor"
	opDet       = "Det"
	opCofactor  = "Cofactor"
	opAdjoint   = "Adjoint"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
// Stage 1 (Validate): ValidateBinarySameShape(a, b); allocate result Dense.
// Stage 2 (Execute): fast-path if both are *Dense — single flat loop;
// otherwise fall back to At with fixed i→j order.
// Complexity: O(r*c) time, O(r*c) space for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewZero(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Generic fallback via At (still deterministic).
	var va, vb float64
	for i := 0; i < rows; i++ {
		base := i * cols // base offset for row i
		for j := 0; j < cols; j++ {
			if va, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if vb, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[base+j] = va + sign*vb
		}
	}

	return res, nil
}

// Add returns the elementwise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the elementwise difference a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns m with every entry multiplied by alpha.
// Always succeeds for finite alpha; ErrNaNInf on NaN/±Inf alpha.
// Complexity: O(r*c) time and space.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err := ValidateFinite(alpha); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewZero(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: flat walk over the backing slice.
	if d, ok := m.(*Dense); ok {
		length := rows * cols
		for idx := 0; idx < length; idx++ {
			res.data[idx] = alpha * d.data[idx]
		}

		return res, nil
	}

	// Generic fallback.
	var v float64
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[base+j] = alpha * v
		}
	}

	return res, nil
}

// Neg returns −m, i.e. Scale(m, −1).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Neg(m Matrix) (Matrix, error) {
	res, err := Scale(m, -1)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return res, nil
}

// Hadamard returns the elementwise (Schur) product of a and b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewZero(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Fast path: both *Dense → flat loop over backing slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	// Generic fallback.
	var va, vb float64
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			if va, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			if vb, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			res.data[base+j] = va * vb
		}
	}

	return res, nil
}
