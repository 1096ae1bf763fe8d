// SPDX-License-Identifier: MIT
// Package matrix: structural predicates and tolerance-aware comparison.
//
// Purpose:
//   - Provide total, pure predicates over the data model: every predicate
//     answers true/false for every matrix, never an error. Predicates that
//     only make sense for square matrices answer false on non-square (and
//     nil) input instead of failing.
//   - Route every value comparison through one approximate-equality helper
//     so IsSymmetric, IsSingular, Equal and friends can never drift apart
//     on tolerance handling.

package matrix

import "math"

// approxEq reports |a−b| <= eps. The single comparison primitive for the
// whole package.
func approxEq(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// entry reads m(i,j), treating a read failure as "no value". Indices are
// always in range at the call sites below, so ok is false only for a
// misbehaving foreign Matrix implementation.
func entry(m Matrix, i, j int) (float64, bool) {
	v, err := m.At(i, j)

	return v, err == nil
}

// IsSquare reports whether m has equal row and column counts.
// Nil input is not square. O(1).
func IsSquare(m Matrix) bool {
	return m != nil && m.Rows() == m.Cols()
}

// IsZero reports whether every entry of m is within eps of 0. Defined for
// every shape; nil input is not a zero matrix. O(r*c).
func IsZero(m Matrix, opts ...Option) bool {
	if m == nil {
		return false
	}
	eps := gatherOptions(opts...).eps

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, ok := entry(m, i, j)
			if !ok || !approxEq(v, 0, eps) {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports whether m is square with every off-diagonal entry
// within eps of 0. False on non-square input. O(n²).
func IsDiagonal(m Matrix, opts ...Option) bool {
	if !IsSquare(m) {
		return false
	}
	eps := gatherOptions(opts...).eps

	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, ok := entry(m, i, j)
			if !ok || !approxEq(v, 0, eps) {
				return false
			}
		}
	}

	return true
}

// IsScalar reports whether m is diagonal with all diagonal entries equal
// (within eps) to m(0,0). False on non-square input. O(n²).
func IsScalar(m Matrix, opts ...Option) bool {
	if !IsDiagonal(m, opts...) {
		return false
	}
	eps := gatherOptions(opts...).eps

	first, ok := entry(m, 0, 0)
	if !ok {
		return false
	}
	for i := 1; i < m.Rows(); i++ {
		v, ok := entry(m, i, i)
		if !ok || !approxEq(v, first, eps) {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is a scalar matrix with diagonal value 1
// (within eps). False on non-square input. O(n²).
func IsIdentity(m Matrix, opts ...Option) bool {
	if !IsScalar(m, opts...) {
		return false
	}

	v, ok := entry(m, 0, 0)

	return ok && approxEq(v, 1, gatherOptions(opts...).eps)
}

// IsSymmetric reports whether m equals its transpose within eps, checked on
// the upper triangle only. False on non-square input. O(n²).
func IsSymmetric(m Matrix, opts ...Option) bool {
	if !IsSquare(m) {
		return false
	}
	eps := gatherOptions(opts...).eps

	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, okA := entry(m, i, j)
			b, okB := entry(m, j, i)
			if !okA || !okB || !approxEq(a, b, eps) {
				return false
			}
		}
	}

	return true
}

// IsSkewSymmetric reports whether m equals the negation of its transpose
// within eps. The diagonal must be within eps of 0 (forced by a(i,i) ==
// −a(i,i)). False on non-square input. O(n²).
func IsSkewSymmetric(m Matrix, opts ...Option) bool {
	if !IsSquare(m) {
		return false
	}
	eps := gatherOptions(opts...).eps

	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a, okA := entry(m, i, j)
			b, okB := entry(m, j, i)
			if !okA || !okB || !approxEq(a, -b, eps) {
				return false
			}
		}
	}

	return true
}

// IsSingular reports whether m is square with a determinant within eps of
// zero. False on non-square input — non-square matrices have no
// determinant, so the question does not arise. Cost is Det's cost.
func IsSingular(m Matrix, opts ...Option) bool {
	if !IsSquare(m) {
		return false
	}

	det, err := Det(m)
	if err != nil {
		return false
	}

	return approxEq(det, 0, gatherOptions(opts...).eps)
}

// Equal reports whether a and b have identical shape and entrywise values
// within eps. Two nils are not equal (there is no value to compare). O(r*c).
func Equal(a, b Matrix, opts ...Option) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	eps := gatherOptions(opts...).eps

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			va, okA := entry(a, i, j)
			vb, okB := entry(b, i, j)
			if !okA || !okB || !approxEq(va, vb, eps) {
				return false
			}
		}
	}

	return true
}
