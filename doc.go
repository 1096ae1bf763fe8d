// Package matrixtoolkit is a self-contained playground for dense matrix
// arithmetic over real numbers — construction, algebra, and derived
// properties.
//
// 🚀 What is matrix-toolkit?
//
//	A small, pure-Go library that brings together:
//		• Canonical constructors: explicit rows, zero, identity, scalar, diagonal
//		• Elementwise algebra: add, subtract, negate, scale, Hadamard product
//		• Linear algebra: matrix and matrix–vector products, transpose, trace
//		• Determinant machinery: minors, cofactors, adjugate, inverse
//		• Structural predicates: square, zero, diagonal, scalar, identity,
//		  symmetric, skew-symmetric, singular
//
// ✨ Why choose matrix-toolkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable values, sentinel errors, no panics
//   - Pure Go – no cgo, no hidden deps
//   - One numeric policy – a single documented epsilon shared by every
//     comparison and singularity check
//
// Everything lives in one subpackage:
//
//	matrix/ — the Matrix surface, Dense storage, operations & predicates
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	inv, err := matrix.Inverse(a)
//	if err != nil {
//		// errors.Is(err, matrix.ErrSingular), matrix.ErrNonSquare, ...
//	}
//	fmt.Print(inv) // [-2, 1] / [1.5, -0.5]
//
// Operations never mutate their operands: each returns a freshly allocated
// result, so independent callers may share Matrix values freely.
package matrixtoolkit
