// SPDX-License-Identifier: MIT

// Package matrix: public Matrix surface.
// The interface is intentionally read-only: a Matrix is immutable once
// constructed, and every operation in this package returns a freshly
// allocated result instead of mutating an operand. Mutation exists only
// inside constructors, before a value is handed to the caller.
package matrix

// Matrix represents a rectangular grid of float64 values, row-major,
// 0-indexed. Implementations must be safe for concurrent readers since
// nothing on this surface mutates.
//
// Complexity notes: all methods are expected O(1) except Row/Col (O(n))
// and Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix (always >= 1).
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix (always >= 1).
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Row returns a copy of row i.
	// Returns ErrOutOfRange on an invalid index.
	// Complexity: O(cols).
	Row(i int) ([]float64, error)

	// Col returns a copy of column j.
	// Returns ErrOutOfRange on an invalid index.
	// Complexity: O(rows).
	Col(j int) ([]float64, error)

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
