// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & canonical constructors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors
//     instead of panicking.
//   - Enforce the numeric policy (rejection of NaN/Inf) at construction,
//     so every constructed matrix holds only finite values.
//
// Complexity quicksheet:
//   - Constructors: O(r*c); At: O(1); Row/Col: O(n); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite
// indices, preserving the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1 for any constructed value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewZero creates an r×c matrix with every entry 0.
// Stage 1 (Validate): ensure rows > 0 and cols > 0, else ErrInvalidDimensions.
// Stage 2 (Prepare): allocate the flat backing slice (zeroed by the runtime).
// Complexity: O(r*c) time and memory.
func NewZero(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows creates a matrix from an explicit row set.
// Stage 1 (Validate): reject an empty row set, an empty first row, and
// ragged rows with ErrBadShape; reject NaN/±Inf entries with ErrNaNInf.
// Stage 2 (Ingest): copy every row into the flat buffer; the input slices
// remain owned by the caller and are never aliased.
// Complexity: O(r*c) time and memory.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
		for _, v := range row {
			if isNonFinite(v) {
				return nil, ErrNaNInf
			}
		}
	}

	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewDiagonal creates an n×n matrix with values on the main diagonal and 0
// elsewhere, where n = len(values). Empty input yields ErrInvalidDimensions;
// non-finite entries yield ErrNaNInf.
// Complexity: O(n²) time and memory.
func NewDiagonal(values []float64) (*Dense, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}

	m, err := NewZero(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if isNonFinite(v) {
			return nil, ErrNaNInf
		}
		m.data[i*n+i] = v
	}

	return m, nil
}

// NewScalar creates an n×n matrix with k on the main diagonal and 0 elsewhere.
// Complexity: O(n²) time and memory.
func NewScalar(n int, k float64) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if isNonFinite(k) {
		return nil, ErrNaNInf
	}

	m, _ := NewZero(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = k
	}

	return m, nil
}

// NewIdentity creates the n×n identity matrix.
// Complexity: O(n²) time and memory.
func NewIdentity(n int) (*Dense, error) {
	return NewScalar(n, 1)
}

// Rows returns the number of rows in the matrix. O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col), or ErrOutOfRange. O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Row returns a copy of row i, or ErrOutOfRange. O(cols).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j, or ErrOutOfRange. O(rows).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy of the Dense matrix. O(r*c).
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging: one bracketed line per
// row, entries comma-separated. Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(fmtSep)
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}
