// SPDX-License-Identifier: MIT
// Package matrix: determinant machinery (Minor, Det, Cofactor, Adjoint).
//
// Purpose:
//   - Implement recursive cofactor expansion along the first row with
//     alternating signs, the textbook Laplace scheme.
//   - Represent minors as index selections over the source buffer (skip-row,
//     skip-column views) instead of materializing a deleted copy per level.
//
// Performance boundary:
//   - Laplace expansion is O(n!) in the dimension. That is an intentional
//     property of this package, not a defect: the target is small dense
//     matrices where exactness of the classical scheme matters more than
//     asymptotics. Callers with large n should reach for an elimination
//     based library instead.

package matrix

// denseOf returns m as *Dense without copying when possible, otherwise
// materializes a Dense copy via At. Read-only use by the callers below.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	d, err := NewZero(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[base+j] = v
		}
	}

	return d, nil
}

// Minor returns the (n−1)×(n−1) submatrix of m with row i and column j
// deleted.
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange (bad i or j),
// ErrInvalidDimensions (1×1 input has no minor).
// Complexity: O(n²) time and space.
func Minor(m Matrix, i, j int) (Matrix, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, matrixErrorf(opMinor, ErrOutOfRange)
	}
	if n == 1 {
		// Deleting the sole row and column would leave a 0×0 matrix.
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}

	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	res, err := NewZero(n-1, n-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	var dst int
	for r := 0; r < n; r++ {
		if r == i {
			continue
		}
		base := r * n
		for c := 0; c < n; c++ {
			if c == j {
				continue
			}
			res.data[dst] = d.data[base+c]
			dst++
		}
	}

	return res, nil
}

// detView computes the determinant of the submatrix of d selected by the
// index sets rows × cols (equal length, ≥ 1). Recursion expands along
// rows[0]; column index sets for the minors are rebuilt per level, so the
// source buffer is never copied or mutated.
func detView(d *Dense, rows, cols []int) float64 {
	switch len(rows) {
	case 1:
		return d.data[rows[0]*d.c+cols[0]]
	case 2:
		// ad − bc on the selected 2×2 window.
		return d.data[rows[0]*d.c+cols[0]]*d.data[rows[1]*d.c+cols[1]] -
			d.data[rows[0]*d.c+cols[1]]*d.data[rows[1]*d.c+cols[0]]
	}

	var (
		det  float64
		sign = 1.0
		base = rows[0] * d.c
		sub  = make([]int, 0, len(cols)-1) // column set minus the pivot column
	)
	for j := range cols {
		pivot := d.data[base+cols[j]]
		if pivot != 0 { // zero pivot contributes nothing; skip the recursion
			sub = sub[:0]
			sub = append(sub, cols[:j]...)
			sub = append(sub, cols[j+1:]...)
			det += sign * pivot * detView(d, rows[1:], sub)
		}
		sign = -sign
	}

	return det
}

// Det returns the determinant of a square matrix via cofactor expansion
// along the first row: 1×1 → sole entry, 2×2 → ad−bc, n≥3 → recursive
// Laplace expansion (see the package performance boundary above).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n!) time, O(n²) space across the recursion.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := d.r
	rows := make([]int, n)
	cols := make([]int, n)
	for i := 0; i < n; i++ {
		rows[i], cols[i] = i, i
	}

	return detView(d, rows, cols), nil
}

// Cofactor returns (−1)^(i+j) · Det(Minor(m, i, j)). For a 1×1 matrix the
// cofactor of the sole entry is 1 by convention (there is no minor to take).
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
// Complexity: O((n−1)!) time.
func Cofactor(m Matrix, i, j int) (float64, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	n := m.Rows()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, matrixErrorf(opCofactor, ErrOutOfRange)
	}
	if n == 1 {
		return 1, nil
	}

	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	minorDet := detView(d, skipIndex(n, i), skipIndex(n, j))
	if (i+j)%2 != 0 {
		return -minorDet, nil
	}

	return minorDet, nil
}

// Adjoint returns the adjugate: the transpose of the cofactor matrix, so
// entry (i,j) of the result is Cofactor(m, j, i). The 1×1 case is [[1]] by
// the same convention Cofactor uses.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n² · (n−1)!) time, O(n²) space.
func Adjoint(m Matrix) (Matrix, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	n := d.r
	if n == 1 {
		return NewFromRows([][]float64{{1}})
	}

	res, err := NewZero(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	for i := 0; i < n; i++ {
		rows := skipIndex(n, i)
		for j := 0; j < n; j++ {
			cof := detView(d, rows, skipIndex(n, j))
			if (i+j)%2 != 0 {
				cof = -cof
			}
			// Transposed write: cofactor (i,j) lands at (j,i).
			res.data[j*n+i] = cof
		}
	}

	return res, nil
}

// skipIndex returns [0..n) with k removed, the index-set form of "delete
// row/column k".
func skipIndex(n, k int) []int {
	out := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != k {
			out = append(out, i)
		}
	}

	return out
}
