// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hisham743/matrix-toolkit/matrix"
)

// --- Add / Sub ----------------------------------------------------------------

func TestAdd_Values(t *testing.T) {
	t.Parallel()

	a := generic2x3(t)
	b := MustFromRows(t, [][]float64{{1.5, 8.9, 3.2}, {6.7, 11.3, 4.8}})

	got, err := matrix.Add(a, b)
	require.NoError(t, err)

	want := MustFromRows(t, [][]float64{{8.7, 22.7, 8.3}, {16.0, 14.0, 11.2}})
	require.True(t, matrix.Equal(want, got))

	// Operands must stay untouched.
	require.Equal(t, 7.2, MustAt(t, a, 0, 0))
}

func TestSub_Values(t *testing.T) {
	t.Parallel()

	a := generic2x3(t)
	b := MustFromRows(t, [][]float64{{1.5, 8.9, 3.2}, {6.7, 11.3, 4.8}})

	got, err := matrix.Sub(a, b)
	require.NoError(t, err)

	want := MustFromRows(t, [][]float64{{5.7, 4.9, 1.9}, {2.6, -8.6, 1.6}})
	require.True(t, matrix.Equal(want, got))
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	t.Parallel()

	// 1×2 vs 2×2.
	a := MustFromRows(t, [][]float64{{1, 1}})
	b := MustFromRows(t, [][]float64{{1, 1}, {1, 1}})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(b, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAdd_NilOperand(t *testing.T) {
	t.Parallel()

	_, err := matrix.Add(nil, MustIdentity(t, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Add(MustIdentity(t, 2), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	a := generic2x3(t)
	b := MustFromRows(t, [][]float64{{1.5, 8.9, 3.2}, {6.7, 11.3, 4.8}})

	gotFast, err := matrix.Add(a, b)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	gotSlow, err := matrix.Add(hide{a}, b)
	if err != nil {
		t.Fatalf("slow: %v", err)
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			x := MustAt(t, gotFast, i, j)
			y := MustAt(t, gotSlow, i, j)
			if x != y {
				t.Fatalf("add[%d,%d]: fast=%v slow=%v", i, j, x, y)
			}
		}
	}
}

// --- Scale / Neg --------------------------------------------------------------

func TestScale_Values(t *testing.T) {
	t.Parallel()

	a := generic2x3(t)

	got, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	want := MustFromRows(t, [][]float64{{14.4, 27.6, 10.2}, {18.6, 5.4, 12.8}})
	require.True(t, matrix.Equal(want, got))

	got, err = matrix.Scale(a, 0.5)
	require.NoError(t, err)
	want = MustFromRows(t, [][]float64{{3.6, 6.9, 2.55}, {4.65, 1.35, 3.2}})
	require.True(t, matrix.Equal(want, got))
}

func TestScale_RejectsNonFinite(t *testing.T) {
	t.Parallel()

	_, err := matrix.Scale(generic2x3(t), math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Scale(generic2x3(t), math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestScale_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	a := generic2x3(t)
	gotFast, err := matrix.Scale(a, -1.5)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	gotSlow, err := matrix.Scale(hide{a}, -1.5)
	if err != nil {
		t.Fatalf("slow: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			x := MustAt(t, gotFast, i, j)
			y := MustAt(t, gotSlow, i, j)
			if x != y {
				t.Fatalf("scale[%d,%d]: fast=%v slow=%v", i, j, x, y)
			}
		}
	}
}

func TestNeg_Values(t *testing.T) {
	t.Parallel()

	got, err := matrix.Neg(generic2x3(t))
	require.NoError(t, err)

	want := MustFromRows(t, [][]float64{{-7.2, -13.8, -5.1}, {-9.3, -2.7, -6.4}})
	require.True(t, matrix.Equal(want, got))

	_, err = matrix.Neg(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// --- Hadamard -----------------------------------------------------------------

func TestHadamard_Values(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{2, 0.5}, {-1, 10}})

	got, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	want := MustFromRows(t, [][]float64{{2, 1}, {-3, 40}})
	require.True(t, matrix.Equal(want, got))
}

func TestHadamard_DimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.Hadamard(generic2x3(t), MustIdentity(t, 2))
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}
