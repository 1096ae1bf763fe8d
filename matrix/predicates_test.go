// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hisham743/matrix-toolkit/matrix"
)

func TestIsSquare(t *testing.T) {
	t.Parallel()

	require.False(t, matrix.IsSquare(generic2x3(t)))
	require.False(t, matrix.IsSquare(nil))
	require.True(t, matrix.IsSquare(square3x3(t)))
	require.True(t, matrix.IsSquare(MustFromRows(t, [][]float64{{2.5}})))
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	require.False(t, matrix.IsZero(generic2x3(t)))
	require.False(t, matrix.IsZero(nil))

	z, err := matrix.NewZero(1, 2)
	require.NoError(t, err)
	require.True(t, matrix.IsZero(z))

	// Sub-epsilon noise still counts as zero.
	noisy := MustFromRows(t, [][]float64{{1e-12, -1e-15}})
	require.True(t, matrix.IsZero(noisy))
	require.False(t, matrix.IsZero(noisy, matrix.WithEpsilon(1e-16)))
}

func TestIsDiagonal(t *testing.T) {
	t.Parallel()

	require.False(t, matrix.IsDiagonal(square3x3(t)))
	require.False(t, matrix.IsDiagonal(generic2x3(t))) // non-square → false

	d, err := matrix.NewDiagonal([]float64{1.5, 3.2, 6.7, 9.1})
	require.NoError(t, err)
	require.True(t, matrix.IsDiagonal(d))
}

func TestIsScalar(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDiagonal([]float64{1.5, 3.2, 6.7, 9.1})
	require.NoError(t, err)
	require.False(t, matrix.IsScalar(d)) // diagonal but unequal entries

	// Scenario: [[2,0],[0,2]] is scalar, diagonal, det 4.
	s := MustFromRows(t, [][]float64{{2, 0}, {0, 2}})
	require.True(t, matrix.IsScalar(s))
	require.True(t, matrix.IsDiagonal(s))
}

func TestIsIdentity(t *testing.T) {
	t.Parallel()

	require.False(t, matrix.IsIdentity(MustFromRows(t, [][]float64{{2, 0}, {0, 2}})))
	require.True(t, matrix.IsIdentity(MustIdentity(t, 4)))

	// Rounding-scale perturbation must not break the predicate.
	almost := MustFromRows(t, [][]float64{{1 + 1e-12, 0}, {1e-12, 1}})
	require.True(t, matrix.IsIdentity(almost))
}

func TestIsSymmetric(t *testing.T) {
	t.Parallel()

	require.False(t, matrix.IsSymmetric(square3x3(t)))
	require.False(t, matrix.IsSymmetric(generic2x3(t))) // non-square → false

	sym := MustFromRows(t, [][]float64{
		{9.5, 2.3, 3.5},
		{2.3, -1.0, -8.5},
		{3.5, -8.5, 0.0},
	})
	require.True(t, matrix.IsSymmetric(sym))
}

func TestIsSkewSymmetric(t *testing.T) {
	t.Parallel()

	// Scenario: [[0,1],[-1,0]] is skew-symmetric and not symmetric.
	m := MustFromRows(t, [][]float64{{0, 1}, {-1, 0}})
	require.True(t, matrix.IsSkewSymmetric(m))
	require.False(t, matrix.IsSymmetric(m))

	skew := MustFromRows(t, [][]float64{
		{0.0, 2.3, 3.5},
		{-2.3, 0.0, -8.5},
		{-3.5, 8.5, 0.0},
	})
	require.True(t, matrix.IsSkewSymmetric(skew))

	// Non-zero diagonal disqualifies.
	require.False(t, matrix.IsSkewSymmetric(MustFromRows(t, [][]float64{{1, 2}, {-2, 0}})))
	require.False(t, matrix.IsSkewSymmetric(generic2x3(t)))
}

func TestIsSingular(t *testing.T) {
	t.Parallel()

	require.True(t, matrix.IsSingular(MustFromRows(t, [][]float64{{1, 2}, {2, 4}})))
	require.False(t, matrix.IsSingular(square3x3(t)))
	require.False(t, matrix.IsSingular(generic2x3(t))) // non-square → false
	require.False(t, matrix.IsSingular(MustIdentity(t, 3)))
}

func TestIdentityScenario(t *testing.T) {
	t.Parallel()

	id := MustIdentity(t, 3)
	det, err := matrix.Det(id)
	require.NoError(t, err)
	require.Equal(t, 1.0, det)
	require.True(t, matrix.IsIdentity(id))
	require.False(t, matrix.IsSingular(id))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := square3x3(t)
	require.True(t, matrix.Equal(a, a.Clone()))
	require.False(t, matrix.Equal(a, generic2x3(t))) // shape conflict
	require.False(t, matrix.Equal(a, nil))
	require.False(t, matrix.Equal(nil, nil))

	// Tolerance is honored in both directions.
	b, err := matrix.Add(a, MustFromRows(t, [][]float64{
		{1e-12, 0, 0}, {0, 0, 0}, {0, 0, -1e-12},
	}))
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(a, b, matrix.WithEpsilon(1e-14)))
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { matrix.WithEpsilon(-1) })
}
