// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities shared by the
//     package tests.
//   - Keep all data finite and well-formed to avoid numeric-policy
//     interference.

package matrix_test

import (
	"testing"

	"github.com/Hisham743/matrix-toolkit/matrix"
)

// hide WRAPS any Matrix to mask its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense) fallback paths,
// then assert fast-path == fallback.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from explicit rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustIdentity builds the n×n identity or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// generic2x3 returns a fixed non-square fixture.
func generic2x3(t *testing.T) *matrix.Dense {
	t.Helper()

	return MustFromRows(t, [][]float64{
		{7.2, 13.8, 5.1},
		{9.3, 2.7, 6.4},
	})
}

// square3x3 returns a fixed well-conditioned square fixture
// (det = 492.164).
func square3x3(t *testing.T) *matrix.Dense {
	t.Helper()

	return MustFromRows(t, [][]float64{
		{2.1, 9.7, 3.5},
		{8.4, 1.6, 7.2},
		{5.9, 12.3, 0.8},
	})
}

// square5x5 returns a larger fixture exercising the deep recursion path
// (det ≈ -2204.89804).
func square5x5(t *testing.T) *matrix.Dense {
	t.Helper()

	return MustFromRows(t, [][]float64{
		{0.0, 7.1, 0.5, 9.3, 2.8},
		{6.4, 1.9, 8.7, 4.2, 5.6},
		{0.3, 9.8, 2.1, 7.5, 3.9},
		{5.7, 3.6, 8.2, 1.4, 6.0},
		{9.1, 4.5, 2.6, 7.8, 0.7},
	})
}
