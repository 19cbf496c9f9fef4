// Package matrix_test: shared helpers for the matrix package tests.
package matrix_test

import (
	"testing"

	"github.com/bradybhalla/matrixcalc/matrix"
)

// hide wraps a Matrix to conceal the concrete *Dense type, forcing kernels
// onto their interface fallback paths.
type hide struct{ matrix.Matrix }

// mustFromRows builds a Dense from a grid or fails the test.
func mustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

// mustDense allocates a zero r×c Dense or fails the test.
func mustDense(t testing.TB, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}
	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// assertGrid compares every cell of m against want within eps.
func assertGrid(t testing.TB, m matrix.Matrix, want [][]float64, eps float64) {
	t.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("shape %d×%d, want %d×%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	var i, j int
	var got, diff float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			got = mustAt(t, m, i, j)
			diff = got - want[i][j]
			if diff < 0 {
				diff = -diff
			}
			if diff > eps {
				t.Fatalf("cell [%d,%d] = %v, want %v (eps %v)", i, j, got, want[i][j], eps)
			}
		}
	}
}
