// Package matrix_test contains unit tests for the Gauss–Jordan kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradybhalla/matrixcalc/matrix"
)

// invTol is the round-trip tolerance for Mul(M, Inverse(M)) ≈ I checks.
const invTol = 1e-6

// TestRREF_FullRank reduces an invertible 2×2 to the identity.
func TestRREF_FullRank(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	r, err := matrix.RREF(m)
	require.NoError(t, err)
	assertGrid(t, r, [][]float64{{1, 0}, {0, 1}}, 1e-12)

	// The operand is never mutated.
	assertGrid(t, m, [][]float64{{1, 2}, {3, 4}}, 0)
}

// TestRREF_RankDeficient keeps the dependent row as zeros.
func TestRREF_RankDeficient(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {2, 4}})

	r, err := matrix.RREF(m)
	require.NoError(t, err)
	assertGrid(t, r, [][]float64{{1, 2}, {0, 0}}, 1e-12)
}

// TestRREF_Rectangular reduces a wide system and normalizes pivots to 1.
func TestRREF_Rectangular(t *testing.T) {
	// Augmented system x+y=3, 2x-y=0 → x=1, y=2.
	m := mustFromRows(t, [][]float64{{1, 1, 3}, {2, -1, 0}})

	r, err := matrix.RREF(m)
	require.NoError(t, err)
	assertGrid(t, r, [][]float64{{1, 0, 1}, {0, 1, 2}}, 1e-12)
}

// TestRREF_Idempotent checks RREF(RREF(M)) == RREF(M).
func TestRREF_Idempotent(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 4, -2}, {4, 9, -3}, {-2, -3, 7}})

	once, err := matrix.RREF(m)
	require.NoError(t, err)
	twice, err := matrix.RREF(once)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < once.Rows(); i++ {
		for j = 0; j < once.Cols(); j++ {
			assert.Equal(t, mustAt(t, once, i, j), mustAt(t, twice, i, j), "RREF not idempotent at [%d,%d]", i, j)
		}
	}
}

// TestRREF_ZeroColumn skips pivotless columns without losing later pivots.
func TestRREF_ZeroColumn(t *testing.T) {
	m := mustFromRows(t, [][]float64{{0, 2}, {0, 4}})

	r, err := matrix.RREF(m)
	require.NoError(t, err)
	assertGrid(t, r, [][]float64{{0, 1}, {0, 0}}, 1e-12)
}

// TestInverse_Identity checks I⁻¹ == I.
func TestInverse_Identity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	inv, err := matrix.Inverse(id)
	require.NoError(t, err)
	assertGrid(t, inv, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1e-12)
}

// TestInverse_Known verifies a hand-computed 2×2 inverse.
func TestInverse_Known(t *testing.T) {
	m := mustFromRows(t, [][]float64{{4, 7}, {2, 6}})

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	assertGrid(t, inv, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, 1e-9)
}

// TestInverse_RoundTrip checks Mul(M, Inverse(M)) ≈ I within tolerance.
func TestInverse_RoundTrip(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 1, 1}, {1, 3, 2}, {1, 0, 0}})

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	prod, err := matrix.Mul(m, inv)
	require.NoError(t, err)

	var i, j int
	var want float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			want = 0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, mustAt(t, prod, i, j), invTol, "M·M⁻¹ deviates from I at [%d,%d]", i, j)
		}
	}
}

// TestInverse_Singular fails with ErrSingular on a rank-deficient matrix.
func TestInverse_Singular(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {2, 4}})

	_, err := matrix.Inverse(m)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverse_NonSquare fails with ErrNonSquare before any computation.
func TestInverse_NonSquare(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := matrix.Inverse(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestInverse_PivotTolerance shows the threshold deciding singularity is
// configurable: a 1×1 matrix below the default tolerance is singular, but a
// stricter tolerance lets it invert.
func TestInverse_PivotTolerance(t *testing.T) {
	tiny := mustFromRows(t, [][]float64{{1e-12}})

	_, err := matrix.Inverse(tiny)
	assert.ErrorIs(t, err, matrix.ErrSingular, "1e-12 pivot is below the 1e-10 default")

	inv, err := matrix.Inverse(tiny, matrix.WithPivotTolerance(1e-15))
	require.NoError(t, err)
	assert.InDelta(t, 1e12, mustAt(t, inv, 0, 0), 1, "1/1e-12")
}

// TestRREF_PartialPivoting exercises a matrix whose naive top-row pivot is
// tiny; partial pivoting must still recover the exact reduced form.
func TestRREF_PartialPivoting(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1e-13, 1}, {1, 1}})

	r, err := matrix.RREF(m)
	require.NoError(t, err)
	// The largest-magnitude candidate (row 1) is chosen first, keeping the
	// result numerically clean.
	var i, j int
	var want float64
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			want = 0
			if i == j {
				want = 1
			}
			got := mustAt(t, r, i, j)
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("RREF[%d,%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

// TestRREF_InterfaceInput reduces through the interface fallback copy path.
func TestRREF_InterfaceInput(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	r, err := matrix.RREF(hide{m})
	require.NoError(t, err)
	assertGrid(t, r, [][]float64{{1, 0}, {0, 1}}, 1e-12)
}

// TestWithPivotTolerance_PanicsOnInvalid pins the constructor contract.
func TestWithPivotTolerance_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { matrix.WithPivotTolerance(-1) })
	assert.Panics(t, func() { matrix.WithPivotTolerance(math.NaN()) })
	assert.Panics(t, func() { matrix.WithPivotTolerance(math.Inf(1)) })
	assert.NotPanics(t, func() { matrix.WithPivotTolerance(0) })
}
