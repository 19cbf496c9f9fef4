// Package matrix provides the dense numeric core of matrixcalc:
// a row-major float64 matrix plus the classic operation kernels.
//
// 🚀 What is matrix?
//
//	The package offers:
//	  • Dense — flat-slice, row-major storage behind a small Matrix interface
//	  • Kernels — Add, Sub, Mul, Scale, Transpose (pure, allocation-exact)
//	  • Elimination — RREF and Inverse via Gauss–Jordan with partial pivoting
//	  • Validators — one canonical source of truth for shape/nil checks
//
// ✨ Key guarantees:
//   - Operands are never mutated; every kernel returns a fresh Dense.
//   - Deterministic loop orders — identical inputs give identical outputs.
//   - Sentinel errors (errors.go) matched via errors.Is; no panics on
//     user-triggered conditions.
//   - Pivot magnitudes below the configured tolerance are treated as zero;
//     tune via WithPivotTolerance (DefaultPivotTolerance = 1e-10).
//
// ⚙️ Usage:
//
//	import "github.com/bradybhalla/matrixcalc/matrix"
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	inv, err := matrix.Inverse(a)
//	if err != nil {
//	  // errors.Is(err, matrix.ErrSingular) for non-invertible inputs
//	}
//	prod, _ := matrix.Mul(a, inv) // ≈ identity within tolerance
//
// Performance:
//
//   - Add/Scale/Transpose: O(r·c) time, O(r·c) space
//   - Mul: O(r·n·c) triple-sum accumulation (interactive sizes; no blocking)
//   - RREF/Inverse: O(r·c·min(r,c)) / O(n³) Gauss–Jordan sweeps
//
// See example_test.go for runnable walkthroughs.
package matrix
