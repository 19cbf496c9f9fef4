// SPDX-License-Identifier: MIT
// Package matrix: Gauss–Jordan elimination kernels (RREF, Inverse).
// Both kernels use partial pivoting: the largest-magnitude candidate pivot in
// the current column among remaining rows is selected to reduce floating-point
// error. A pivot whose magnitude falls at or below the configured tolerance is
// treated as zero (see options.go, DefaultPivotTolerance).

package matrix

import "math"

// toDense materializes any Matrix as a freshly allocated *Dense working copy.
// *Dense inputs clone their flat storage; other implementations are copied
// via At in fixed i→j order.
// Complexity: O(r*c) time and memory.
func toDense(m Matrix) (*Dense, error) {
	// Fast path: Clone preserves the concrete *Dense type.
	if dm, ok := m.(*Dense); ok {
		return dm.Clone().(*Dense), nil
	}

	// Generic path: allocate and copy cell by cell.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// gaussJordan reduces d to reduced row-echelon form in place and reports the
// number of pivots found (the numeric rank under tol).
//
// Implementation:
//   - Stage 1: For each (pivot row h, column k), scan rows h..r-1 for the
//     largest |d[i,k]| (partial pivoting).
//   - Stage 2: If the best candidate magnitude ≤ tol, flush the residue in
//     that column segment to exactly zero and advance k only.
//   - Stage 3: Otherwise swap the pivot row up, normalize it so d[h,k] == 1
//     exactly, and eliminate every other row in fixed top-to-bottom order.
//
// Behavior highlights:
//   - Pivot cells are written as exact 1 and eliminated cells as exact 0, so
//     reducing an already-reduced matrix is a no-op (idempotence).
//   - Deterministic: ties in the pivot scan resolve to the earliest row.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(1) beyond the matrix itself.
func gaussJordan(d *Dense, tol float64) int {
	rows, cols := d.r, d.c
	var (
		h, k     int     // current pivot row and column
		i, j     int     // loop iterators
		pivotRow int     // row index of the best candidate
		pivotAbs float64 // magnitude of the best candidate
		pv, f    float64 // pivot value and elimination factor
	)
	for h < rows && k < cols {
		// Partial pivoting: pick the largest-magnitude candidate in column k.
		pivotRow, pivotAbs = h, math.Abs(d.data[h*cols+k])
		for i = h + 1; i < rows; i++ {
			if a := math.Abs(d.data[i*cols+k]); a > pivotAbs {
				pivotRow, pivotAbs = i, a
			}
		}

		// A below-tolerance column segment holds no pivot: flush the numeric
		// residue to exact zeros and move to the next column.
		if pivotAbs <= tol {
			for i = h; i < rows; i++ {
				d.data[i*cols+k] = 0
			}
			k++
			continue
		}

		// Swap the chosen pivot row into position h.
		if pivotRow != h {
			for j = k; j < cols; j++ {
				d.data[h*cols+j], d.data[pivotRow*cols+j] = d.data[pivotRow*cols+j], d.data[h*cols+j]
			}
		}

		// Normalize the pivot row; write the pivot cell as exact 1.
		pv = d.data[h*cols+k]
		d.data[h*cols+k] = 1
		for j = k + 1; j < cols; j++ {
			d.data[h*cols+j] /= pv
		}

		// Eliminate column k from every other row (zeros above and below).
		for i = 0; i < rows; i++ {
			if i == h {
				continue
			}
			f = d.data[i*cols+k]
			if f == 0 {
				continue // row already clear in this column
			}
			d.data[i*cols+k] = 0
			for j = k + 1; j < cols; j++ {
				d.data[i*cols+j] -= d.data[h*cols+j] * f
			}
		}

		h++
		k++
	}

	// h pivots were placed; h is the numeric rank under tol.
	return h
}

// RREF returns the reduced row-echelon form of m: every pivot is 1 and is the
// only non-zero entry in its column. Works on any shape; the input is never
// mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); materialize a *Dense working copy.
//   - Stage 2: gaussJordan with the effective pivot tolerance.
//
// Behavior highlights:
//   - Idempotent: RREF(RREF(M)) == RREF(M).
//   - Results carry the usual Gauss–Jordan floating-point imprecision; tune
//     WithPivotTolerance for near-dependent rows.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c) for the working copy.
func RREF(m Matrix, opts ...Option) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	// Resolve numeric policy
	o := gatherOptions(opts...)

	// Materialize the working copy and reduce it in place.
	res, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	gaussJordan(res, o.pivotTol)

	return res, nil
}

// Inverse computes A⁻¹ via Gauss–Jordan elimination with partial pivoting on
// the augmented block [A | I]. The input must be square and non-singular
// within the pivot tolerance; it is never mutated.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m). Build the n×2n augmented Dense with
//     the identity in the right block.
//   - Stage 2: gaussJordan the augmented block; a full-rank left block reduces
//     to I and leaves A⁻¹ on the right.
//   - Stage 3: Verify the left block is the identity within tolerance. A rank
//     deficient A leaves pivots in the right block instead → ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation), ErrSingular (rank deficiency).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented block and the result.
//
// Notes:
//   - Partial pivoting bounds the growth factor but does not make the result
//     exact; Mul(A, Inverse(A)) approximates I within ~1e-6 for
//     well-conditioned inputs.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	// Resolve numeric policy
	o := gatherOptions(opts...)

	// Build the augmented block [A | I].
	n := m.Rows()
	aug, err := NewDense(n, 2*n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var i, j int
	var v float64
	if dm, ok := m.(*Dense); ok {
		// Fast path: copy rows of A directly from flat storage.
		for i = 0; i < n; i++ {
			copy(aug.data[i*2*n:i*2*n+n], dm.data[i*n:(i+1)*n])
		}
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opInverse, err)
				}
				aug.data[i*2*n+j] = v
			}
		}
	}
	// Identity in the right block.
	for i = 0; i < n; i++ {
		aug.data[i*2*n+n+i] = 1
	}

	// Reduce the augmented block.
	gaussJordan(aug, o.pivotTol)

	// A singular left block cannot reduce to the identity: some pivot falls
	// below tolerance and elimination drifts into the right block instead.
	var want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(aug.data[i*2*n+j]-want) > o.pivotTol {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
		}
	}

	// Extract the right block as the inverse.
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*2*n+n:(i+1)*2*n])
	}

	return inv, nil
}
