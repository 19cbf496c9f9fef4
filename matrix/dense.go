// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewIdentity creates the n×n identity matrix.
// Stage 1 (Validate): delegate shape validation to NewDense.
// Stage 2 (Execute): set the diagonal to 1.
// Complexity: O(n²) time and memory.
func NewIdentity(n int) (*Dense, error) {
	// Allocate a zero matrix (validates n > 0)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Fill diagonal with unit entries
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// FromRows builds a Dense from a rectangular [][]float64 grid.
// Stage 1 (Validate): the grid must be non-empty and every row must share the
// length of the first row; ragged input fails with ErrRaggedRows, empty input
// with ErrInvalidDimensions.
// Stage 2 (Execute): copy each row into the flat backing slice.
// The input grid is copied; later mutation of rows does not affect the Dense.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	// Validate: at least one row with at least one cell
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	// Validate: rectangular shape (every row has c cells)
	var i int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
	}

	// Copy rows into flat storage
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Row returns a copy of row i, or ErrOutOfRange for invalid indices.
// The returned slice is independent of the backing storage.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	// Validate row index (column 0 stands in for the bounds check)
	if _, err := m.indexOf("Row", i, 0); err != nil {
		return nil, err
	}
	// Copy the row out of flat storage
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteString("[")       // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ") // separate values with comma
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
