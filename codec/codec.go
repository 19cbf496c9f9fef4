// Package codec implements the matrix text codec: newline-separated rows,
// space-separated numeric cells. Parsing is strict (rectangular shape,
// numeric tokens); formatting is canonical (aligned columns, integer-friendly
// rendering) so that parse→format normalizes spacing without changing values.

package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bradybhalla/matrixcalc/matrix"
)

// dimSeparator splits the "RxC" dimension shorthand.
const dimSeparator = "x"

// Parse converts a text block into a dense matrix.
// Stage 1 (Split): rows on newlines, skipping blank lines; cells on
// whitespace runs, so aligned input round-trips.
// Stage 2 (Validate): every row must have the column count of the first row;
// every cell must parse as a float64.
// Stage 3 (Finalize): hand the rectangular grid to matrix.FromRows.
//
// Errors:
//   - ErrMalformedMatrix: ragged rows, or no numeric rows at all.
//   - ErrInvalidCell: non-numeric token (reported with row and token).
//
// Complexity: O(len(text)).
func Parse(text string) (*matrix.Dense, error) {
	lines := strings.Split(text, "\n")
	var (
		grid   [][]float64 // accumulated numeric rows
		cols   = -1        // column count fixed by the first row
		fields []string    // cells of the current line
		row    []float64   // parsed cells of the current line
		v      float64
		err    error
	)
	for i, line := range lines {
		fields = strings.Fields(line)
		if len(fields) == 0 {
			continue // blank line, not a row
		}
		if cols == -1 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i+1, len(fields), cols, ErrMalformedMatrix)
		}
		row = make([]float64, len(fields))
		for j, tok := range fields {
			if v, err = strconv.ParseFloat(tok, 64); err != nil {
				return nil, fmt.Errorf("row %d: %q: %w", i+1, tok, ErrInvalidCell)
			}
			row[j] = v
		}
		grid = append(grid, row)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("no numeric rows: %w", ErrMalformedMatrix)
	}

	return matrix.FromRows(grid)
}

// Format serializes a matrix back to newline/space-delimited text.
//
// Rendering rules:
//   - Integral values print without a decimal point ("3", not "3.0000").
//   - Non-integral values round to the configured precision (default 4
//     digits) with trailing zeros trimmed; negative zero normalizes to "0".
//   - With alignment (the default) every column is right-aligned to its
//     widest cell, padded by at least one space from its left neighbor;
//     WithPlainSpacing joins cells with single spaces instead.
//
// Errors: matrix.ErrNilMatrix for nil input.
// Complexity: O(r*c) plus the final string construction.
func Format(m matrix.Matrix, opts ...Option) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", err
	}
	o := gatherOptions(opts...)

	// Render every cell first; widths depend on the rendered strings.
	rows, cols := m.Rows(), m.Cols()
	cells := make([][]string, rows)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		cells[i] = make([]string, cols)
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return "", err
			}
			cells[i][j] = formatCell(v, o.precision)
		}
	}

	var b strings.Builder
	if !o.align {
		// Plain mode: single-space joins, no padding.
		for i = 0; i < rows; i++ {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(strings.Join(cells[i], " "))
		}

		return b.String(), nil
	}

	// Column widths: widest cell per column, plus one separating space for
	// every column after the first.
	widths := make([]int, cols)
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if len(cells[i][j]) > widths[j] {
				widths[j] = len(cells[i][j])
			}
		}
		if j > 0 {
			widths[j]++
		}
	}

	// Right-align each cell into its column; padding doubles as separator.
	for i = 0; i < rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j = 0; j < cols; j++ {
			for pad := widths[j] - len(cells[i][j]); pad > 0; pad-- {
				b.WriteByte(' ')
			}
			b.WriteString(cells[i][j])
		}
	}

	return b.String(), nil
}

// formatCell renders one value under the integer-friendly policy.
func formatCell(v float64, precision int) string {
	if v == 0 {
		v = 0 // normalize -0
	}
	// Integral values never show a decimal point.
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	// Round to the configured precision, then re-check integrality so values
	// like 0.99999 render as "1".
	p := math.Pow(10, float64(precision))
	r := math.Round(v*p) / p
	if r == 0 {
		r = 0 // rounding may produce -0
	}
	if r == math.Trunc(r) && !math.IsInf(r, 0) {
		return strconv.FormatFloat(r, 'f', 0, 64)
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}

// ParseDimensionShorthand recognizes a "<rows>x<cols>" token (e.g. "2x3") and
// returns the requested shape for inserting a fresh matrix.
//
// Errors: ErrInvalidDimensions when the token is malformed, non-integer, or
// requests non-positive rows/cols.
// Complexity: O(len(s)).
func ParseDimensionShorthand(s string) (rows, cols int, err error) {
	trimmed := strings.TrimSpace(s)
	left, right, ok := strings.Cut(trimmed, dimSeparator)
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidDimensions)
	}
	if rows, err = strconv.Atoi(strings.TrimSpace(left)); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidDimensions)
	}
	if cols, err = strconv.Atoi(strings.TrimSpace(right)); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidDimensions)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidDimensions)
	}

	return rows, cols, nil
}
