// Package codec: sentinel error set for text ↔ matrix conversion.
// All conversion failures are detected synchronously during validation and
// matched by callers via errors.Is.

package codec

import "errors"

var (
	// ErrMalformedMatrix indicates a text block whose rows have inconsistent
	// column counts, or a block with no numeric rows at all.
	ErrMalformedMatrix = errors.New("codec: malformed matrix")

	// ErrInvalidCell indicates a token that does not parse as a floating-point
	// number. The wrapping message carries the offending token.
	ErrInvalidCell = errors.New("codec: invalid cell")

	// ErrInvalidDimensions indicates a dimension shorthand that is malformed
	// or requests non-positive rows/cols.
	ErrInvalidDimensions = errors.New("codec: invalid dimensions")
)
