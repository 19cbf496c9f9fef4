// Package codec: functional configuration for Format rendering.
// Mirrors the option conventions of the matrix package: documented defaults,
// WithX constructors that panic only on programmer error, and an internal
// gatherOptions resolver.

package codec

// Rendering defaults (single source of truth).
const (
	// DefaultPrecision is the number of fractional digits non-integral values
	// round to before rendering (trailing zeros are trimmed).
	DefaultPrecision = 4

	// DefaultAlignColumns right-aligns every column to its widest cell so a
	// formatted block reads as a grid. Disable for plain single-space joins.
	DefaultAlignColumns = true
)

const panicPrecisionInvalid = "codec: WithPrecision: digits must be >= 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	precision int  // fractional digits for non-integral cells
	align     bool // right-align columns to the widest cell
}

// WithPrecision sets the rounding precision for non-integral cells.
// Panics on negative digits (programmer error).
// Complexity: O(1).
func WithPrecision(digits int) Option {
	if digits < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = digits }
}

// WithPlainSpacing disables column alignment: cells are joined with a single
// space regardless of width. Useful for machine-consumed output.
// Complexity: O(1).
func WithPlainSpacing() Option {
	return func(o *Options) { o.align = false }
}

// gatherOptions applies user setters on top of the documented defaults.
// Last-writer-wins; deterministic for a given sequence.
func gatherOptions(user ...Option) Options {
	o := Options{
		precision: DefaultPrecision,
		align:     DefaultAlignColumns,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
