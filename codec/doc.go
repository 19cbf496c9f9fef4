// Package codec converts between plain-text blocks and dense matrices.
//
// 🚀 What is codec?
//
//	The text format is the one people naturally type into an editor:
//	rows separated by newlines, cells separated by spaces.
//
//	  1 2
//	  3 4
//
// ✨ Key features:
//   - Parse — text → *matrix.Dense with strict shape validation
//     (ErrMalformedMatrix for ragged rows, ErrInvalidCell for bad tokens)
//   - Format — matrix → text with column alignment and integer-friendly
//     rendering (integral values print without a decimal point,
//     non-integral values round to a configurable precision)
//   - ParseDimensionShorthand — "RxC" tokens for inserting fresh matrices
//
// ⚙️ Usage:
//
//	import "github.com/bradybhalla/matrixcalc/codec"
//
//	m, err := codec.Parse("1 2\n3 4")
//	if err != nil {
//	  // errors.Is(err, codec.ErrInvalidCell) etc.
//	}
//	text, _ := codec.Format(m) // "1 2\n3 4"
//
// The round-trip Format(Parse(T)) preserves numeric content exactly up to
// canonical spacing and number formatting.
package codec
