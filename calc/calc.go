// Package calc: operator enumeration, request validation and dispatch.
// Each operation is a pure function from validated operand(s) to a result or
// an error; there is no cross-invocation state.

package calc

import (
	"fmt"
	"strings"

	"github.com/bradybhalla/matrixcalc/codec"
	"github.com/bradybhalla/matrixcalc/matrix"
)

// Op identifies one supported operator.
type Op int

const (
	// OpAdd sums two equally-shaped matrices element-wise.
	OpAdd Op = iota
	// OpMultiply computes the standard matrix product of two operands.
	OpMultiply
	// OpScale multiplies every cell of one matrix by a scalar.
	OpScale
	// OpTranspose swaps rows and columns of one matrix.
	OpTranspose
	// OpInverse inverts one square, non-singular matrix.
	OpInverse
	// OpRREF reduces one matrix to reduced row-echelon form.
	OpRREF
	// OpFormat re-serializes one matrix verbatim (normalizes spacing).
	OpFormat
	// OpInsert produces a fresh zero-filled matrix from a "RxC" spec.
	OpInsert
)

// opNames maps operators to their canonical display names.
var opNames = [...]string{"Add", "Multiply", "Scale", "Transpose", "Inverse", "RREF", "Format", "Insert"}

// String returns the canonical operator name, used as the error wrap tag.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// ParseOp resolves an operator name (case-insensitive, with the common short
// aliases) to its Op value, or fails with ErrUnknownOp.
func ParseOp(name string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "add":
		return OpAdd, nil
	case "multiply", "mult", "mul":
		return OpMultiply, nil
	case "scale":
		return OpScale, nil
	case "transpose":
		return OpTranspose, nil
	case "inverse", "inv":
		return OpInverse, nil
	case "rref":
		return OpRREF, nil
	case "format", "fmt":
		return OpFormat, nil
	case "insert":
		return OpInsert, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownOp)
	}
}

// Request is one operation invocation: an operator plus its operands.
//
// Operands carries the raw operand texts ordered by their position in the
// source (earlier position = first/left operand). The caller owns that
// ordering; calc never reorders or infers it.
//
// Scalar is consumed by single-operand Scale requests. DimSpec ("RxC") is
// consumed by Insert requests. Both are ignored by every other operator.
type Request struct {
	Op       Op
	Operands []string
	Scalar   float64
	DimSpec  string
}

// Option configures numeric policy and output rendering for Apply.
type Option func(*options)

// options aggregates the per-package option slices Apply forwards.
type options struct {
	matrixOpts []matrix.Option
	codecOpts  []codec.Option
}

// WithTolerance sets the zero-pivot threshold forwarded to Inverse/RREF.
// Panics on NaN/Inf/negative values (delegated to matrix.WithPivotTolerance).
func WithTolerance(tol float64) Option {
	mo := matrix.WithPivotTolerance(tol) // validate eagerly (panics on nonsense)
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, mo) }
}

// WithPrecision sets the fractional digits forwarded to codec.Format.
func WithPrecision(digits int) Option {
	co := codec.WithPrecision(digits)
	return func(o *options) { o.codecOpts = append(o.codecOpts, co) }
}

// WithPlainSpacing disables column alignment in the formatted result.
func WithPlainSpacing() Option {
	return func(o *options) { o.codecOpts = append(o.codecOpts, codec.WithPlainSpacing()) }
}

// operandBounds returns the accepted operand count range for op.
func operandBounds(op Op) (min, max int, err error) {
	switch op {
	case OpAdd, OpMultiply:
		return 2, 2, nil
	case OpScale:
		return 1, 2, nil // 1 + Scalar field, or 2 with a 1×1 scalar operand
	case OpTranspose, OpInverse, OpRREF, OpFormat:
		return 1, 1, nil
	case OpInsert:
		return 0, 0, nil
	default:
		return 0, 0, fmt.Errorf("%q: %w", op.String(), ErrUnknownOp)
	}
}

// calcErrorf wraps err with the operator tag, preserving sentinels via %w.
func calcErrorf(op Op, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Apply validates, parses, executes and formats one Request.
//
// Implementation:
//   - Stage 1: Check the operand count against the operator's contract
//     (ErrUnsupportedOperandCount with got/want detail).
//   - Stage 2: Parse every operand text in order (codec sentinels pass
//     through, tagged with the operand index).
//   - Stage 3: Dispatch to the matrix kernel and format the result.
//
// No partial output: on any failure the returned text is empty and the error
// carries the operator tag plus the underlying sentinel for errors.Is.
func Apply(req Request, opts ...Option) (string, error) {
	// Resolve forwarded options.
	var o options
	for _, set := range opts {
		set(&o)
	}

	// Stage 1: operand count contract.
	min, max, err := operandBounds(req.Op)
	if err != nil {
		return "", err
	}
	if got := len(req.Operands); got < min || got > max {
		want := fmt.Sprintf("%d", min)
		if max != min {
			want = fmt.Sprintf("%d..%d", min, max)
		}
		return "", calcErrorf(req.Op, fmt.Errorf("got %d operands, want %s: %w", got, want, ErrUnsupportedOperandCount))
	}

	// Stage 2: parse operands in source-position order.
	operands := make([]*matrix.Dense, len(req.Operands))
	for i, text := range req.Operands {
		if operands[i], err = codec.Parse(text); err != nil {
			return "", calcErrorf(req.Op, fmt.Errorf("operand %d: %w", i+1, err))
		}
	}

	// Stage 3: dispatch.
	var res matrix.Matrix
	switch req.Op {
	case OpAdd:
		res, err = matrix.Add(operands[0], operands[1])
	case OpMultiply:
		res, err = matrix.Mul(operands[0], operands[1])
	case OpScale:
		res, err = applyScale(req, operands)
	case OpTranspose:
		res, err = matrix.Transpose(operands[0])
	case OpInverse:
		res, err = matrix.Inverse(operands[0], o.matrixOpts...)
	case OpRREF:
		res, err = matrix.RREF(operands[0], o.matrixOpts...)
	case OpFormat:
		res = operands[0] // identity re-serialization
	case OpInsert:
		res, err = applyInsert(req)
	}
	if err != nil {
		return "", err
	}

	return codec.Format(res, o.codecOpts...)
}

// applyScale resolves the scalar source and runs the Scale kernel.
//
// One operand: the scalar comes from Request.Scalar. Two operands: exactly
// the operand that parses to a 1×1 matrix supplies the scalar and the other
// is scaled (when both are 1×1 the first is the scalar, matching the operand
// ordering rule). Neither being 1×1 fails with ErrScalarRequired.
func applyScale(req Request, operands []*matrix.Dense) (matrix.Matrix, error) {
	if len(operands) == 1 {
		return matrix.Scale(operands[0], req.Scalar)
	}

	a, b := operands[0], operands[1]
	switch {
	case a.Rows() == 1 && a.Cols() == 1:
		k, err := a.At(0, 0)
		if err != nil {
			return nil, calcErrorf(req.Op, err)
		}
		return matrix.Scale(b, k)
	case b.Rows() == 1 && b.Cols() == 1:
		k, err := b.At(0, 0)
		if err != nil {
			return nil, calcErrorf(req.Op, err)
		}
		return matrix.Scale(a, k)
	default:
		return nil, calcErrorf(req.Op, ErrScalarRequired)
	}
}

// applyInsert builds the zero-filled matrix requested by the dimension spec.
// The all-zero fill is the documented convention: a freshly inserted block is
// a neutral placeholder the user overwrites cell by cell.
func applyInsert(req Request) (matrix.Matrix, error) {
	rows, cols, err := codec.ParseDimensionShorthand(req.DimSpec)
	if err != nil {
		return nil, calcErrorf(req.Op, err)
	}

	return matrix.NewDense(rows, cols)
}
