// Package calc: sentinel error set for request validation and dispatch.

package calc

import "errors"

var (
	// ErrUnknownOp indicates an operator name that ParseOp does not recognize.
	ErrUnknownOp = errors.New("calc: unknown operation")

	// ErrUnsupportedOperandCount indicates a request carrying the wrong number
	// of operands for its operator. The wrapping message reports got vs want.
	ErrUnsupportedOperandCount = errors.New("calc: unsupported operand count")

	// ErrScalarRequired indicates a two-operand Scale request where neither
	// operand is a 1×1 matrix supplying the scalar.
	ErrScalarRequired = errors.New("calc: scale requires a 1×1 scalar operand")
)
