// Package calc dispatches operation requests against text operands: it is
// the layer a host front end (CLI, editor adapter) talks to.
//
// 🚀 What is calc?
//
//	A Request names one operator and carries its operands as raw text
//	blocks, pre-ordered by their position in the source (the caller owns
//	ordering; calc never infers it). Apply validates the operand count,
//	parses, executes, and formats:
//
//	  out, err := calc.Apply(calc.Request{
//	    Op:       calc.OpMultiply,
//	    Operands: []string{"1 2\n3 4", "5 6\n7 8"},
//	  })
//	  // out == "19 22\n43 50"
//
// ✨ Operator contract:
//
//	Add, Multiply  — exactly two operands (earlier text position = left)
//	Scale          — one operand plus a scalar; or two operands where a
//	                 1×1 operand supplies the scalar (the first one, when
//	                 both are 1×1)
//	Transpose, Inverse, RREF, Format — exactly one operand
//	Insert         — no operands; a "RxC" dimension spec produces a fresh
//	                 zero-filled matrix
//
// Errors are sentinels: calc.ErrUnsupportedOperandCount and calc.ErrUnknownOp
// from this package, codec.* and matrix.* sentinels wrapped with the operator
// tag but always reachable via errors.Is. No partial output is ever produced
// on failure.
package calc
