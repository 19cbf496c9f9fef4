// Package matrixcalc turns plain-text blocks of numbers into matrices,
// runs classic linear-algebra operations on them, and serializes the
// results back to the same text format.
//
// 🚀 What is matrixcalc?
//
//	A small, deterministic library + CLI that brings together:
//		• Text codec: parse newline/space-delimited blocks into dense matrices
//		• Kernels: Add, Multiply, Scale, Transpose
//		• Elimination: Inverse & RREF via Gauss–Jordan with partial pivoting
//		• Formatting: column-aligned output with integer-friendly rendering
//		• Dispatch: position-ordered operation requests for host front ends
//
// ✨ Why choose matrixcalc?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure functions – operands are never mutated, results are fresh values
//   - Explicit errors – sentinel taxonomy matched with errors.Is
//   - Host-agnostic – no editor or terminal types leak into the core
//
// Under the hood, everything is organized under three subpackages plus a CLI:
//
//	matrix/      — Dense storage, validators, and the numeric kernels
//	codec/       — text ↔ matrix conversion and dimension shorthand
//	calc/        — operation requests, operand-count rules, dispatch
//	cmd/matcalc/ — cobra front end reading blocks from files or stdin
//
// Quick ASCII example:
//
//	1 2     5 6      19 22
//	3 4  ×  7 8  →   43 50
//
// Dive into each package's doc.go for invariants, tolerances and examples.
//
//	go get github.com/bradybhalla/matrixcalc
package matrixcalc
