// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// elimination kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultPivotTolerance is the magnitude below which a candidate pivot is
	// treated as zero in RREF/Inverse. Gauss–Jordan with partial pivoting is
	// numerically imprecise by nature; this threshold decides singularity.
	DefaultPivotTolerance = 1e-10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithPivotTolerance sets the zero-pivot threshold used by RREF and Inverse.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - tol: non-negative finite threshold; |pivot| ≤ tol ⇒ pivot treated as zero.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Larger tol declares more matrices singular; smaller tol lets noisy,
//     near-dependent rows pass through elimination. Expose it to callers that
//     need reproducible testing rather than hard-coding a constant.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	// Assign validated tolerance
	return func(o *Options) { o.pivotTol = tol }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from the Default* constants (single source of truth).
//   - Stage 2: apply opts in order; last-writer-wins semantics.
//
// Returns:
//   - Options: internal struct with effective configuration.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance reports the effective zero-pivot threshold.
// Complexity: O(1).
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for the elimination kernels.
// Determinism: stable for a given sequence of setters.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		// numeric policy
		pivotTol: DefaultPivotTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
