// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks
	// (symmetry) and as the off-diagonal target of the Jacobi solver.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultMaxSweeps bounds the number of cyclic Jacobi sweeps. One sweep
	// rotates every off-diagonal pair once; convergence is quadratic, so
	// well-conditioned inputs finish in well under ten sweeps.
	DefaultMaxSweeps = 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxSweepsInvalid = "matrix: WithMaxSweeps: sweeps must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	maxSweeps      int     // > 0; DefaultMaxSweeps
}

// WithEpsilon sets the numeric tolerance used by symmetry checks and Jacobi.
//
// Errors:
//   - Panics with a stable message when eps is negative or non-finite.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithMaxSweeps sets the Jacobi sweep budget used by EigenSym.
//
// Errors:
//   - Panics when sweeps <= 0.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		maxSweeps:      DefaultMaxSweeps,
	}
}

// gatherOptions applies setters in order over defaults; nil setters are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// NewMatrixOptions resolves setters into an Options value. Useful for callers
// that want to inspect the effective policy.
func NewMatrixOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// MaxSweeps returns the Jacobi sweep budget.
func (o Options) MaxSweeps() int { return o.maxSweeps }
