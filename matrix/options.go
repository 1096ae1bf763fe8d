// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume `...Option`.

package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon defines the non-negative tolerance used everywhere the
// package compares floating-point values: IsSingular / Inverse singularity
// detection, Equal, and every tolerance-aware predicate. 1e-9 is tight
// enough to keep genuinely invertible double-precision matrices invertible,
// and loose enough to absorb the rounding error the kernels introduce on
// well-conditioned small inputs. This value is part of the public contract.
const DefaultEpsilon = 1e-9

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon reports the effective comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the numeric tolerance eps used by comparisons and
// singularity checks. Larger eps relaxes equality; use judiciously.
// Panics with a stable message when eps is NaN, ±Inf, or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewMatrixOptions resolves opts over the documented defaults and returns
// the effective configuration. Exported for callers that want to inspect
// the policy an operation would run under.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies opts over defaults. Internal single point of truth.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
