// Package weighted: functional construction options.
//
// Defaults (single source of truth):
//   - strict construction (mass must sum to one),
//   - tolerance 0 (only machine epsilon of slack).
//
// With* constructors panic on nonsensical values (programmer error), the
// same policy as numeric options elsewhere in this module.
package weighted

import "math"

const (
	// DefaultStrict makes NewElement reject a distribution that is not well-formed.
	DefaultStrict = true

	// DefaultTolerance is the extra slack added to machine epsilon in IsGood.
	DefaultTolerance = 0.0
)

// machineEpsilon is the float64 unit roundoff bound (2^-52).
const machineEpsilon = 0x1p-52

const panicToleranceInvalid = "weighted: WithTolerance: tolerance must be finite, non-negative"

// Option mutates construction options.
type Option func(*Options)

// Options is the resolved construction configuration.
type Options struct {
	strict    bool
	tolerance float64
}

// Strict reports whether construction enforces well-formedness.
func (o Options) Strict() bool { return o.strict }

// Tolerance returns the configured tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// WithStrict enforces well-formedness at construction (the default).
func WithStrict() Option { return func(o *Options) { o.strict = true } }

// WithLenient skips the well-formedness check; IsGood can be queried later.
func WithLenient() Option { return func(o *Options) { o.strict = false } }

// WithStrictness sets strictness from a flag, for callers that carry it as data.
func WithStrictness(strict bool) Option { return func(o *Options) { o.strict = strict } }

// WithTolerance sets the tolerance stored on the element and used for the
// construction check. It panics when tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if !validTolerance(tol) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{strict: DefaultStrict, tolerance: DefaultTolerance}
}

// gatherOptions applies opts over the defaults, left to right.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func validTolerance(tol float64) bool {
	return !math.IsNaN(tol) && !math.IsInf(tol, 0) && tol >= 0
}
