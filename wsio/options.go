// Package wsio: per-call parse options.
//
// The three parse modes are plain values resolved for every Decoder:
//   - strict (default true): each position must be well-formed under the
//     tolerance, otherwise decoding fails with weighted.ErrInvalidProbabilityMass,
//   - gap convention (default false): the last alphabet symbol becomes the gap,
//   - tolerance (default 0).
//
// Nothing is shared between decoders, so concurrent parses with different
// modes do not interfere.
package wsio

import (
	"math"

	"github.com/katalvlaran/wstr/weighted"
)

const (
	// DefaultStrict validates every decoded position.
	DefaultStrict = true

	// DefaultGapConvention leaves the gap of decoded sequences untouched.
	DefaultGapConvention = false

	// DefaultTolerance is the tolerance handed to every decoded position.
	DefaultTolerance = 0.0
)

const panicToleranceInvalid = "wsio: WithTolerance: tolerance must be finite, non-negative"

// Option mutates decoder options.
type Option func(*Options)

// Options is the resolved parse configuration.
type Options struct {
	strict        bool
	gapConvention bool
	tolerance     float64
}

// Strict reports whether decoded positions are validated.
func (o Options) Strict() bool { return o.strict }

// GapConvention reports whether the last alphabet symbol becomes the gap.
func (o Options) GapConvention() bool { return o.gapConvention }

// Tolerance returns the tolerance handed to decoded positions.
func (o Options) Tolerance() float64 { return o.tolerance }

// WithStrict validates every decoded position (the default).
func WithStrict() Option { return func(o *Options) { o.strict = true } }

// WithLenient accepts positions that are not well-formed.
func WithLenient() Option { return func(o *Options) { o.strict = false } }

// WithStrictness sets strictness from a flag.
func WithStrictness(strict bool) Option { return func(o *Options) { o.strict = strict } }

// WithGapConvention turns the gap convention on or off.
func WithGapConvention(on bool) Option { return func(o *Options) { o.gapConvention = on } }

// WithTolerance sets the tolerance. It panics when tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{strict: DefaultStrict, gapConvention: DefaultGapConvention, tolerance: DefaultTolerance}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// elementOptions translates the parse modes into construction options.
func (o Options) elementOptions() []weighted.Option {
	return []weighted.Option{weighted.WithStrictness(o.strict), weighted.WithTolerance(o.tolerance)}
}
