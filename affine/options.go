// SPDX-License-Identifier: MIT

package affine

import "github.com/katalvlaran/affine2/rounding"

// DefaultNegligibleWidth is the interval width below which Sqr stops
// linearizing and evaluates the plain interval square instead.
const DefaultNegligibleWidth = 1e-14

const panicNegligibleWidthInvalid = "affine: WithNegligibleWidth: width must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly; the last writer wins.
type Option func(*Options)

// Options holds the effective configuration of a nonlinear operation.
// Fields are unexported; callers pass ...Option.
type Options struct {
	negligibleWidth float64 // >= 0; DefaultNegligibleWidth
}

// WithNegligibleWidth sets the width threshold used by Sqr and SqrHull.
// A width of 0 disables the interval shortcut for every non-degenerate input.
//
// Panics when w is negative, NaN or infinite.
func WithNegligibleWidth(w float64) Option {
	if !rounding.IsFinite(w) || w < 0 {
		panic(panicNegligibleWidthInvalid)
	}

	return func(o *Options) { o.negligibleWidth = w }
}

// NegligibleWidth reports the configured threshold.
func (o Options) NegligibleWidth() float64 { return o.negligibleWidth }

// NewOptions resolves opts on top of the documented defaults.
func NewOptions(opts ...Option) Options {
	o := Options{negligibleWidth: DefaultNegligibleWidth}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
