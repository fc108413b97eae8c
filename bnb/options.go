// SPDX-License-Identifier: MIT

package bnb

import "math"

const (
	// DefaultGoalVar marks the goal variable as unset; criteria reading
	// Box[goal] then reject every cell with ErrGoalVarOutOfRange.
	DefaultGoalVar = -1

	// DefaultLoup is the incumbent before any feasible point is known.
	DefaultLoup = math.MaxFloat64
)

// Option configures a Heap.
type Option func(*Options)

// Options holds the effective Heap configuration.
type Options struct {
	goalVar int
	loup    float64
}

// WithGoalVar sets the index of the objective variable in Cell.Box.
//
// Panics when i is negative.
func WithGoalVar(i int) Option {
	if i < 0 {
		panic(panicGoalVarNegative)
	}

	return func(o *Options) { o.goalVar = i }
}

// WithLoup sets the initial incumbent.
//
// Panics when lb is NaN.
func WithLoup(lb float64) Option {
	if math.IsNaN(lb) {
		panic(panicLoupNaN)
	}

	return func(o *Options) { o.loup = lb }
}

// NewOptions resolves opts on top of the defaults. Nil options are skipped.
func NewOptions(opts ...Option) Options {
	o := Options{goalVar: DefaultGoalVar, loup: DefaultLoup}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// GoalVar reports the configured goal variable (DefaultGoalVar when unset).
func (o Options) GoalVar() int { return o.goalVar }

// Loup reports the configured initial incumbent.
func (o Options) Loup() float64 { return o.loup }
