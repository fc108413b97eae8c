// SPDX-License-Identifier: MIT

package bnb

import "errors"

var (
	// ErrNilCell indicates a nil *Cell was pushed.
	ErrNilCell = errors.New("bnb: nil cell")

	// ErrNoOptimData indicates the criterion needs OptimData the cell lacks.
	ErrNoOptimData = errors.New("bnb: cell has no optimization data")

	// ErrGoalVarOutOfRange indicates the goal variable is unset or outside the box.
	ErrGoalVarOutOfRange = errors.New("bnb: goal variable out of range")
)

const (
	panicUnknownCriterion = "bnb: NewHeap: unknown criterion"
	panicGoalVarNegative  = "bnb: WithGoalVar: index must be non-negative"
	panicLoupNaN          = "bnb: loup must not be NaN"
)
