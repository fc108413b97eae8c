// SPDX-License-Identifier: MIT

package bnb

import (
	"github.com/katalvlaran/affine2/affine"
	"github.com/katalvlaran/affine2/interval"
)

// Cell is a node of the branch-and-bound tree.
type Cell struct {
	Box  []interval.Interval // one domain per variable
	Data *OptimData          // nil when no objective data is attached
}

// NewCell returns a cell over box carrying data (which may be nil).
func NewCell(box []interval.Interval, data *OptimData) *Cell {
	return &Cell{Box: box, Data: data}
}

// OptimData is the per-cell objective information read by the data-driven
// criteria.
type OptimData struct {
	PF interval.Interval // enclosure of the objective over the box
	PU float64           // feasibility estimate, larger is better
}

// NewOptimData records the enclosure of the objective form pf together with
// the feasibility estimate pu.
func NewOptimData(pf *affine.Form, pu float64) *OptimData {
	return &OptimData{PF: pf.Itv(), PU: pu}
}

// Criterion selects the cost a Heap orders by.
type Criterion uint8

const (
	VarLB Criterion = iota // lower bound of the goal variable
	VarUB                  // upper bound of the goal variable
	C3                     // relative distance from PF.lo to loup
	C5                     // C3 weighted by PU
	C7                     // goal lower bound over the C5 weight
	PU                     // feasibility estimate, largest first
	PFLB                   // lower bound of PF
	PFUB                   // upper bound of PF
	numCriteria
)

var criterionNames = [numCriteria]string{"VarLB", "VarUB", "C3", "C5", "C7", "PU", "PFLB", "PFUB"}

func (c Criterion) String() string {
	if c < numCriteria {
		return criterionNames[c]
	}

	return "Criterion(?)"
}

// NeedsData reports whether the cost reads Cell.Data.
func (c Criterion) NeedsData() bool {
	return c != VarLB && c != VarUB
}

// NeedsGoalVar reports whether the cost reads Box[goal].
func (c Criterion) NeedsGoalVar() bool {
	return c == VarLB || c == VarUB || c == C7
}

// DependsOnLoup reports whether the cost changes with the incumbent.
func (c Criterion) DependsOnLoup() bool {
	return c == C3 || c == C5 || c == C7
}
