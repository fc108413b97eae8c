// SPDX-License-Identifier: MIT

// Package bnb provides the cell and cell-heap orderings used by an interval
// branch-and-bound optimizer that consumes affine enclosures.
//
// Overview:
//
//   - A Cell is a search box (one interval per variable) plus optional
//     OptimData: the enclosure PF of the objective over the box, typically
//     an affine.Form's Itv(), and a feasibility estimate PU.
//   - A Heap orders cells by a Criterion, smallest cost first. It is a
//     container/heap min-heap; ties pop in insertion order.
//   - Criteria C3, C5 and C7 depend on the incumbent loup (lowest known upper
//     bound of the objective). Contract updates loup, drops every cell that
//     can no longer contain the minimum and re-costs the rest.
//
// Criteria:
//
//   - VarLB   Box[goal].Lo
//   - VarUB   Box[goal].Hi
//   - C3      -(loup - PF.lo) / diam(PF)
//   - C5      -PU·(loup - PF.lo) / diam(PF)
//   - C7      Box[goal].Lo / (PU·(loup - PF.lo) / diam(PF))
//   - PU      -PU
//   - PFLB    PF.lo
//   - PFUB    PF.hi
//
// A NaN cost (for example 0/0 on a flat PF at loup) is ordered as +Inf.
//
// Non-goals: this package holds the ordering policy only. The search loop,
// bisection and contractors belong to the caller.
//
// Complexity:
//
//   - Push, Pop: O(log n).
//   - Top, Len, Loup: O(1).
//   - Contract: O(n) filter and re-cost plus O(n) heapify.
//
// Error handling (sentinel errors):
//
//   - ErrNilCell: Push was given a nil cell.
//   - ErrNoOptimData: the criterion reads PF or PU and the cell has no data.
//   - ErrGoalVarOutOfRange: the criterion reads Box[goal] and goal is unset
//     or outside the box.
package bnb
