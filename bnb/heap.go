// SPDX-License-Identifier: MIT

package bnb

import (
	"container/heap"
	"math"
)

// Heap is a min-heap of cells ordered by a Criterion. Not safe for
// concurrent use.
type Heap struct {
	crit Criterion
	goal int
	loup float64
	pq   cellPQ
	seq  uint64 // insertion counter, breaks cost ties
}

// NewHeap returns an empty heap ordered by crit.
//
// Panics on an unknown criterion.
func NewHeap(crit Criterion, opts ...Option) *Heap {
	if crit >= numCriteria {
		panic(panicUnknownCriterion)
	}
	o := NewOptions(opts...)

	return &Heap{crit: crit, goal: o.goalVar, loup: o.loup}
}

// Criterion returns the ordering in use.
func (h *Heap) Criterion() Criterion { return h.crit }

// Len returns the number of cells held.
func (h *Heap) Len() int { return len(h.pq) }

// Loup returns the current incumbent.
func (h *Heap) Loup() float64 { return h.loup }

// Push validates c against the criterion and inserts it.
func (h *Heap) Push(c *Cell) error {
	cost, err := h.Cost(c)
	if err != nil {
		return err
	}
	heap.Push(&h.pq, &cellItem{cell: c, cost: cost, seq: h.seq})
	h.seq++

	return nil
}

// Pop removes and returns the cheapest cell; ok is false on an empty heap.
func (h *Heap) Pop() (c *Cell, ok bool) {
	if len(h.pq) == 0 {
		return nil, false
	}

	return heap.Pop(&h.pq).(*cellItem).cell, true
}

// Top returns the cheapest cell without removing it.
func (h *Heap) Top() (c *Cell, ok bool) {
	if len(h.pq) == 0 {
		return nil, false
	}

	return h.pq[0].cell, true
}

// Contract sets the incumbent to loup and drops every cell whose objective
// lower bound exceeds it. Loup-dependent costs are recomputed and the heap is
// rebuilt. It returns the number of cells dropped.
//
// Panics when loup is NaN.
func (h *Heap) Contract(loup float64) int {
	if math.IsNaN(loup) {
		panic(panicLoupNaN)
	}
	h.loup = loup

	kept := h.pq[:0]
	for _, it := range h.pq {
		if h.lowerBound(it.cell) > loup {
			continue
		}
		if h.crit.DependsOnLoup() {
			it.cost = h.cost(it.cell)
		}
		kept = append(kept, it)
	}
	dropped := len(h.pq) - len(kept)
	clear(h.pq[len(kept):])
	h.pq = kept
	heap.Init(&h.pq)

	return dropped
}

// Flush removes every cell. The incumbent is kept.
func (h *Heap) Flush() {
	clear(h.pq)
	h.pq = h.pq[:0]
}

// Cost returns the cost of c under the heap's criterion and incumbent.
func (h *Heap) Cost(c *Cell) (float64, error) {
	if c == nil {
		return 0, ErrNilCell
	}
	if h.crit.NeedsData() && c.Data == nil {
		return 0, ErrNoOptimData
	}
	if h.crit.NeedsGoalVar() && (h.goal < 0 || h.goal >= len(c.Box)) {
		return 0, ErrGoalVarOutOfRange
	}

	return h.cost(c), nil
}

// cost evaluates the criterion on a validated cell.
func (h *Heap) cost(c *Cell) float64 {
	var v float64
	switch h.crit {
	case VarLB:
		v = c.Box[h.goal].Lo()
	case VarUB:
		v = c.Box[h.goal].Hi()
	case C3:
		v = -h.gap(c.Data)
	case C5:
		v = -(c.Data.PU * h.gap(c.Data))
	case C7:
		v = c.Box[h.goal].Lo() / (c.Data.PU * h.gap(c.Data))
	case PU:
		v = -c.Data.PU
	case PFLB:
		v = c.Data.PF.Lo()
	case PFUB:
		v = c.Data.PF.Hi()
	}
	if math.IsNaN(v) {
		return math.Inf(1)
	}

	return v
}

// gap returns (loup - PF.lo) / diam(PF).
func (h *Heap) gap(d *OptimData) float64 {
	return (h.loup - d.PF.Lo()) / d.PF.Diam()
}

// lowerBound returns the best lower bound of the objective known for c: the
// larger of PF.lo and Box[goal].lo, whichever are available. An empty
// enclosure has lower bound +Inf.
func (h *Heap) lowerBound(c *Cell) float64 {
	lb := math.Inf(-1)
	if c.Data != nil {
		lb = c.Data.PF.Lo()
	}
	if h.goal >= 0 && h.goal < len(c.Box) {
		lb = math.Max(lb, c.Box[h.goal].Lo())
	}

	return lb
}

// cellItem is one heap entry.
type cellItem struct {
	cell *Cell
	cost float64
	seq  uint64
}

// cellPQ is a min-heap of *cellItem by cost, then insertion order.
type cellPQ []*cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push.
func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(*cellItem)) }

// Pop is called by heap.Pop.
func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
