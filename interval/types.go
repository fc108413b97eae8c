// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// panicNegativeExponent is raised by Pow on a negative exponent.
const panicNegativeExponent = "interval: Pow: exponent must be non-negative"

// Interval is the closed set {x : lo ≤ x ≤ hi}. Bounds may be infinite.
// The empty set is stored canonically as lo=+Inf, hi=-Inf.
type Interval struct {
	lo, hi float64
}

// New returns [lo, hi]. A NaN bound, lo > hi, lo = +Inf or hi = -Inf all
// describe no real number and yield the empty set.
func New(lo, hi float64) Interval {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi || lo == posInf || hi == negInf {
		return Empty()
	}

	return Interval{lo: lo, hi: hi}
}

// Point returns the degenerate interval [x, x]. An infinite x yields the
// empty set, as no real number equals ±∞.
func Point(x float64) Interval { return New(x, x) }

// Symmetric returns [-|r|, |r|].
func Symmetric(r float64) Interval {
	r = math.Abs(r)

	return New(-r, r)
}

// PlusMinusOne returns [-1, 1], the range of a noise symbol.
func PlusMinusOne() Interval { return Interval{lo: -1, hi: 1} }

// Empty returns the empty set.
func Empty() Interval { return Interval{lo: posInf, hi: negInf} }

// Entire returns the whole real line [-∞, +∞].
func Entire() Interval { return Interval{lo: negInf, hi: posInf} }

// Lo returns the lower bound (+Inf for the empty set).
func (x Interval) Lo() float64 { return x.lo }

// Hi returns the upper bound (-Inf for the empty set).
func (x Interval) Hi() float64 { return x.hi }

// LB is an alias of Lo.
func (x Interval) LB() float64 { return x.lo }

// UB is an alias of Hi.
func (x Interval) UB() float64 { return x.hi }

// IsEmpty reports whether x contains no real number.
func (x Interval) IsEmpty() bool { return x.lo > x.hi }

// IsUnbounded reports whether one of the bounds is infinite.
// The empty set is not unbounded.
func (x Interval) IsUnbounded() bool {
	return !x.IsEmpty() && (x.lo == negInf || x.hi == posInf)
}

// IsBounded reports whether x is non-empty with two finite bounds.
func (x Interval) IsBounded() bool {
	return !x.IsEmpty() && !x.IsUnbounded()
}

// IsEntire reports whether x is the whole real line.
func (x Interval) IsEntire() bool { return x.lo == negInf && x.hi == posInf }

// Contains reports whether v ∈ x.
func (x Interval) Contains(v float64) bool { return x.lo <= v && v <= x.hi }

// IsSubset reports whether x ⊆ y. The empty set is a subset of everything.
func (x Interval) IsSubset(y Interval) bool {
	if x.IsEmpty() {
		return true
	}

	return y.lo <= x.lo && x.hi <= y.hi
}

// Equal reports set equality.
func (x Interval) Equal(y Interval) bool {
	if x.IsEmpty() || y.IsEmpty() {
		return x.IsEmpty() && y.IsEmpty()
	}

	return x.lo == y.lo && x.hi == y.hi
}

// Mid returns a representable midpoint of x.
//
//   - bounded:            0.5·lo + 0.5·hi (never overflows)
//   - entire:             0
//   - [a, +∞]:            +MaxFloat64
//   - [-∞, b]:            -MaxFloat64
//   - empty:              NaN
func (x Interval) Mid() float64 {
	switch {
	case x.IsEmpty():
		return math.NaN()
	case x.IsEntire():
		return 0
	case x.lo == negInf:
		return -math.MaxFloat64
	case x.hi == posInf:
		return math.MaxFloat64
	case x.lo == -x.hi:
		return 0
	}
	m := 0.5*x.lo + 0.5*x.hi
	// Both halves are exact unless they underflow; keep m inside x anyway.
	if m < x.lo {
		return x.lo
	}
	if m > x.hi {
		return x.hi
	}

	return m
}

// Rad returns a radius r, rounded upward, such that [Mid-r, Mid+r] ⊇ x.
// Unbounded intervals have an infinite radius; the empty set has radius 0.
func (x Interval) Rad() float64 {
	switch {
	case x.IsEmpty():
		return 0
	case x.IsUnbounded():
		return posInf
	}
	m := x.Mid()
	r1 := subUp(x.hi, m)
	r2 := subUp(m, x.lo)

	return math.Max(r1, r2)
}

// Diam returns hi - lo rounded upward (0 for the empty set).
func (x Interval) Diam() float64 {
	if x.IsEmpty() {
		return 0
	}

	return subUp(x.hi, x.lo)
}

// Mag returns max{|v| : v ∈ x} (0 for the empty set).
func (x Interval) Mag() float64 {
	if x.IsEmpty() {
		return 0
	}

	return math.Max(math.Abs(x.lo), math.Abs(x.hi))
}

// Hull returns the smallest interval containing x and y.
func (x Interval) Hull(y Interval) Interval {
	if x.IsEmpty() {
		return y
	}
	if y.IsEmpty() {
		return x
	}

	return Interval{lo: math.Min(x.lo, y.lo), hi: math.Max(x.hi, y.hi)}
}

// Intersect returns x ∩ y.
func (x Interval) Intersect(y Interval) Interval {
	return New(math.Max(x.lo, y.lo), math.Min(x.hi, y.hi))
}

// String renders x as "[lo, hi]" or "∅".
func (x Interval) String() string {
	if x.IsEmpty() {
		return "∅"
	}

	return fmt.Sprintf("[%g, %g]", x.lo, x.hi)
}
