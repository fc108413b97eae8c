// SPDX-License-Identifier: MIT

package interval

import (
	"math"

	"github.com/katalvlaran/affine2/rounding"
)

// subUp keeps the package-local call sites short.
func subUp(a, b float64) float64 { return rounding.SubUp(a, b) }

// Neg returns -x (exact).
func (x Interval) Neg() Interval {
	if x.IsEmpty() {
		return x
	}

	return Interval{lo: -x.hi, hi: -x.lo}
}

// Add returns x + y.
func (x Interval) Add(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}

	return New(rounding.AddDown(x.lo, y.lo), rounding.AddUp(x.hi, y.hi))
}

// Sub returns x - y.
func (x Interval) Sub(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}

	return New(rounding.SubDown(x.lo, y.hi), rounding.SubUp(x.hi, y.lo))
}

// Mul returns x · y. A zero bound times an infinite bound contributes 0.
func (x Interval) Mul(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	var (
		a, b = x.lo, x.hi
		c, d = y.lo, y.hi
	)
	lo := math.Min(
		math.Min(rounding.MulDown(a, c), rounding.MulDown(a, d)),
		math.Min(rounding.MulDown(b, c), rounding.MulDown(b, d)),
	)
	hi := math.Max(
		math.Max(rounding.MulUp(a, c), rounding.MulUp(a, d)),
		math.Max(rounding.MulUp(b, c), rounding.MulUp(b, d)),
	)

	return New(lo, hi)
}

// AddScalar returns x + d. An infinite d is not a real number and behaves as
// the empty set.
func (x Interval) AddScalar(d float64) Interval { return x.Add(Point(d)) }

// MulScalar returns x · d. An infinite d behaves as the empty set.
func (x Interval) MulScalar(d float64) Interval { return x.Mul(Point(d)) }

// Abs returns {|v| : v ∈ x}.
func (x Interval) Abs() Interval {
	switch {
	case x.IsEmpty():
		return x
	case x.lo >= 0:
		return x
	case x.hi <= 0:
		return x.Neg()
	}

	return Interval{lo: 0, hi: math.Max(-x.lo, x.hi)}
}

// Sqr returns {v² : v ∈ x}. Tighter than x.Mul(x), which ignores that both
// factors are the same value.
func (x Interval) Sqr() Interval { return x.Pow(2) }

// Pow returns {vⁿ : v ∈ x} for n ≥ 0. Pow(0) of a non-empty interval is [1, 1].
// A negative n is a programmer error and panics.
func (x Interval) Pow(n int) Interval {
	if n < 0 {
		panic(panicNegativeExponent)
	}
	switch {
	case x.IsEmpty():
		return x
	case n == 0:
		return Point(1)
	case n == 1:
		return x
	}

	if n%2 == 0 {
		a := x.Abs()
		lo := powDown(a.lo, n)
		if lo < 0 {
			lo = 0
		}

		return New(lo, powUp(a.hi, n))
	}

	// odd n: monotone increasing
	return New(signedPowDown(x.lo, n), signedPowUp(x.hi, n))
}

// powUp returns an upper bound of vⁿ for v ≥ 0.
func powUp(v float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r = rounding.MulUp(r, v)
	}

	return r
}

// powDown returns a lower bound of vⁿ for v ≥ 0.
func powDown(v float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r = rounding.MulDown(r, v)
	}

	return r
}

// signedPowUp returns an upper bound of vⁿ for odd n and any sign of v.
func signedPowUp(v float64, n int) float64 {
	if v < 0 {
		return -powDown(-v, n)
	}

	return powUp(v, n)
}

// signedPowDown returns a lower bound of vⁿ for odd n and any sign of v.
func signedPowDown(v float64, n int) float64 {
	if v < 0 {
		return -powUp(-v, n)
	}

	return powDown(v, n)
}
