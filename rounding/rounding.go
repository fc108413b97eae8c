// SPDX-License-Identifier: MIT

package rounding

import "math"

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// tinyProduct bounds |fl(a*b)| below which the FMA residual may itself be
// rounded (gradual underflow); such products are always stepped outward.
const tinyProduct = 0x1p-969

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Up returns the smallest float64 strictly greater than x.
// ±Inf and NaN are returned unchanged.
func Up(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Nextafter(x, posInf)
}

// Down returns the largest float64 strictly smaller than x.
// ±Inf and NaN are returned unchanged.
func Down(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Nextafter(x, negInf)
}

// Mul returns fl(a*b) as a separately rounded value.
func Mul(a, b float64) float64 {
	return float64(a * b)
}

// twoSumErr returns (a+b) - s exactly, for s = fl(a+b) finite (Knuth's TwoSum).
func twoSumErr(a, b, s float64) float64 {
	bb := s - a

	return (a - (s - bb)) + (b - bb)
}

// AddUp returns the smallest float64 ≥ a+b: fl(a+b) when the sum is exact
// or was rounded up, its successor otherwise.
func AddUp(a, b float64) float64 {
	s := a + b
	if !IsFinite(s) {
		if s == negInf && IsFinite(a) && IsFinite(b) {
			return -math.MaxFloat64
		}

		return s
	}
	if e := twoSumErr(a, b, s); e > 0 || math.IsNaN(e) {
		return Up(s)
	}

	return s
}

// AddDown returns the largest float64 ≤ a+b.
func AddDown(a, b float64) float64 {
	s := a + b
	if !IsFinite(s) {
		if s == posInf && IsFinite(a) && IsFinite(b) {
			return math.MaxFloat64
		}

		return s
	}
	if e := twoSumErr(a, b, s); e < 0 || math.IsNaN(e) {
		return Down(s)
	}

	return s
}

// SubUp returns an upper bound of a-b.
func SubUp(a, b float64) float64 { return AddUp(a, -b) }

// SubDown returns a lower bound of a-b.
func SubDown(a, b float64) float64 { return AddDown(a, -b) }

// MulUp returns an upper bound of a*b, exact when the product is.
// A zero factor yields an exact zero, including 0·∞.
func MulUp(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := Mul(a, b)
	if !IsFinite(p) {
		if p == negInf && IsFinite(a) && IsFinite(b) {
			return -math.MaxFloat64
		}

		return p
	}
	if math.Abs(p) < tinyProduct || math.FMA(a, b, -p) > 0 {
		return Up(p)
	}

	return p
}

// MulDown returns a lower bound of a*b, exact when the product is.
// A zero factor yields an exact zero, including 0·∞.
func MulDown(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := Mul(a, b)
	if !IsFinite(p) {
		if p == posInf && IsFinite(a) && IsFinite(b) {
			return math.MaxFloat64
		}

		return p
	}
	if math.Abs(p) < tinyProduct || math.FMA(a, b, -p) < 0 {
		return Down(p)
	}

	return p
}

// Err returns a certified bound on the rounding error of the single
// round-to-nearest operation whose result is x: the distance from x to the
// farther of its two neighbors.
//
// A non-finite x has no meaningful bound and yields +Inf; callers collapse
// such results anyway.
func Err(x float64) float64 {
	if !IsFinite(x) {
		return posInf
	}
	up := math.Nextafter(x, posInf) - x
	down := x - math.Nextafter(x, negInf)
	if up > down {
		return up
	}

	return down
}
