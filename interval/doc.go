// SPDX-License-Identifier: MIT

// Package interval implements closed real intervals [lo, hi] over float64
// with outward rounding, the plain enclosure type used by package affine for
// its degenerate states and fallback paths.
//
// 🚀 What is an interval here?
//
//	A value of type Interval is a set of reals. Every arithmetic result is
//	rounded outward (lower bound toward -∞, upper bound toward +∞), so it
//	encloses the exact set image of the operation on its operands.
//
// ✨ Key features:
//   - value semantics, zero value is the point [0, 0]
//   - canonical empty set, half-lines and the entire real line
//   - +, −, ×, abs, sqr and integer powers, all outward rounded
//   - 0·∞ = 0 (a zero factor always yields an exact zero)
//   - empty is absorbing in every arithmetic operation
//
// ⚙️ Usage:
//
//	x := interval.New(1, 2)
//	y := interval.New(-1, 3)
//	z := x.Mul(y).Add(interval.Point(0.5)) // ⊇ {a*b + 0.5 : a∈x, b∈y}
//
// Concurrency: Interval is an immutable value; every method returns a new
// value and may be called from any goroutine.
package interval
