// SPDX-License-Identifier: MIT

// Package affine implements rigorous affine arithmetic: a real quantity is
// represented by an affine form
//
//	x̂ = x₀ + x₁·ε₁ + … + xₙ·εₙ + e·ξ,   εᵢ, ξ ∈ [-1, 1]
//
// a central value x₀, weights xᵢ on noise symbols εᵢ shared between forms,
// and one aggregated error radius e ≥ 0. Every operation returns a form that
// encloses the exact mathematical result under worst-case float64 rounding.
//
// 🚀 Why affine forms?
//
//	Plain intervals forget that two quantities depend on the same inputs:
//	for x ∈ [2, 4], interval x − x is [-2, 2]. Forms keep the shared symbols,
//	so x − x shrinks to 0 up to rounding slop, and nonlinear operations only pay for the
//	genuinely nonlinear part.
//
// ✨ Key features:
//   - explicit degenerate states: Empty, Whole, RightUnbounded, LeftUnbounded
//   - one fused primitive (Saxpy) behind negation, +, −, scalar ops
//   - multiplication by an interval or another form, dedicated squaring
//   - every rounded operation charged to the error radius via a certified
//     bound (distance to the neighboring float64), summed with upward rounding
//   - non-finite results collapse to the whole real line: precision may be
//     lost, soundness never is
//
// ⚙️ Usage:
//
//	x := affine.NewSymbol(2, 1, interval.New(2, 4)) // 3 + 1·ε₁
//	y := affine.NewSymbol(2, 2, interval.New(0, 1)) // 0.5 + 0.5·ε₂
//	z := affine.Product(x, y).Add(x).Sqr()
//	fmt.Println(z.Itv())                            // sound enclosure
//
// Operators mutate the receiver in place and return it for chaining; the
// package-level helpers (Sum, Diff, Product, Square, Negate, Scale) allocate
// a fresh result and leave their arguments untouched.
//
// Errors:
//
//	Representational degradation is not an error: it is handled by falling
//	back to interval arithmetic or collapsing to Whole. Out-of-range
//	coefficient access through Val and an inconsistent NewSymbol are
//	programmer errors and panic; At is the checked accessor.
//
// Concurrency:
//
//	A Form is not synchronized. Mutating one Form from several goroutines
//	is a data race; read-only accessors on distinct Forms are safe.
package affine
