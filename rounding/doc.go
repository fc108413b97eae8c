// SPDX-License-Identifier: MIT

// Package rounding provides directed rounding and certified rounding-error
// bookkeeping for IEEE-754 float64 arithmetic without switching the hardware
// rounding mode.
//
// 🚀 What is it for?
//
//	Go always computes in round-to-nearest. A sound enclosure needs the other
//	two directions as well. This package emulates them by moving the
//	round-to-nearest result one representable step outward, which is always
//	at least as far as the half ulp actually committed.
//
// ✨ Key pieces:
//   - Up / Down: one step toward ±∞.
//   - AddUp, SubDown, MulUp ...: directed results; exact results are kept as
//     they are (detected with TwoSum / FMA residuals), inexact ones stepped
//     outward, finite overflow clamped to ±MaxFloat64 on the safe side.
//   - Err: the distance from x to its farther neighbor, a certified bound on
//     the error of the single correctly rounded operation that produced x.
//   - Slop: an accumulator that sums such bounds, always rounding up.
//
// ⚙️ Usage:
//
//	var s rounding.Slop
//	p := s.Track(rounding.Mul(a, b)) // p = fl(a*b), s ≥ |a*b - p|
//	q := s.Track(p + c)              // q = fl(p+c), s grows accordingly
//	bound := s.Total()
//
// Products are passed through Mul (an explicit float64 conversion) so the
// compiler cannot fuse them with a following addition into an FMA; a fused
// result would not be the rounded product the error bound talks about.
package rounding
