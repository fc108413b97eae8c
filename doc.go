// SPDX-License-Identifier: MIT

// Package affine2 is a self-validated arithmetic kernel: affine forms with
// certified rounding-error accounting, the outward-rounded intervals they
// enclose to, and the cell orderings a branch-and-bound optimizer feeds them
// into.
//
// 🚀 What is inside?
//
//	• rounding  directed float64 rounding without touching the FPU mode,
//	            and a Slop accumulator for certified error bounds
//	• interval  closed real intervals with outward rounding
//	• affine    affine forms: Saxpy, Mul, Sqr, enclosure, degenerate kinds
//	• bnb       cells and cell-heap criteria (VarLB ... PFUB), Contract
//
// ✨ Guarantees:
//
//   - Soundness: every Itv() contains every value the form stands for,
//     rounding errors included.
//   - No panics on numeric input: overflow and NaN degrade to the whole line.
//   - Pure Go, no cgo, no logging.
//
// Dependency direction:
//
//	rounding ← interval ← affine ← bnb
//
// Quick example:
//
//	x := affine.NewSymbol(1, 1, interval.New(2, 4)) // 3 + ε1
//	d := affine.Diff(x, x)                           // ≈ 0, not [-2, 2]
package affine2
