// SPDX-License-Identifier: MIT

package affine

// Value-returning counterparts of the in-place operators. Each allocates a
// fresh result and leaves its arguments untouched.

// Sum returns x + y.
func Sum(x, y *Form) *Form { return x.Clone().Add(y) }

// Diff returns x - y.
func Diff(x, y *Form) *Form { return x.Clone().Sub(y) }

// Product returns x · y.
func Product(x, y *Form) *Form { return x.Clone().Mul(y) }

// Square returns x².
func Square(x *Form, opts ...Option) *Form { return x.Clone().Sqr(opts...) }

// Negate returns -x.
func Negate(x *Form) *Form { return x.Clone().Neg() }

// Scale returns a · x.
func Scale(x *Form, a float64) *Form { return x.Clone().MulScalar(a) }
