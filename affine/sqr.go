// SPDX-License-Identifier: MIT

package affine

import (
	"math"

	"github.com/katalvlaran/affine2/interval"
	"github.com/katalvlaran/affine2/rounding"
)

// Sqr sets f = f² and returns f. It is SqrHull with f's own enclosure as the
// companion interval.
func (f *Form) Sqr(opts ...Option) *Form {
	return f.SqrHull(f.Itv(), opts...)
}

// SqrHull sets f = f² and returns f, given x, an interval enclosure of the
// same quantity (for instance its natural interval evaluation). x decides the
// shortcut: when f is degenerate, x is empty or unbounded, or Diam(x) is below
// the negligible width (see WithNegligibleWidth), f becomes x.Pow(2).
//
// Otherwise, with x̂ = x₀ + Σxᵢεᵢ + eξ, Sx = Σ|xᵢ|, Sx2 = Σxᵢ² (i ≥ 1):
//
//	center  x₀² + ½·Sx2
//	εᵢ      2x₀·xᵢ
//	radius  slop + 2|x₀|e + (e+Sx)² − ½·Sx2
//
// The quadratic part (Σxᵢεᵢ + eξ)² lies in [0, (e+Sx)²] and its diagonal
// Σxᵢ²εᵢ² in [0, Sx2]; centering on ½·Sx2 saves ½·Sx2 on the radius.
// Compared with Mul on a copy of f this charges fewer roundings, so the
// radius comes out smaller.
func (f *Form) SqrHull(x interval.Interval, opts ...Option) *Form {
	o := NewOptions(opts...)
	if f.kind != Active || x.IsEmpty() || x.IsUnbounded() || x.Diam() < o.negligibleWidth {
		return f.SetInterval(x.Pow(2))
	}

	var (
		s       rounding.Slop
		v       = f.val
		n       = len(v) - 1
		sx      float64 // Σ|xᵢ| rounded upward
		sx2, p  float64 // Σxᵢ² with tracked rounding
		x0, x02 float64
	)
	for i := 1; i <= n; i++ {
		p = s.Track(rounding.Mul(v[i], v[i]))
		sx2 = s.Track(sx2 + p)
		sx = rounding.AddUp(sx, math.Abs(v[i]))
	}

	x0 = v[0]
	x02 = 2 * x0
	v[0] = s.Track(rounding.Mul(x0, x0))
	for i := 1; i <= n; i++ {
		v[i] = s.Track(rounding.Mul(x02, v[i]))
	}
	p = s.Track(rounding.Mul(0.5, sx2))
	v[0] = s.Track(v[0] + p)

	t := rounding.AddUp(f.err, sx)
	e := s.Total()
	e = rounding.AddUp(e, rounding.MulUp(math.Abs(x02), f.err))
	e = rounding.AddUp(e, rounding.MulUp(t, t))
	e = rounding.AddUp(e, rounding.MulUp(-0.5, sx2))
	f.err = e

	return f.collapse()
}
