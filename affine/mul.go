// SPDX-License-Identifier: MIT

package affine

import (
	"math"

	"github.com/katalvlaran/affine2/interval"
	"github.com/katalvlaran/affine2/rounding"
)

// MulInterval sets f = f·y for a plain interval y and returns f.
//
// Writing y = m + r·η with m = Mid(y), r = Rad(y), |η| ≤ 1:
//
//	f·y = Σ (xᵢ·m)·εᵢ + m·e·ξ + r·η·f
//
// so each coefficient is scaled by m (rounding charged to the radius) and the
// radius becomes slop + |m|·e + r·(Σ_{i≥0}|xᵢ| + e), all rounded upward.
//
// A degenerate f, or an empty or unbounded y, falls back to Itv()·y.
// Scaling by an empty y therefore yields Empty.
func (f *Form) MulInterval(y interval.Interval) *Form {
	if f.kind != Active || y.IsEmpty() || y.IsUnbounded() {
		return f.SetInterval(f.Itv().Mul(y))
	}
	m, r := y.Mid(), y.Rad()

	var (
		s    rounding.Slop
		norm float64 // Σ|xᵢ| over the coefficients before scaling
	)
	for i, v := range f.val {
		norm = rounding.AddUp(norm, math.Abs(v))
		f.val[i] = s.Track(rounding.Mul(v, m))
	}
	e := rounding.AddUp(s.Total(), rounding.MulUp(math.Abs(m), f.err))
	e = rounding.AddUp(e, rounding.MulUp(r, rounding.AddUp(norm, f.err)))
	f.err = e

	return f.collapse()
}

// Mul sets f = f·y and returns f.
//
// With x̂ = x₀ + Σxᵢεᵢ + eₓξ and ŷ = y₀ + Σyᵢεᵢ + e_yζ of equal dimension,
// the product is linearized at the centers:
//
//	center  x₀y₀ + ½·Σxᵢyᵢ
//	εᵢ      xᵢy₀ + x₀yᵢ
//	radius  slop + |y₀|eₓ + |x₀|e_y + (eₓ+Sx)(e_y+Sy) − ½·Σ|xᵢyᵢ|
//
// where Sx = Σ|xᵢ|, Sy = Σ|yᵢ| (i ≥ 1). The diagonal terms xᵢyᵢεᵢ² range over
// [0, xᵢyᵢ]; centering them moves half of their signed sum into the center
// and saves half of their absolute sum on the radius. Every rounded
// operation is charged to slop.
//
// A degenerate operand falls back to Itv()·y.Itv(). Unequal dimensions widen
// the lower-dimensional operand to its enclosure and multiply it in as in
// MulInterval. y may alias f.
//
// Complexity: O(Dim()) time, allocates only when y aliases f or the
// dimensions differ.
func (f *Form) Mul(y *Form) *Form {
	if f.kind != Active || y.kind != Active {
		return f.SetInterval(f.Itv().Mul(y.Itv()))
	}
	if len(f.val) != len(y.val) {
		if len(f.val) > len(y.val) {
			return f.MulInterval(y.Itv())
		}
		tmp := f.Itv()

		return f.Set(y).MulInterval(tmp)
	}
	if y == f {
		y = y.Clone()
	}

	var (
		s          rounding.Slop
		x, yv      = f.val, y.val
		n          = len(x) - 1
		sx, sy     float64 // Σ|xᵢ|, Σ|yᵢ| rounded upward
		sz, sxy, p float64 // Σxᵢyᵢ, Σ|xᵢyᵢ| with tracked rounding
	)
	for i := 1; i <= n; i++ {
		p = s.Track(rounding.Mul(x[i], yv[i]))
		sz = s.Track(sz + p)
		sxy = s.Track(sxy + math.Abs(p))
		sx = rounding.AddUp(sx, math.Abs(x[i]))
		sy = rounding.AddUp(sy, math.Abs(yv[i]))
	}

	x0, y0 := x[0], yv[0]
	ex, ey := f.err, y.err
	for i := 0; i <= n; i++ {
		x[i] = s.Track(rounding.Mul(x[i], y0))
	}
	for i := 1; i <= n; i++ {
		p = s.Track(rounding.Mul(x0, yv[i]))
		x[i] = s.Track(x[i] + p)
	}
	p = s.Track(rounding.Mul(0.5, sz))
	x[0] = s.Track(x[0] + p)

	e := s.Total()
	e = rounding.AddUp(e, rounding.MulUp(math.Abs(y0), ex))
	e = rounding.AddUp(e, rounding.MulUp(math.Abs(x0), ey))
	e = rounding.AddUp(e, rounding.MulUp(rounding.AddUp(ex, sx), rounding.AddUp(ey, sy)))
	e = rounding.AddUp(e, rounding.MulUp(-0.5, sxy))
	f.err = e

	return f.collapse()
}
