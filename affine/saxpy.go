// SPDX-License-Identifier: MIT

package affine

import (
	"math"

	"github.com/katalvlaran/affine2/interval"
	"github.com/katalvlaran/affine2/rounding"
)

// Saxpy updates f in place to α·f + y + β, with |δ| folded into the error
// radius, applying only the stages enabled in steps, in the fixed order
// ScaleStep, AddFormStep, AddConstStep, AddErrorStep. It returns f.
//
// Implementation (active receiver; each stage re-checks, since an earlier
// stage may have degraded f):
//  1. Scale: α == 0 zeroes every coefficient and the error radius exactly.
//     Finite α multiplies each coefficient, charging every product's
//     rounding bound to the radius, plus |α|·e rounded up. Infinite α falls
//     back to Itv()·α.
//  2. Add form: equal dimensions add coefficient-wise (charged the same
//     way) and sum both radii upward. Unequal dimensions widen the smaller
//     operand to its enclosure and add that to the larger one. A degenerate
//     y falls back to Itv() + y.Itv().
//  3. Add constant: finite β touches the center only and charges that one
//     rounding; infinite β falls back to Itv() + β.
//  4. Add error: finite δ adds |δ| upward; infinite δ falls back to
//     Itv() + [-|δ|, |δ|].
//  5. Any non-finite coefficient or radius collapses f to Whole.
//
// A NaN α, β or δ carries no information: the stage using it turns f into
// Whole (Empty stays Empty).
//
// A degenerate receiver applies every enabled stage on its enclosure.
// y may be nil when AddFormStep is not set; y may alias f.
//
// Complexity: O(Dim()) time; allocates only when the dimension changes or y
// aliases f.
func (f *Form) Saxpy(alpha float64, y *Form, beta, delta float64, steps Step) *Form {
	if steps&AddFormStep != 0 {
		if y == nil {
			panic(panicNilOperand)
		}
		if y == f && steps&ScaleStep != 0 {
			y = y.Clone()
		}
	}
	if steps&ScaleStep != 0 {
		f.scale(alpha)
	}
	if steps&AddFormStep != 0 {
		f.addForm(y)
	}
	if steps&AddConstStep != 0 {
		f.addConst(beta)
	}
	if steps&AddErrorStep != 0 {
		f.addError(delta)
	}

	return f.collapse()
}

func (f *Form) scale(alpha float64) {
	switch {
	case f.unknown(alpha):
	case f.kind != Active || !rounding.IsFinite(alpha):
		f.SetInterval(f.Itv().MulScalar(alpha))
	case alpha == 0:
		clear(f.val)
		f.err = 0
	default:
		var s rounding.Slop
		for i, v := range f.val {
			f.val[i] = s.Track(rounding.Mul(v, alpha))
		}
		f.err = rounding.AddUp(s.Total(), rounding.MulUp(math.Abs(alpha), f.err))
	}
}

func (f *Form) addForm(y *Form) {
	switch {
	case f.kind != Active || y.kind != Active:
		f.SetInterval(f.Itv().Add(y.Itv()))
	case len(f.val) == len(y.val):
		var s rounding.Slop
		e := rounding.AddUp(f.err, y.err)
		for i := range f.val {
			f.val[i] = s.Track(f.val[i] + y.val[i])
		}
		f.err = rounding.AddUp(s.Total(), e)
	case len(f.val) > len(y.val):
		f.addInterval(y.Itv())
	default:
		tmp := f.Itv()
		f.Set(y)
		f.addInterval(tmp)
	}
}

func (f *Form) addConst(beta float64) {
	if f.unknown(beta) {
		return
	}
	if f.kind != Active || !rounding.IsFinite(beta) {
		f.SetInterval(f.Itv().AddScalar(beta))

		return
	}
	c := f.val[0] + beta
	f.val[0] = c
	f.err = rounding.AddUp(f.err, rounding.Err(c))
}

func (f *Form) addError(delta float64) {
	if f.unknown(delta) {
		return
	}
	if f.kind != Active || !rounding.IsFinite(delta) {
		f.SetInterval(f.Itv().Add(interval.Symmetric(delta)))

		return
	}
	f.err = rounding.AddUp(f.err, math.Abs(delta))
}

// unknown degrades f to Whole when x is NaN and reports whether it did.
// Empty stays Empty.
func (f *Form) unknown(x float64) bool {
	if !math.IsNaN(x) {
		return false
	}
	if f.kind != Empty {
		f.degenerate(Whole, 0)
	}

	return true
}

// addInterval adds the enclosure x as an uncorrelated term: its midpoint
// goes to the center, its radius to the error radius.
func (f *Form) addInterval(x interval.Interval) {
	if f.kind != Active || !x.IsBounded() {
		f.SetInterval(f.Itv().Add(x))

		return
	}
	f.addConst(x.Mid())
	f.addError(x.Rad())
}

// ---------- Derived in-place operations ----------

// Neg negates f exactly and returns it.
func (f *Form) Neg() *Form {
	if f.kind != Active {
		return f.SetInterval(f.Itv().Neg())
	}
	for i, v := range f.val {
		f.val[i] = -v
	}

	return f
}

// Add sets f = f + y and returns f.
func (f *Form) Add(y *Form) *Form {
	return f.Saxpy(1, y, 0, 0, AddFormStep)
}

// Sub sets f = f - y and returns f.
func (f *Form) Sub(y *Form) *Form {
	return f.Saxpy(1, Negate(y), 0, 0, AddFormStep)
}

// AddInterval sets f = f + x, treating x as uncorrelated with every noise
// symbol, and returns f.
func (f *Form) AddInterval(x interval.Interval) *Form {
	f.addInterval(x)

	return f.collapse()
}

// AddScalar sets f = f + b and returns f.
func (f *Form) AddScalar(b float64) *Form {
	return f.Saxpy(1, nil, b, 0, AddConstStep)
}

// SubScalar sets f = f - b and returns f.
func (f *Form) SubScalar(b float64) *Form {
	return f.AddScalar(-b)
}

// MulScalar sets f = a·f and returns f.
func (f *Form) MulScalar(a float64) *Form {
	return f.Saxpy(a, nil, 0, 0, ScaleStep)
}

// AddError widens the error radius of f by |d| and returns f.
func (f *Form) AddError(d float64) *Form {
	return f.Saxpy(1, nil, 0, d, AddErrorStep)
}
