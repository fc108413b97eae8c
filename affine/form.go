// SPDX-License-Identifier: MIT

package affine

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/affine2/interval"
	"github.com/katalvlaran/affine2/rounding"
)

// ---------- Construction ----------

// NewScalar returns the exact form of d: active with Dim()==0 and no error
// when d is finite, RightUnbounded(d) for +Inf, LeftUnbounded(d) for -Inf.
// NaN carries no information and yields Whole.
//
// The infinite threshold is kept as is: Itv() of NewScalar(±Inf) is ∅, as
// for any point at infinity, and NewInterval of it is Empty.
func NewScalar(d float64) *Form {
	return new(Form).SetScalar(d)
}

// NewInterval returns the form of x with Dim()==0: center Mid(x), error
// radius Rad(x). Empty, entire and half-line inputs map to the matching
// degenerate kind without allocating coefficients.
func NewInterval(x interval.Interval) *Form {
	return new(Form).SetInterval(x)
}

// NewSymbol returns a form of dimension n for the bounded interval x. When
// m > 0 the radius of x is placed on noise symbol m (the form then tracks
// that symbol exactly); when m == 0 it goes to the error radius. Unbounded or
// empty x is classified as in NewInterval.
//
// Panics unless 0 ≤ m ≤ n.
func NewSymbol(n, m int, x interval.Interval) *Form {
	if n < 0 || m < 0 || m > n {
		panic(panicSymbolInvalid)
	}
	f := new(Form)
	if !x.IsBounded() {
		return f.SetInterval(x)
	}
	f.resize(n)
	clear(f.val)
	f.val[0] = x.Mid()
	f.err = 0
	if m == 0 {
		f.err = x.Rad()
	} else {
		f.val[m] = x.Rad()
	}

	return f.collapse()
}

// Clone returns a deep copy of f. Degenerate forms are copied without
// allocating coefficient storage.
func (f *Form) Clone() *Form {
	c := &Form{kind: f.kind, err: f.err}
	if f.kind == Active {
		c.val = make([]float64, len(f.val))
		copy(c.val, f.val)
	}

	return c
}

// ---------- Assignment ----------

// Set makes f a deep copy of x and returns f. f.Set(f) is a no-op.
func (f *Form) Set(x *Form) *Form {
	if f == x {
		return f
	}
	if x.kind != Active {
		f.degenerate(x.kind, x.err)

		return f
	}
	f.resize(len(x.val) - 1)
	copy(f.val, x.val)
	f.err = x.err

	return f
}

// SetScalar assigns d (see NewScalar) and returns f.
func (f *Form) SetScalar(d float64) *Form {
	switch {
	case math.IsNaN(d):
		f.degenerate(Whole, 0)
	case math.IsInf(d, 1):
		f.degenerate(RightUnbounded, d)
	case math.IsInf(d, -1):
		f.degenerate(LeftUnbounded, d)
	default:
		f.resize(0)
		f.val[0] = d
		f.err = 0
	}

	return f
}

// SetInterval assigns x (see NewInterval) and returns f.
func (f *Form) SetInterval(x interval.Interval) *Form {
	switch {
	case x.IsEmpty():
		f.degenerate(Empty, 0)
	case x.IsEntire():
		f.degenerate(Whole, 0)
	case math.IsInf(x.Hi(), 1):
		f.degenerate(RightUnbounded, x.Lo())
	case math.IsInf(x.Lo(), -1):
		f.degenerate(LeftUnbounded, x.Hi())
	default:
		f.resize(0)
		f.val[0] = x.Mid()
		f.err = x.Rad()
		// Rad overflows for bounds near ±MaxFloat64.
		f.collapse()
	}

	return f
}

// resize makes f active with exactly n+1 coefficients, reallocating only
// when the size changes. Contents are unspecified afterwards.
func (f *Form) resize(n int) {
	if f.val == nil || len(f.val) != n+1 {
		f.val = make([]float64, n+1)
	}
	f.kind = Active
}

// degenerate moves f to a non-active kind and releases its coefficients.
func (f *Form) degenerate(k Kind, threshold float64) {
	f.kind = k
	f.val = nil
	f.err = threshold
}

// ---------- Accessors ----------

// Kind returns the state tag of f.
func (f *Form) Kind() Kind { return f.kind }

// IsActive reports whether f carries coefficients.
func (f *Form) IsActive() bool { return f.kind == Active }

// Dim returns the number of noise symbols of an active form, or the legacy
// negative sentinel of a degenerate one (see Kind.Sentinel).
func (f *Form) Dim() int {
	if f.kind == Active {
		return len(f.val) - 1
	}

	return f.kind.Sentinel()
}

// Val returns coefficient i (0 is the center).
//
// Panics when f is not active or i is outside [0, Dim()].
func (f *Form) Val(i int) float64 {
	if f.kind != Active || i < 0 || i >= len(f.val) {
		panic(panicIndexOutOfRange)
	}

	return f.val[i]
}

// At is the checked variant of Val.
func (f *Form) At(i int) (float64, error) {
	if f.kind != Active {
		return 0, ErrInactive
	}
	if i < 0 || i >= len(f.val) {
		return 0, ErrIndexOutOfRange
	}

	return f.val[i], nil
}

// Coefficients returns a copy of the coefficients (nil when not active).
func (f *Form) Coefficients() []float64 {
	if f.kind != Active {
		return nil
	}
	out := make([]float64, len(f.val))
	copy(out, f.val)

	return out
}

// Err returns the error radius of an active form, the threshold of a
// half-line, and 0 for Empty and Whole.
func (f *Form) Err() float64 { return f.err }

// Mid returns the center of an active form, otherwise Itv().Mid().
func (f *Form) Mid() float64 {
	if f.kind == Active {
		return f.val[0]
	}

	return f.Itv().Mid()
}

// Itv returns a sound interval enclosure of f:
//
//	Active          [x₀ - r, x₀ + r],  r = Σ|xᵢ| + e rounded upward
//	Empty           ∅
//	Whole           [-∞, +∞]
//	RightUnbounded  [t, +∞]
//	LeftUnbounded   [-∞, t]
func (f *Form) Itv() interval.Interval {
	switch f.kind {
	case Active:
		r := f.err
		for i := 1; i < len(f.val); i++ {
			r = rounding.AddUp(r, math.Abs(f.val[i]))
		}

		return interval.New(rounding.SubDown(f.val[0], r), rounding.AddUp(f.val[0], r))
	case Empty:
		return interval.Empty()
	case RightUnbounded:
		return interval.New(f.err, math.Inf(1))
	case LeftUnbounded:
		return interval.New(math.Inf(-1), f.err)
	}

	return interval.Entire()
}

// String renders an active form as "x₀ + x₁·ε1 + … ± e" and a degenerate
// one as its kind followed by its enclosure.
func (f *Form) String() string {
	if f.kind != Active {
		return fmt.Sprintf("%s %v", f.kind, f.Itv())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%g", f.val[0])
	for i := 1; i < len(f.val); i++ {
		fmt.Fprintf(&b, " + %g·ε%d", f.val[i], i)
	}
	fmt.Fprintf(&b, " ± %g", f.err)

	return b.String()
}

// collapse enforces the finiteness invariant: an active form with any
// non-finite coefficient or error radius becomes Whole.
func (f *Form) collapse() *Form {
	if f.kind != Active {
		return f
	}
	ok := rounding.IsFinite(f.err)
	for _, v := range f.val {
		ok = ok && rounding.IsFinite(v)
	}
	if !ok {
		f.degenerate(Whole, 0)
	}

	return f
}
