// SPDX-License-Identifier: MIT
package affine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affine2/affine"
	"github.com/katalvlaran/affine2/interval"
)

const tightDelta = 1e-12

// TestAdd_SameSymbol checks that X + X keeps the dependency: [4, 8], not a
// widened interval sum.
func TestAdd_SameSymbol(t *testing.T) {
	x := affine.NewSymbol(1, 1, interval.New(2, 4))
	x.Add(x)

	require.True(t, x.IsActive())
	assert.Equal(t, []float64{6, 2}, x.Coefficients())
	got := x.Itv()
	assert.LessOrEqual(t, got.Lo(), 4.0)
	assert.GreaterOrEqual(t, got.Hi(), 8.0)
	assert.InDelta(t, 4, got.Lo(), tightDelta)
	assert.InDelta(t, 8, got.Hi(), tightDelta)
}

func TestSub_SameSymbolCancels(t *testing.T) {
	x := affine.NewSymbol(1, 1, interval.New(2, 4))
	d := affine.Diff(x, x)

	got := d.Itv()
	assert.True(t, got.Contains(0))
	assert.LessOrEqual(t, got.Mag(), tightDelta)

	// the plain interval difference cannot see the correlation
	assert.True(t, interval.New(-2, 2).Equal(x.Itv().Sub(x.Itv())))
}

func TestMulScalar(t *testing.T) {
	t.Run("overflow collapses to whole", func(t *testing.T) {
		f := affine.NewInterval(interval.New(1, 3)).MulScalar(1e308)
		assert.Equal(t, affine.Whole, f.Kind())
		assert.Nil(t, f.Coefficients())
	})
	t.Run("zero is exact", func(t *testing.T) {
		f := affine.NewSymbol(2, 1, interval.New(0.1, 0.7)).AddError(0.25).MulScalar(0)
		assert.Equal(t, []float64{0, 0, 0}, f.Coefficients())
		assert.Zero(t, f.Err())
		assert.True(t, f.Itv().Equal(interval.Point(0)))
	})
	t.Run("negative factor", func(t *testing.T) {
		f := affine.Scale(affine.NewSymbol(1, 1, interval.New(2, 4)), -2)
		assert.Equal(t, []float64{-6, -2}, f.Coefficients())
		assert.True(t, interval.New(-8, -4).IsSubset(f.Itv()))
	})
	t.Run("infinite factor falls back", func(t *testing.T) {
		// an infinite scalar is the empty set under interval semantics
		f := affine.NewInterval(interval.New(1, 3)).MulScalar(math.Inf(1))
		assert.Equal(t, affine.Empty, f.Kind())
	})
}

func TestAddScalarAndError(t *testing.T) {
	f := affine.NewSymbol(1, 1, interval.New(2, 4)).AddScalar(0.5)
	assert.Equal(t, 3.5, f.Val(0))
	assert.True(t, interval.New(2.5, 4.5).IsSubset(f.Itv()))

	f.SubScalar(0.5).AddError(-0.25)
	assert.Equal(t, 3.0, f.Val(0))
	assert.GreaterOrEqual(t, f.Err(), 0.25)
	assert.InDelta(t, 0.25, f.Err(), tightDelta)

	assert.Equal(t, affine.Whole, f.Clone().AddError(math.Inf(1)).Kind())
	assert.Equal(t, affine.Empty, f.Clone().AddScalar(math.Inf(-1)).Kind())
}

func TestAddInterval(t *testing.T) {
	f := affine.NewSymbol(1, 1, interval.New(2, 4)).AddInterval(interval.New(-1, 1))
	assert.Equal(t, []float64{3, 1}, f.Coefficients())
	assert.GreaterOrEqual(t, f.Err(), 1.0)
	assert.InDelta(t, 1, f.Err(), tightDelta)

	f.AddInterval(interval.New(0, math.Inf(1)))
	assert.Equal(t, affine.RightUnbounded, f.Kind())
	assert.LessOrEqual(t, f.Err(), 1.0)
	assert.InDelta(t, 1, f.Err(), tightDelta)
}

func TestSaxpy_AllSteps(t *testing.T) {
	x := affine.NewSymbol(1, 1, interval.New(2, 4)) // 3 + ε1
	y := affine.NewSymbol(1, 1, interval.New(0, 2)) // 1 + ε1

	all := affine.ScaleStep | affine.AddFormStep | affine.AddConstStep | affine.AddErrorStep
	x.Saxpy(2, y, 1, 0.25, all)

	// 2(3+ε1) + (1+ε1) + 1 ± 0.25 = 8 + 3ε1 ± 0.25
	assert.Equal(t, []float64{8, 3}, x.Coefficients())
	got := x.Itv()
	assert.InDelta(t, 4.75, got.Lo(), tightDelta)
	assert.InDelta(t, 11.25, got.Hi(), tightDelta)
	assert.True(t, interval.New(4.75, 11.25).IsSubset(got))

	// y is never modified
	assert.Equal(t, []float64{1, 1}, y.Coefficients())
}

func TestSaxpy_Aliasing(t *testing.T) {
	x := affine.NewSymbol(1, 1, interval.New(2, 4))
	x.Saxpy(2, x, 0, 0, affine.ScaleStep|affine.AddFormStep)
	assert.Equal(t, []float64{9, 3}, x.Coefficients())
}

func TestSaxpy_NilOperandPanics(t *testing.T) {
	x := affine.NewScalar(1)
	assert.Panics(t, func() { x.Saxpy(1, nil, 0, 0, affine.AddFormStep) })
	assert.NotPanics(t, func() { x.Saxpy(2, nil, 1, 0, affine.ScaleStep|affine.AddConstStep) })
	assert.Equal(t, 3.0, x.Val(0))
}

// TestAdd_DimensionMismatch widens the shorter operand to its enclosure and
// keeps the longer operand's dimension, in either order.
func TestAdd_DimensionMismatch(t *testing.T) {
	long := affine.NewSymbol(2, 1, interval.New(0, 2))  // 1 + ε1
	short := affine.NewSymbol(1, 1, interval.New(0, 1)) // 0.5 + 0.5ε1

	a := affine.Sum(long, short)
	b := affine.Sum(short, long)
	for _, f := range []*affine.Form{a, b} {
		require.Equal(t, 2, f.Dim())
		assert.Equal(t, []float64{1.5, 1, 0}, f.Coefficients())
		assert.InDelta(t, 0.5, f.Err(), tightDelta)
		assert.True(t, interval.New(0, 3).IsSubset(f.Itv()))
	}
}

func TestDegenerateOperands(t *testing.T) {
	active := affine.NewSymbol(1, 1, interval.New(2, 4))
	whole := affine.NewInterval(interval.Entire())
	empty := affine.NewInterval(interval.Empty())
	right := affine.NewInterval(interval.New(1, math.Inf(1)))

	tests := []struct {
		name string
		got  *affine.Form
		kind affine.Kind
		err  float64
	}{
		{"whole+active", affine.Sum(whole, active), affine.Whole, 0},
		{"active+whole", affine.Sum(active, whole), affine.Whole, 0},
		{"empty+active", affine.Sum(empty, active), affine.Empty, 0},
		{"active-empty", affine.Diff(active, empty), affine.Empty, 0},
		{"right+2", affine.Sum(right, affine.NewScalar(2)), affine.RightUnbounded, 3},
		{"right+active", affine.Sum(right, active), affine.RightUnbounded, 3},
		{"-right", affine.Negate(right), affine.LeftUnbounded, -1},
		{"right*-1", affine.Scale(right, -1), affine.LeftUnbounded, -1},
		{"empty*0", affine.Scale(empty, 0), affine.Empty, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.got.Kind())
			assert.Equal(t, tc.err, tc.got.Err())
			assert.Nil(t, tc.got.Coefficients())
		})
	}
}

// TestNaNOperands_Whole: a NaN scalar says nothing about the value, so the
// result is the whole line, never the empty set.
func TestNaNOperands_Whole(t *testing.T) {
	nan := math.NaN()
	x := func() *affine.Form { return affine.NewSymbol(1, 1, interval.New(2, 4)) }
	y := affine.NewSymbol(1, 1, interval.New(0, 2))
	all := affine.ScaleStep | affine.AddFormStep | affine.AddConstStep | affine.AddErrorStep

	tests := []struct {
		name string
		got  *affine.Form
	}{
		{"AddScalar", x().AddScalar(nan)},
		{"SubScalar", x().SubScalar(nan)},
		{"MulScalar", x().MulScalar(nan)},
		{"AddError", x().AddError(nan)},
		{"Saxpy alpha", x().Saxpy(nan, y, 1, 0.25, all)},
		{"Saxpy beta", x().Saxpy(2, y, nan, 0.25, all)},
		{"Saxpy delta", x().Saxpy(2, y, 1, nan, all)},
		{"half-line", affine.NewInterval(interval.New(1, math.Inf(1))).AddScalar(nan)},
		{"whole", new(affine.Form).MulScalar(nan)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, affine.Whole, tc.got.Kind())
			assert.True(t, tc.got.Itv().IsEntire())
			assert.Nil(t, tc.got.Coefficients())
		})
	}

	assert.Equal(t, affine.Empty, affine.NewInterval(interval.Empty()).AddError(nan).Kind())
}

func TestNeg_Exact(t *testing.T) {
	x := affine.NewSymbol(2, 2, interval.New(0.1, 0.7)).AddError(1e-3)
	n := affine.Negate(x)
	for i := 0; i <= 2; i++ {
		assert.Equal(t, -x.Val(i), n.Val(i))
	}
	assert.Equal(t, x.Err(), n.Err())
	assert.Equal(t, x.Coefficients(), n.Neg().Coefficients())
}
