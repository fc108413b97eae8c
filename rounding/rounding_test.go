// SPDX-License-Identifier: MIT
package rounding_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affine2/rounding"
)

func TestUpDown_Neighbors(t *testing.T) {
	cases := []float64{0, 1, -1, 0.1, 1e300, -1e-300, math.SmallestNonzeroFloat64}
	for _, x := range cases {
		assert.Greater(t, rounding.Up(x), x, "Up(%v)", x)
		assert.Less(t, rounding.Down(x), x, "Down(%v)", x)
	}
	assert.True(t, math.IsInf(rounding.Up(math.Inf(1)), 1))
	assert.True(t, math.IsInf(rounding.Down(math.Inf(-1)), -1))
	assert.True(t, math.IsNaN(rounding.Up(math.NaN())))
}

func TestMulUpDown_ZeroConvention(t *testing.T) {
	inf := math.Inf(1)
	assert.Equal(t, 0.0, rounding.MulUp(0, inf))
	assert.Equal(t, 0.0, rounding.MulDown(-inf, 0))
	assert.True(t, math.IsInf(rounding.MulUp(2, inf), 1))
}

func TestDirected_ExactResultsStayExact(t *testing.T) {
	assert.Equal(t, 3.0, rounding.AddUp(1, 2))
	assert.Equal(t, 3.0, rounding.AddDown(1, 2))
	assert.Equal(t, 2.0, rounding.SubDown(3, 1))
	assert.Equal(t, 6.0, rounding.MulUp(2, 3))
	assert.Equal(t, -6.0, rounding.MulDown(-2, 3))

	// 0.1 + 0.2 is inexact: the bounds must straddle it.
	assert.Less(t, rounding.AddDown(0.1, 0.2), rounding.AddUp(0.1, 0.2))
	assert.Less(t, rounding.MulDown(0.1, 3), rounding.MulUp(0.1, 3))
}

func TestDirected_OverflowOnTheSafeSide(t *testing.T) {
	mx := math.MaxFloat64
	assert.Equal(t, mx, rounding.AddDown(mx, mx))
	assert.True(t, math.IsInf(rounding.AddUp(mx, mx), 1))
	assert.Equal(t, -mx, rounding.AddUp(-mx, -mx))
	assert.Equal(t, mx, rounding.MulDown(mx, 2))
	assert.Equal(t, -mx, rounding.MulUp(-mx, 2))
}

func TestErr(t *testing.T) {
	// ulp(1) above is 2^-52, below is 2^-53: the larger is kept.
	assert.Equal(t, math.Ldexp(1, -52), rounding.Err(1))
	assert.Equal(t, math.SmallestNonzeroFloat64, rounding.Err(0))
	assert.True(t, math.IsInf(rounding.Err(math.MaxFloat64), 1))
	assert.True(t, math.IsInf(rounding.Err(math.NaN()), 1))
}

// TestDirected_AgainstBigFloat checks that the directed helpers bracket the
// exact result computed in 200-bit precision.
func TestDirected_AgainstBigFloat(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	exact := func(a, b float64, op byte) *big.Float {
		x := new(big.Float).SetPrec(200).SetFloat64(a)
		y := new(big.Float).SetPrec(200).SetFloat64(b)
		z := new(big.Float).SetPrec(200)
		switch op {
		case '+':
			return z.Add(x, y)
		case '-':
			return z.Sub(x, y)
		default:
			return z.Mul(x, y)
		}
	}
	for i := 0; i < 2000; i++ {
		a := (rng.Float64() - 0.5) * math.Pow(10, float64(rng.Intn(20)-10))
		b := (rng.Float64() - 0.5) * math.Pow(10, float64(rng.Intn(20)-10))

		e := exact(a, b, '+')
		require.LessOrEqual(t, big.NewFloat(rounding.AddDown(a, b)).Cmp(e), 0)
		require.GreaterOrEqual(t, big.NewFloat(rounding.AddUp(a, b)).Cmp(e), 0)

		e = exact(a, b, '-')
		require.LessOrEqual(t, big.NewFloat(rounding.SubDown(a, b)).Cmp(e), 0)
		require.GreaterOrEqual(t, big.NewFloat(rounding.SubUp(a, b)).Cmp(e), 0)

		e = exact(a, b, '*')
		require.LessOrEqual(t, big.NewFloat(rounding.MulDown(a, b)).Cmp(e), 0)
		require.GreaterOrEqual(t, big.NewFloat(rounding.MulUp(a, b)).Cmp(e), 0)
	}
}

func TestSlop_BoundsActualError(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var s rounding.Slop
	exactErr := new(big.Float).SetPrec(300)
	for i := 0; i < 500; i++ {
		a, b := rng.NormFloat64()*1e3, rng.NormFloat64()
		p := s.Track(rounding.Mul(a, b))

		x := new(big.Float).SetPrec(300).SetFloat64(a)
		x.Mul(x, new(big.Float).SetFloat64(b))
		x.Sub(x, new(big.Float).SetFloat64(p))
		exactErr.Add(exactErr, x.Abs(x))
	}
	require.GreaterOrEqual(t, big.NewFloat(s.Total()).Cmp(exactErr), 0)

	s.Reset()
	assert.Zero(t, s.Total())
	s.Add(-2)
	assert.GreaterOrEqual(t, s.Total(), 2.0)
}
