// SPDX-License-Identifier: MIT
package affine_test

import (
	"math"
	"math/big"
	"math/rand"

	"github.com/katalvlaran/affine2/interval"
)

// defaultRNGSeed is used when a test passes seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 selects defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveRNG returns an independent stream for worker stream, consuming one
// value from base. base must not be shared across goroutines.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	// SplitMix64 finalizer
	x := uint64(base.Int63()) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return rand.New(rand.NewSource(int64(x)))
}

// uniformIn draws from [lo, hi] and returns an endpoint one time in four,
// since enclosures are tightest there.
func uniformIn(rng *rand.Rand, lo, hi float64) float64 {
	switch rng.Intn(8) {
	case 0:
		return lo
	case 1:
		return hi
	}
	v := lo + rng.Float64()*(hi-lo)

	return math.Min(math.Max(v, lo), hi)
}

// ratOf returns the exact value of a finite float64.
func ratOf(x float64) *big.Rat { return new(big.Rat).SetFloat64(x) }

// encloses reports whether the exact value v lies in x. Infinite bounds are
// always satisfied.
func encloses(x interval.Interval, v *big.Rat) bool {
	if x.IsEmpty() {
		return false
	}
	if !math.IsInf(x.Lo(), -1) && ratOf(x.Lo()).Cmp(v) > 0 {
		return false
	}
	if !math.IsInf(x.Hi(), 1) && ratOf(x.Hi()).Cmp(v) < 0 {
		return false
	}

	return true
}

// affineAt returns c₀ + c₁·u exactly.
func affineAt(c0, c1, u float64) *big.Rat {
	v := new(big.Rat).Mul(ratOf(c1), ratOf(u))

	return v.Add(v, ratOf(c0))
}
