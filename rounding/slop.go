// SPDX-License-Identifier: MIT

package rounding

// Slop accumulates certified rounding-error bounds. Every addition to the
// running total is rounded upward, so Total never underestimates the sum of
// the tracked bounds. The zero value is ready to use.
//
// Slop is scoped to a single operation: create one, track every rounded
// intermediate of that operation, read Total, discard.
type Slop struct {
	total float64
}

// Track charges the rounding error of x (see Err) and returns x unchanged,
// so it can wrap the expression that produced x.
func (s *Slop) Track(x float64) float64 {
	s.total = AddUp(s.total, Err(x))

	return x
}

// Add charges an arbitrary non-negative bound e.
func (s *Slop) Add(e float64) {
	if e < 0 {
		e = -e
	}
	s.total = AddUp(s.total, e)
}

// Total returns the accumulated bound.
func (s *Slop) Total() float64 { return s.total }

// Reset clears the accumulator.
func (s *Slop) Reset() { s.total = 0 }
