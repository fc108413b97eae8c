// SPDX-License-Identifier: MIT

package affine

// Kind tags the state of a Form. The zero value is Whole, so a zero Form is
// the (sound, uninformative) whole real line.
type Kind uint8

const (
	// Whole is the entire real line. No payload.
	Whole Kind = iota

	// Empty is the empty set. No payload.
	Empty

	// RightUnbounded is [t, +∞]; the threshold t is the payload.
	RightUnbounded

	// LeftUnbounded is [-∞, t]; the threshold t is the payload.
	LeftUnbounded

	// Active carries n+1 coefficients and an error radius.
	Active
)

// Sentinel returns the legacy integer code of a non-active kind
// (Empty -1, Whole -2, RightUnbounded -3, LeftUnbounded -4).
// Active has no fixed code; its dimension is returned by Form.Dim.
func (k Kind) Sentinel() int {
	switch k {
	case Empty:
		return -1
	case Whole:
		return -2
	case RightUnbounded:
		return -3
	case LeftUnbounded:
		return -4
	}

	return 0
}

func (k Kind) String() string {
	switch k {
	case Whole:
		return "Whole"
	case Empty:
		return "Empty"
	case RightUnbounded:
		return "RightUnbounded"
	case LeftUnbounded:
		return "LeftUnbounded"
	case Active:
		return "Active"
	}

	return "Kind(?)"
}

// Step selects the stages applied by Form.Saxpy. Stages always run in the
// order ScaleStep, AddFormStep, AddConstStep, AddErrorStep.
type Step uint8

const (
	// ScaleStep multiplies the receiver by alpha.
	ScaleStep Step = 1 << iota

	// AddFormStep adds the form y.
	AddFormStep

	// AddConstStep adds the constant beta.
	AddConstStep

	// AddErrorStep widens the error radius by |delta|.
	AddErrorStep
)

// Form is an affine form.
//
// Invariants:
//   - val != nil  ⇔  kind == Active, and then len(val) == Dim()+1 ≥ 1;
//   - for Active, every val[i] and err are finite and err ≥ 0;
//   - for RightUnbounded / LeftUnbounded, err holds the threshold. It is
//     finite except after NewScalar(±Inf), which stores ±Inf; that form's
//     Itv() is ∅, so it does not survive a round trip through NewInterval.
//
// The coefficient slice is owned exclusively by the Form: it is never shared
// with another Form or handed out to callers.
type Form struct {
	kind Kind
	val  []float64
	err  float64
}
