// SPDX-License-Identifier: MIT

package affine

import "errors"

// Sentinel errors returned by the checked accessors. Match with errors.Is.
// Arithmetic never returns errors: degradation is handled by fallback.
var (
	// ErrIndexOutOfRange indicates a coefficient index outside [0, Dim()].
	ErrIndexOutOfRange = errors.New("affine: coefficient index out of range")

	// ErrInactive indicates a coefficient was requested from a degenerate form.
	ErrInactive = errors.New("affine: form has no coefficients")
)

// Panic messages for contract violations (programmer errors).
const (
	panicIndexOutOfRange = "affine: Val: index out of range [0, Dim()] or form not active"
	panicSymbolInvalid   = "affine: NewSymbol: need 0 <= m <= n"
	panicNilOperand      = "affine: Saxpy: AddFormStep requires a non-nil operand"
)
