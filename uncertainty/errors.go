// SPDX-License-Identifier: MIT

package uncertainty

import (
	"errors"
	"fmt"
)

// Sentinel errors. Operations wrap them with the operation name and detail;
// callers match with errors.Is.
var (
	// ErrInputLengthMismatch is returned when a member sample does not have
	// exactly Size() values, or a random vector does not have NumEigen() values.
	ErrInputLengthMismatch = errors.New("uncertainty: input length mismatch")

	// ErrInvalidMemberCount is returned when the member count cannot be split
	// into the layout the error type requires (odd Hessian count, missing
	// alphaS pair, too few replicas).
	ErrInvalidMemberCount = errors.New("uncertainty: invalid member count")

	// ErrUndefinedCorrelation is returned when either operand has a zero
	// symmetric error.
	ErrUndefinedCorrelation = errors.New("uncertainty: correlation undefined for zero uncertainty")

	// ErrInvalidConfiguration is returned for unknown error types, confidence
	// levels outside (0,100] and unsupported policy combinations.
	ErrInvalidConfiguration = errors.New("uncertainty: invalid configuration")
)

// Operation names used as wrapping tags.
const (
	opNewSet            = "NewSet"
	opUncertainty       = "Uncertainty"
	opCorrelation       = "Correlation"
	opCorrelationMatrix = "CorrelationMatrix"
	opRandomValue       = "RandomValueFromHessian"
	opHessianToReplicas = "HessianToReplicas"
	opParseErrorType    = "ParseErrorType"
)

// engineErrorf tags err with op and a formatted detail, keeping err matchable.
func engineErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}
