// SPDX-License-Identifier: MIT

package uncertainty

import (
	"math"
	"strings"
)

// ErrorType is the closed set of error conventions a PDF set may declare.
//
//   - Hessian           — eigenvector pairs (+,−) around the central member.
//   - SymmHessian       — one symmetric displacement per eigenvector.
//   - Replicas          — Monte-Carlo replicas of the PDF distribution.
//   - *AlphaS variants  — the same, with the last two members holding the
//     alphaS variations instead of PDF errors.
type ErrorType int

const (
	// Hessian pairs members (1,2), (3,4), … as (+,−) eigenvector displacements.
	Hessian ErrorType = iota + 1

	// SymmHessian treats every error member as a symmetric displacement.
	SymmHessian

	// Replicas treats error members as a Monte-Carlo sample.
	Replicas

	// HessianAlphaS is Hessian with a trailing alphaS pair ("hessian+as").
	HessianAlphaS

	// SymmHessianAlphaS is SymmHessian with a trailing alphaS pair ("symmhessian+as").
	SymmHessianAlphaS

	// ReplicasAlphaS is Replicas with a trailing alphaS pair ("replicas+as").
	ReplicasAlphaS
)

// Family groups error types that share an uncertainty formula.
type Family int

const (
	// FamilyHessian covers Hessian and HessianAlphaS.
	FamilyHessian Family = iota + 1
	// FamilySymmHessian covers SymmHessian and SymmHessianAlphaS.
	FamilySymmHessian
	// FamilyReplicas covers Replicas and ReplicasAlphaS.
	FamilyReplicas
)

// errorTypeTokens maps metadata tokens to error types.
var errorTypeTokens = map[string]ErrorType{
	"hessian":        Hessian,
	"symmhessian":    SymmHessian,
	"replicas":       Replicas,
	"hessian+as":     HessianAlphaS,
	"symmhessian+as": SymmHessianAlphaS,
	"replicas+as":    ReplicasAlphaS,
}

// ParseErrorType converts a metadata token such as "hessian" or "replicas+as"
// into an ErrorType. Matching ignores case and surrounding whitespace.
func ParseErrorType(s string) (ErrorType, error) {
	et, ok := errorTypeTokens[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, engineErrorf(opParseErrorType, ErrInvalidConfiguration, "unknown error type %q", s)
	}

	return et, nil
}

// String returns the metadata token of the error type.
func (e ErrorType) String() string {
	switch e {
	case Hessian:
		return "hessian"
	case SymmHessian:
		return "symmhessian"
	case Replicas:
		return "replicas"
	case HessianAlphaS:
		return "hessian+as"
	case SymmHessianAlphaS:
		return "symmhessian+as"
	case ReplicasAlphaS:
		return "replicas+as"
	default:
		return "unknown"
	}
}

// Valid reports whether e is one of the six declared error types.
func (e ErrorType) Valid() bool {
	return e >= Hessian && e <= ReplicasAlphaS
}

// HasAlphaS reports whether the last two members are alphaS variations.
func (e ErrorType) HasAlphaS() bool {
	switch e {
	case HessianAlphaS, SymmHessianAlphaS, ReplicasAlphaS:
		return true
	default:
		return false
	}
}

// Family returns the formula family of e, or 0 for an invalid value.
func (e ErrorType) Family() Family {
	switch e {
	case Hessian, HessianAlphaS:
		return FamilyHessian
	case SymmHessian, SymmHessianAlphaS:
		return FamilySymmHessian
	case Replicas, ReplicasAlphaS:
		return FamilyReplicas
	default:
		return 0
	}
}

// IsHessian reports whether e belongs to an eigenvector family.
func (e ErrorType) IsHessian() bool {
	f := e.Family()
	return f == FamilyHessian || f == FamilySymmHessian
}

// ReplicaCentral selects the central value reported for replica sets.
type ReplicaCentral int

const (
	// CentralAuto uses the mean for IntervalGaussian and the median for
	// IntervalPercentile.
	CentralAuto ReplicaCentral = iota
	// CentralMean reports the mean of the replicas.
	CentralMean
	// CentralMember0 reports the supplied values[0].
	CentralMember0
	// CentralMedian reports the median of the replicas.
	CentralMedian
)

// String returns the flag spelling of c.
func (c ReplicaCentral) String() string {
	switch c {
	case CentralAuto:
		return "auto"
	case CentralMean:
		return "mean"
	case CentralMember0:
		return "member0"
	case CentralMedian:
		return "median"
	default:
		return "unknown"
	}
}

// ReplicaInterval selects how replica uncertainties are bracketed.
type ReplicaInterval int

const (
	// IntervalGaussian reports the sample standard deviation rescaled by the
	// Gaussian z-ratio of the requested confidence level.
	IntervalGaussian ReplicaInterval = iota
	// IntervalPercentile reports the percentile bracket of the sorted replicas.
	IntervalPercentile
)

// String returns the flag spelling of i.
func (i ReplicaInterval) String() string {
	switch i {
	case IntervalGaussian:
		return "gaussian"
	case IntervalPercentile:
		return "percentile"
	default:
		return "unknown"
	}
}

// CL1Sigma is the one-sigma confidence level in percent, 100·erf(1/√2).
var CL1Sigma = 100 * math.Erf(1/math.Sqrt2)

// Config is the immutable configuration bound to a Set.
//
// Fields:
//   - ErrorType — required.
//   - ConfLevel — native confidence level of the Hessian error members, in
//     percent. Zero selects CL1Sigma. Replica sets are always one-sigma
//     natively and ignore it for scaling.
//   - Central   — replica central-value policy.
//   - Interval  — replica interval policy.
type Config struct {
	ErrorType ErrorType
	ConfLevel float64
	Central   ReplicaCentral
	Interval  ReplicaInterval
}

// Result is the uncertainty summary of one observable.
//
// For error types without alphaS members the PDF fields equal the totals and
// ErrAlphaS is zero. With alphaS members the totals are the quadrature sum
// of the PDF-only component and ErrAlphaS.
type Result struct {
	Central  float64 `json:"central"`
	ErrPlus  float64 `json:"errplus"`
	ErrMinus float64 `json:"errminus"`
	ErrSymm  float64 `json:"errsymm"`
	Scale    float64 `json:"scale"`

	ErrPlusPDF  float64 `json:"errplus_pdf"`
	ErrMinusPDF float64 `json:"errminus_pdf"`
	ErrSymmPDF  float64 `json:"errsymm_pdf"`
	ErrAlphaS   float64 `json:"err_as"`
}
