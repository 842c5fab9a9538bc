// SPDX-License-Identifier: MIT

package uncertainty

import "math"

// layout is the member bookkeeping derived once per Set.
//
//	index:  0 | 1 … npdf        | npdf+1  npdf+2
//	        c | error members   | alphaS pair (only when +as)
type layout struct {
	nmem   int // error members including the alphaS pair (size-1)
	npdf   int // PDF error members (nmem, or nmem-2 with +as)
	neigen int // eigenvector directions (npdf/2 hessian, npdf symmhessian, 0 replicas)
	asLo   int // index of the first alphaS member, -1 without +as
	asHi   int // index of the second alphaS member, -1 without +as
}

// deriveLayout splits size members according to et.
// This is the only place where the N versus N−2 alphaS exclusion happens.
func deriveLayout(et ErrorType, size int) (layout, error) {
	if size < 1 {
		return layout{}, engineErrorf(opNewSet, ErrInvalidMemberCount, "size %d < 1", size)
	}

	l := layout{nmem: size - 1, npdf: size - 1, asLo: -1, asHi: -1}
	if et.HasAlphaS() {
		if l.nmem < 2 {
			return layout{}, engineErrorf(opNewSet, ErrInvalidMemberCount,
				"%s needs 2 alphaS members, set has %d error members", et, l.nmem)
		}
		l.npdf = l.nmem - 2
		l.asLo, l.asHi = size-2, size-1
	}

	switch et.Family() {
	case FamilyHessian:
		if l.npdf%2 != 0 {
			return layout{}, engineErrorf(opNewSet, ErrInvalidMemberCount,
				"%s needs an even number of PDF error members, got %d", et, l.npdf)
		}
		l.neigen = l.npdf / 2
	case FamilySymmHessian:
		l.neigen = l.npdf
	case FamilyReplicas:
		if l.npdf < 2 {
			return layout{}, engineErrorf(opNewSet, ErrInvalidMemberCount,
				"%s needs at least 2 replicas, got %d", et, l.npdf)
		}
	default:
		return layout{}, engineErrorf(opNewSet, ErrInvalidConfiguration, "unknown error type %d", int(et))
	}

	return l, nil
}

// Set is an immutable handle binding a member count to a Config.
// All methods are safe for concurrent use.
type Set struct {
	size   int
	cfg    Config
	layout layout
	native float64 // resolved native confidence level
}

// NewSet validates cfg against size and returns a bound Set.
//
// Errors:
//   - ErrInvalidConfiguration — unknown error type, ConfLevel outside (0,100],
//     a Hessian native level of 100, unknown replica policy, or a percentile
//     interval with a mean/member0 central.
//   - ErrInvalidMemberCount — size < 1, missing alphaS pair, odd Hessian
//     member count, fewer than two replicas.
func NewSet(size int, cfg Config) (*Set, error) {
	if !cfg.ErrorType.Valid() {
		return nil, engineErrorf(opNewSet, ErrInvalidConfiguration, "unknown error type %d", int(cfg.ErrorType))
	}

	native := cfg.ConfLevel
	if native == 0 {
		native = CL1Sigma
	}
	if err := validateConfLevel(native); err != nil {
		return nil, engineErrorf(opNewSet, err, "native level %g", native)
	}

	switch cfg.Interval {
	case IntervalGaussian:
	case IntervalPercentile:
		if cfg.Central == CentralMean || cfg.Central == CentralMember0 {
			return nil, engineErrorf(opNewSet, ErrInvalidConfiguration,
				"percentile interval brackets the median, central %s is not allowed", cfg.Central)
		}
	default:
		return nil, engineErrorf(opNewSet, ErrInvalidConfiguration, "unknown replica interval %d", int(cfg.Interval))
	}
	if cfg.Central < CentralAuto || cfg.Central > CentralMedian {
		return nil, engineErrorf(opNewSet, ErrInvalidConfiguration, "unknown replica central %d", int(cfg.Central))
	}

	l, err := deriveLayout(cfg.ErrorType, size)
	if err != nil {
		return nil, err
	}

	// Replica sets are one-sigma by construction.
	if cfg.ErrorType.Family() == FamilyReplicas {
		native = CL1Sigma
	}
	if native >= 100 {
		return nil, engineErrorf(opNewSet, ErrInvalidConfiguration,
			"%s native level %g has no finite Gaussian half-width", cfg.ErrorType, native)
	}

	return &Set{size: size, cfg: cfg, layout: l, native: native}, nil
}

// Size is the number of members including the central one.
func (s *Set) Size() int { return s.size }

// ErrorType returns the bound error type.
func (s *Set) ErrorType() ErrorType { return s.cfg.ErrorType }

// Config returns the bound configuration as given to NewSet.
func (s *Set) Config() Config { return s.cfg }

// ConfLevel is the resolved native confidence level in percent.
func (s *Set) ConfLevel() float64 { return s.native }

// NumErrorMembers is the number of PDF error members, excluding the central
// member and any alphaS pair.
func (s *Set) NumErrorMembers() int { return s.layout.npdf }

// NumEigen is the length random vectors must have for RandomValueFromHessian.
// It is zero for replica sets.
func (s *Set) NumEigen() int { return s.layout.neigen }

// checkLen guards every member-sample entry point.
func (s *Set) checkLen(op string, values []float64) error {
	if len(values) != s.size {
		return engineErrorf(op, ErrInputLengthMismatch, "got %d values, set size is %d", len(values), s.size)
	}

	return nil
}

// validateConfLevel accepts finite levels in (0,100].
func validateConfLevel(cl float64) error {
	if math.IsNaN(cl) || cl <= 0 || cl > 100 {
		return ErrInvalidConfiguration
	}

	return nil
}
