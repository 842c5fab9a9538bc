// SPDX-License-Identifier: MIT

package uncertainty

import "math"

// Uncertainty computes the one-sigma uncertainty of an observable from its
// per-member values. It is UncertaintyCL(values, CL1Sigma).
func (s *Set) Uncertainty(values []float64) (Result, error) {
	return s.UncertaintyCL(values, CL1Sigma)
}

// UncertaintyCL computes the uncertainty of an observable at the requested
// confidence level cl (percent, in (0,100]).
//
// Implementation:
//   - Stage 1: validate len(values) == Size() and cl.
//   - Stage 2: compute the PDF-only component by error family:
//     Hessian pairs (asymmetric Watt formula), symmetric displacements,
//     or replica statistics (Gaussian or percentile interval).
//   - Stage 3: fold in the alphaS pair in quadrature when present.
//
// Behavior highlights:
//   - Hessian errors are rescaled from the set's native level by
//     z(cl)/z(native); Scale is exactly 1 when the levels are equal.
//   - Percentile replicas report Scale as the ratio of the requested
//     bracket width to the one-sigma bracket width.
//   - ErrPlus and ErrMinus are never negative.
//
// Errors:
//   - ErrInputLengthMismatch when len(values) != Size().
//   - ErrInvalidConfiguration when cl is outside (0,100], or when a Gaussian
//     rescaling would involve a level of exactly 100.
//
// Complexity:
//   - Time O(N) (O(N log N) for percentile replicas), Space O(1) (O(N) for replicas).
func (s *Set) UncertaintyCL(values []float64, cl float64) (Result, error) {
	if err := s.checkLen(opUncertainty, values); err != nil {
		return Result{}, err
	}
	if err := validateConfLevel(cl); err != nil {
		return Result{}, engineErrorf(opUncertainty, err, "requested level %g", cl)
	}

	var (
		r   Result
		err error
	)
	switch s.cfg.ErrorType.Family() {
	case FamilyHessian:
		r, err = s.hessianPDF(values, cl)
	case FamilySymmHessian:
		r, err = s.symmHessianPDF(values, cl)
	case FamilyReplicas:
		r, err = s.replicasPDF(values, cl)
	default:
		err = ErrInvalidConfiguration
	}
	if err != nil {
		return Result{}, engineErrorf(opUncertainty, err, "%s at %g%%", s.cfg.ErrorType, cl)
	}

	return s.combineAlphaS(values, r), nil
}

// hessianPDF applies the asymmetric pair formula to members 1..npdf.
// For each pair the larger upward (downward) shift feeds errplus (errminus).
func (s *Set) hessianPDF(values []float64, cl float64) (Result, error) {
	scale, err := gaussianScale(cl, s.native)
	if err != nil {
		return Result{}, err
	}

	c := values[0]
	var up, dn, dPlus, dMinus float64
	for k := 1; k <= s.layout.neigen; k++ {
		dPlus = values[2*k-1] - c
		dMinus = values[2*k] - c
		if u := math.Max(math.Max(dPlus, dMinus), 0); u > 0 {
			up += u * u
		}
		if d := math.Max(math.Max(-dPlus, -dMinus), 0); d > 0 {
			dn += d * d
		}
	}

	plus := scale * math.Sqrt(up)
	minus := scale * math.Sqrt(dn)

	return Result{
		Central:     c,
		Scale:       scale,
		ErrPlusPDF:  plus,
		ErrMinusPDF: minus,
		ErrSymmPDF:  (plus + minus) / 2,
	}, nil
}

// symmHessianPDF sums squared displacements of members 1..npdf.
func (s *Set) symmHessianPDF(values []float64, cl float64) (Result, error) {
	scale, err := gaussianScale(cl, s.native)
	if err != nil {
		return Result{}, err
	}

	c := values[0]
	var sum, d float64
	for i := 1; i <= s.layout.npdf; i++ {
		d = values[i] - c
		sum += d * d
	}
	e := scale * math.Sqrt(sum)

	return Result{Central: c, Scale: scale, ErrPlusPDF: e, ErrMinusPDF: e, ErrSymmPDF: e}, nil
}

// replicasPDF computes replica statistics over members 1..npdf.
func (s *Set) replicasPDF(values []float64, cl float64) (Result, error) {
	reps := values[1 : 1+s.layout.npdf]

	if s.cfg.Interval == IntervalPercentile {
		sorted := sortedCopy(reps)
		median := quantile(sorted, 0.5)
		lo, hi := percentileBracket(sorted, cl)

		scale := 1.0
		if lo1, hi1 := percentileBracket(sorted, CL1Sigma); hi1 > lo1 {
			scale = (hi - lo) / (hi1 - lo1)
		}
		plus, minus := hi-median, median-lo

		return Result{
			Central:     median,
			Scale:       scale,
			ErrPlusPDF:  plus,
			ErrMinusPDF: minus,
			ErrSymmPDF:  (plus + minus) / 2,
		}, nil
	}

	scale, err := gaussianScale(cl, CL1Sigma)
	if err != nil {
		return Result{}, err
	}
	mean, sd := meanStdDev(reps)

	var central float64
	switch s.cfg.Central {
	case CentralAuto, CentralMean:
		central = mean
	case CentralMember0:
		central = values[0]
	case CentralMedian:
		central = quantile(sortedCopy(reps), 0.5)
	}
	e := scale * sd

	return Result{Central: central, Scale: scale, ErrPlusPDF: e, ErrMinusPDF: e, ErrSymmPDF: e}, nil
}

// combineAlphaS fills the totals: the PDF component alone, or the PDF and
// alphaS components added in quadrature. The alphaS half-difference is taken
// at the same level as the PDF errors, so it carries the same Scale.
func (s *Set) combineAlphaS(values []float64, r Result) Result {
	if s.layout.asLo < 0 {
		r.ErrPlus, r.ErrMinus, r.ErrSymm = r.ErrPlusPDF, r.ErrMinusPDF, r.ErrSymmPDF
		return r
	}

	r.ErrAlphaS = r.Scale * math.Abs(values[s.layout.asLo]-values[s.layout.asHi]) / 2
	r.ErrPlus = math.Hypot(r.ErrPlusPDF, r.ErrAlphaS)
	r.ErrMinus = math.Hypot(r.ErrMinusPDF, r.ErrAlphaS)
	r.ErrSymm = math.Hypot(r.ErrSymmPDF, r.ErrAlphaS)

	return r
}

// meanStdDev returns the mean and the sample standard deviation (n−1).
// Callers guarantee len(x) ≥ 2.
func meanStdDev(x []float64) (mean, sd float64) {
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	var ss, d float64
	for _, v := range x {
		d = v - mean
		ss += d * d
	}

	return mean, math.Sqrt(ss / float64(len(x)-1))
}
