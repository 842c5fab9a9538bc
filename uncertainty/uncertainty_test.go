// SPDX-License-Identifier: MIT

package uncertainty_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdfunc/uncertainty"
)

const epsTight = 1e-12

// newSet builds a Set or fails the test.
func newSet(t *testing.T, size int, cfg uncertainty.Config) *uncertainty.Set {
	t.Helper()
	s, err := uncertainty.NewSet(size, cfg)
	require.NoError(t, err)

	return s
}

// assertQuadrature checks errsymm² = errsymm_pdf² + err_as² for +as results.
func assertQuadrature(t *testing.T, r uncertainty.Result) {
	t.Helper()
	lhs := r.ErrSymm * r.ErrSymm
	rhs := r.ErrSymmPDF*r.ErrSymmPDF + r.ErrAlphaS*r.ErrAlphaS
	tol := 1e-9 * lhs
	if lhs < 1e-300 {
		tol = 1e-15
	}
	assert.InDelta(t, lhs, rhs, tol, "quadrature identity")
}

func TestParseErrorType(t *testing.T) {
	t.Parallel()

	for _, et := range []uncertainty.ErrorType{
		uncertainty.Hessian, uncertainty.SymmHessian, uncertainty.Replicas,
		uncertainty.HessianAlphaS, uncertainty.SymmHessianAlphaS, uncertainty.ReplicasAlphaS,
	} {
		got, err := uncertainty.ParseErrorType(et.String())
		require.NoError(t, err)
		assert.Equal(t, et, got)
	}

	got, err := uncertainty.ParseErrorType("  SymmHessian+AS ")
	require.NoError(t, err)
	assert.Equal(t, uncertainty.SymmHessianAlphaS, got)
	assert.True(t, got.HasAlphaS())
	assert.Equal(t, uncertainty.FamilySymmHessian, got.Family())

	_, err = uncertainty.ParseErrorType("unc")
	assert.ErrorIs(t, err, uncertainty.ErrInvalidConfiguration)
	_, err = uncertainty.ParseErrorType("hessian+scale")
	assert.ErrorIs(t, err, uncertainty.ErrInvalidConfiguration)
}

func TestNewSet_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		size int
		cfg  uncertainty.Config
		want error
	}{
		{"zero size", 0, uncertainty.Config{ErrorType: uncertainty.Hessian}, uncertainty.ErrInvalidMemberCount},
		{"unknown type", 5, uncertainty.Config{}, uncertainty.ErrInvalidConfiguration},
		{"cl above 100", 5, uncertainty.Config{ErrorType: uncertainty.Hessian, ConfLevel: 120}, uncertainty.ErrInvalidConfiguration},
		{"negative cl", 5, uncertainty.Config{ErrorType: uncertainty.Hessian, ConfLevel: -5}, uncertainty.ErrInvalidConfiguration},
		{"hessian native 100", 5, uncertainty.Config{ErrorType: uncertainty.Hessian, ConfLevel: 100}, uncertainty.ErrInvalidConfiguration},
		{"symmhessian+as native 100", 5, uncertainty.Config{ErrorType: uncertainty.SymmHessianAlphaS, ConfLevel: 100}, uncertainty.ErrInvalidConfiguration},
		{"odd hessian", 4, uncertainty.Config{ErrorType: uncertainty.Hessian}, uncertainty.ErrInvalidMemberCount},
		{"odd hessian after alphaS", 6, uncertainty.Config{ErrorType: uncertainty.HessianAlphaS}, uncertainty.ErrInvalidMemberCount},
		{"missing alphaS pair", 2, uncertainty.Config{ErrorType: uncertainty.SymmHessianAlphaS}, uncertainty.ErrInvalidMemberCount},
		{"single replica", 2, uncertainty.Config{ErrorType: uncertainty.Replicas}, uncertainty.ErrInvalidMemberCount},
		{"percentile around mean", 6, uncertainty.Config{
			ErrorType: uncertainty.Replicas, Interval: uncertainty.IntervalPercentile, Central: uncertainty.CentralMean,
		}, uncertainty.ErrInvalidConfiguration},
		{"unknown interval", 6, uncertainty.Config{ErrorType: uncertainty.Replicas, Interval: 7}, uncertainty.ErrInvalidConfiguration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uncertainty.NewSet(tc.size, tc.cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewSet_Layout(t *testing.T) {
	t.Parallel()

	s := newSet(t, 7, uncertainty.Config{ErrorType: uncertainty.HessianAlphaS})
	assert.Equal(t, 7, s.Size())
	assert.Equal(t, 4, s.NumErrorMembers())
	assert.Equal(t, 2, s.NumEigen())
	assert.InDelta(t, 68.268949, s.ConfLevel(), 1e-6)

	s = newSet(t, 5, uncertainty.Config{ErrorType: uncertainty.SymmHessianAlphaS})
	assert.Equal(t, 2, s.NumEigen())

	s = newSet(t, 101, uncertainty.Config{ErrorType: uncertainty.Replicas, ConfLevel: 90})
	assert.Equal(t, 100, s.NumErrorMembers())
	assert.Equal(t, 0, s.NumEigen())
	assert.Equal(t, uncertainty.CL1Sigma, s.ConfLevel(), "replicas are one-sigma natively")

	// A set with only the central member has no errors at all.
	s = newSet(t, 1, uncertainty.Config{ErrorType: uncertainty.Hessian})
	r, err := s.Uncertainty([]float64{3})
	require.NoError(t, err)
	assert.Equal(t, uncertainty.Result{Central: 3, Scale: 1}, r)
}

func TestUncertainty_HessianScenario(t *testing.T) {
	t.Parallel()

	s := newSet(t, 5, uncertainty.Config{ErrorType: uncertainty.Hessian})
	r, err := s.Uncertainty([]float64{10.0, 11.0, 9.0, 10.5, 9.5})
	require.NoError(t, err)

	want := math.Sqrt(1 + 0.25)
	assert.Equal(t, 10.0, r.Central)
	assert.InDelta(t, want, r.ErrPlus, epsTight)
	assert.InDelta(t, want, r.ErrMinus, epsTight)
	assert.InDelta(t, want, r.ErrSymm, epsTight)
	assert.Equal(t, 1.0, r.Scale)
	assert.Equal(t, r.ErrSymm, r.ErrSymmPDF)
	assert.Zero(t, r.ErrAlphaS)
}

func TestUncertainty_HessianSymmetricPattern(t *testing.T) {
	t.Parallel()

	const c = 2.5
	d := []float64{0.1, 0.7, 0.03}
	values := []float64{c}
	for _, x := range d {
		values = append(values, c+x, c-x)
	}

	s := newSet(t, len(values), uncertainty.Config{ErrorType: uncertainty.Hessian})
	r, err := s.Uncertainty(values)
	require.NoError(t, err)
	// (c+x)−c and c−(c−x) may differ by an ulp, hence epsTight.
	assert.InDelta(t, r.ErrPlus, r.ErrMinus, epsTight)
	assert.InDelta(t, r.ErrPlus, r.ErrSymm, epsTight)

	// Dyadic displacements are exact.
	exact := newSet(t, 5, uncertainty.Config{ErrorType: uncertainty.Hessian})
	r, err = exact.Uncertainty([]float64{2.5, 3, 2, 2.75, 2.25})
	require.NoError(t, err)
	assert.Equal(t, r.ErrPlus, r.ErrMinus)
	assert.Equal(t, r.ErrPlus, r.ErrSymm)
}

func TestUncertainty_HessianAsymmetric(t *testing.T) {
	t.Parallel()

	// Pair 1 moves up on both members, pair 2 moves down on both.
	s := newSet(t, 5, uncertainty.Config{ErrorType: uncertainty.Hessian})
	r, err := s.Uncertainty([]float64{1, 1.3, 1.1, 0.6, 0.9})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, r.ErrPlus, epsTight)
	assert.InDelta(t, 0.4, r.ErrMinus, epsTight)
	assert.InDelta(t, 0.35, r.ErrSymm, epsTight)
	assert.GreaterOrEqual(t, r.ErrPlus, 0.0)
	assert.GreaterOrEqual(t, r.ErrMinus, 0.0)
}

func TestUncertainty_SymmHessianScenario(t *testing.T) {
	t.Parallel()

	s := newSet(t, 3, uncertainty.Config{ErrorType: uncertainty.SymmHessian})
	r, err := s.Uncertainty([]float64{5.0, 5.2, 4.7})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(0.2*0.2+0.3*0.3), r.ErrSymm, epsTight)
	assert.Equal(t, r.ErrSymm, r.ErrPlus)
	assert.Equal(t, r.ErrSymm, r.ErrMinus)
}

func TestUncertainty_LengthMismatch(t *testing.T) {
	t.Parallel()

	s := newSet(t, 5, uncertainty.Config{ErrorType: uncertainty.Hessian})
	_, err := s.Uncertainty([]float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, uncertainty.ErrInputLengthMismatch)
	_, err = s.Uncertainty(nil)
	assert.ErrorIs(t, err, uncertainty.ErrInputLengthMismatch)
}

func TestUncertainty_ConfidenceScaling(t *testing.T) {
	t.Parallel()

	values := []float64{10.0, 11.0, 9.0, 10.5, 9.5}
	s := newSet(t, 5, uncertainty.Config{ErrorType: uncertainty.Hessian, ConfLevel: 90})

	native, err := s.UncertaintyCL(values, 90)
	require.NoError(t, err)
	assert.Equal(t, 1.0, native.Scale, "requested == native must be exact")

	oneSigma, err := s.Uncertainty(values)
	require.NoError(t, err)
	assert.InDelta(t, 1/1.6448536269514722, oneSigma.Scale, 1e-9)
	assert.InDelta(t, native.ErrSymm*oneSigma.Scale, oneSigma.ErrSymm, epsTight)

	wider, err := newSet(t, 5, uncertainty.Config{ErrorType: uncertainty.Hessian}).UncertaintyCL(values, 90)
	require.NoError(t, err)
	assert.Greater(t, wider.Scale, 1.0)

	for _, cl := range []float64{0, -1, 100.5, math.NaN()} {
		_, err = s.UncertaintyCL(values, cl)
		assert.ErrorIs(t, err, uncertainty.ErrInvalidConfiguration, "cl=%v", cl)
	}
	_, err = s.UncertaintyCL(values, 100)
	assert.ErrorIs(t, err, uncertainty.ErrInvalidConfiguration, "Gaussian mapping is unbounded at 100%")
}

func TestNewSet_ReplicasIgnoreNativeLevel(t *testing.T) {
	t.Parallel()

	// Replicas are one-sigma by construction, so a declared 100 is harmless.
	s := newSet(t, 6, uncertainty.Config{ErrorType: uncertainty.Replicas, ConfLevel: 100})
	assert.Equal(t, uncertainty.CL1Sigma, s.ConfLevel())
	r, err := s.Uncertainty([]float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Scale)
}

func TestUncertainty_RoundedOneSigmaLevel(t *testing.T) {
	t.Parallel()

	// .info files write one sigma rounded to 68.268949.
	const rounded = 68.268949
	values := []float64{10.0, 11.0, 9.0, 10.5, 9.5}

	s := newSet(t, 5, uncertainty.Config{ErrorType: uncertainty.Hessian, ConfLevel: rounded})
	r, err := s.Uncertainty(values)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Scale)
	assert.InDelta(t, math.Sqrt(1.25), r.ErrSymm, epsTight)

	v, err := s.RandomValueFromHessian(values, []float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 11.0, v)

	native := newSet(t, 5, uncertainty.Config{ErrorType: uncertainty.Hessian})
	r, err = native.UncertaintyCL(values, rounded)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Scale)

	r, err = native.UncertaintyCL(values, 68.2689)
	require.NoError(t, err)
	assert.NotEqual(t, 1.0, r.Scale, "levels further apart than 1e-6 are rescaled")
}

func TestUncertainty_AlphaSQuadrature(t *testing.T) {
	t.Parallel()

	cases := []struct {
		et     uncertainty.ErrorType
		values []float64
	}{
		{uncertainty.HessianAlphaS, []float64{10, 11, 9, 10.5, 9.5, 10.3, 9.9}},
		{uncertainty.SymmHessianAlphaS, []float64{5, 5.2, 4.7, 5.1, 4.95}},
		{uncertainty.ReplicasAlphaS, []float64{3, 1, 2, 3, 4, 5, 3.2, 2.7}},
	}
	for _, tc := range cases {
		t.Run(tc.et.String(), func(t *testing.T) {
			s := newSet(t, len(tc.values), uncertainty.Config{ErrorType: tc.et})
			r, err := s.Uncertainty(tc.values)
			require.NoError(t, err)

			n := len(tc.values)
			assert.InDelta(t, math.Abs(tc.values[n-2]-tc.values[n-1])/2, r.ErrAlphaS, epsTight)
			assertQuadrature(t, r)
			assert.GreaterOrEqual(t, r.ErrPlus, r.ErrPlusPDF)
			assert.GreaterOrEqual(t, r.ErrMinus, r.ErrMinusPDF)
		})
	}

	// PDF part of hessian+as must ignore the alphaS members.
	plain := newSet(t, 5, uncertainty.Config{ErrorType: uncertainty.Hessian})
	withAS := newSet(t, 7, uncertainty.Config{ErrorType: uncertainty.HessianAlphaS})
	p, err := plain.Uncertainty([]float64{10, 11, 9, 10.5, 9.5})
	require.NoError(t, err)
	a, err := withAS.Uncertainty([]float64{10, 11, 9, 10.5, 9.5, 10.3, 9.9})
	require.NoError(t, err)
	assert.Equal(t, p.ErrSymm, a.ErrSymmPDF)
	assert.InDelta(t, 0.2, a.ErrAlphaS, epsTight)
	assert.InDelta(t, math.Sqrt(1.25+0.04), a.ErrSymm, epsTight)
}

func TestUncertainty_ReplicasGaussian(t *testing.T) {
	t.Parallel()

	values := []float64{0, 1, 2, 3, 4, 5}
	sd := math.Sqrt(10.0 / 4)

	cases := []struct {
		central uncertainty.ReplicaCentral
		want    float64
	}{
		{uncertainty.CentralAuto, 3},
		{uncertainty.CentralMean, 3},
		{uncertainty.CentralMember0, 0},
		{uncertainty.CentralMedian, 3},
	}
	for _, tc := range cases {
		s := newSet(t, len(values), uncertainty.Config{ErrorType: uncertainty.Replicas, Central: tc.central})
		r, err := s.Uncertainty(values)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r.Central, tc.central.String())
		assert.InDelta(t, sd, r.ErrSymm, epsTight)
		assert.Equal(t, r.ErrSymm, r.ErrPlus)
		assert.Equal(t, r.ErrSymm, r.ErrMinus)
		assert.Equal(t, 1.0, r.Scale)
	}

	s := newSet(t, len(values), uncertainty.Config{ErrorType: uncertainty.Replicas})
	r90, err := s.UncertaintyCL(values, 90)
	require.NoError(t, err)
	assert.InDelta(t, 1.6448536269514722, r90.Scale, 1e-9)
	assert.InDelta(t, sd*r90.Scale, r90.ErrSymm, epsTight)
}

func TestUncertainty_ReplicasPercentile(t *testing.T) {
	t.Parallel()

	values := []float64{0, 5, 3, 1, 4, 2} // replicas deliberately unsorted
	s := newSet(t, len(values), uncertainty.Config{ErrorType: uncertainty.Replicas, Interval: uncertainty.IntervalPercentile})

	r, err := s.Uncertainty(values)
	require.NoError(t, err)
	assert.Equal(t, 3.0, r.Central, "median")
	half := 4 * uncertainty.CL1Sigma / 100 / 2
	assert.InDelta(t, half, r.ErrPlus, epsTight)
	assert.InDelta(t, half, r.ErrMinus, epsTight)
	assert.Equal(t, 1.0, r.Scale)

	r90, err := s.UncertaintyCL(values, 90)
	require.NoError(t, err)
	assert.InDelta(t, 1.8, r90.ErrPlus, epsTight)
	assert.InDelta(t, 1.8, r90.ErrMinus, epsTight)
	assert.InDelta(t, 3.6/(4*uncertainty.CL1Sigma/100), r90.Scale, 1e-9)

	all, err := s.UncertaintyCL(values, 100)
	require.NoError(t, err, "percentile bracketing accepts 100%")
	assert.InDelta(t, 2.0, all.ErrPlus, epsTight)
	assert.InDelta(t, 2.0, all.ErrMinus, epsTight)

	// Input must not be reordered.
	assert.Equal(t, []float64{0, 5, 3, 1, 4, 2}, values)

	// Repeated calls are bit-identical.
	again, err := s.UncertaintyCL(values, 90)
	require.NoError(t, err)
	assert.Equal(t, r90, again)
}

func TestUncertainty_ReplicasPercentileSkewed(t *testing.T) {
	t.Parallel()

	values := []float64{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 10}
	s := newSet(t, len(values), uncertainty.Config{
		ErrorType: uncertainty.Replicas, Interval: uncertainty.IntervalPercentile, Central: uncertainty.CentralMedian,
	})
	r, err := s.UncertaintyCL(values, 90)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Central)
	assert.InDelta(t, 0.55*9, r.ErrPlus, 1e-9)
	assert.Equal(t, 0.0, r.ErrMinus)
	assert.Equal(t, 1.0, r.Scale, "zero one-sigma width falls back to 1")
}

func TestUncertainty_Concurrent(t *testing.T) {
	t.Parallel()

	values := []float64{10, 11, 9, 10.5, 9.5}
	s := newSet(t, 5, uncertainty.Config{ErrorType: uncertainty.Hessian})
	want, err := s.Uncertainty(values)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]uncertainty.Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.Uncertainty(values)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}
