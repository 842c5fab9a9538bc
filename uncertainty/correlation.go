// SPDX-License-Identifier: MIT

package uncertainty

import (
	"math"

	"github.com/katalvlaran/pdfunc/matrix"
)

// Correlation returns the PDF correlation between two observables evaluated
// with the same set members.
//
// Both samples are projected onto the error subspace:
//   - Hessian:      δ_k = (v[2k−1] − v[2k]) / 2 per eigenvector pair
//   - SymmHessian:  δ_i = v[i] − v[0]
//   - Replicas:     δ_i = (v[i] − mean) / √(N−1)
//   - with +as:     one extra direction δ_as = (v[size−2] − v[size−1]) / 2
//
// and ρ = Σ δa·δb / (‖δa‖·‖δb‖). ‖δ‖ is the symmetrised uncertainty of the
// sample, so ρ(a,a) = 1 and ρ(a,b) = ρ(b,a). The result is not clamped; it may
// leave [−1,1] by a few ulps.
//
// Errors:
//   - ErrInputLengthMismatch when either sample has the wrong length.
//   - ErrUndefinedCorrelation when either ‖δ‖ is zero.
//
// Complexity: Time O(N), Space O(N).
func (s *Set) Correlation(a, b []float64) (float64, error) {
	if err := s.checkLen(opCorrelation, a); err != nil {
		return 0, err
	}
	if err := s.checkLen(opCorrelation, b); err != nil {
		return 0, err
	}

	da, db := s.deltas(a), s.deltas(b)
	na, nb := norm(da), norm(db)
	if na == 0 || nb == 0 {
		return 0, engineErrorf(opCorrelation, ErrUndefinedCorrelation, "symmetric errors %g and %g", na, nb)
	}

	return dot(da, db) / (na * nb), nil
}

// CorrelationMatrix returns the K×K matrix of pairwise correlations between
// the given samples. The diagonal is exactly 1 and the matrix is symmetric.
//
// Errors:
//   - ErrInputLengthMismatch when no sample is given or any has the wrong length.
//   - ErrUndefinedCorrelation when any sample has zero symmetric error.
func (s *Set) CorrelationMatrix(samples ...[]float64) (*matrix.Dense, error) {
	if len(samples) == 0 {
		return nil, engineErrorf(opCorrelationMatrix, ErrInputLengthMismatch, "no samples")
	}

	ds := make([][]float64, len(samples))
	ns := make([]float64, len(samples))
	for i, v := range samples {
		if err := s.checkLen(opCorrelationMatrix, v); err != nil {
			return nil, err
		}
		ds[i] = s.deltas(v)
		ns[i] = norm(ds[i])
		if ns[i] == 0 {
			return nil, engineErrorf(opCorrelationMatrix, ErrUndefinedCorrelation, "sample %d has zero symmetric error", i)
		}
	}

	m, err := matrix.NewDense(len(samples), len(samples))
	if err != nil {
		return nil, engineErrorf(opCorrelationMatrix, err, "allocate %d×%d", len(samples), len(samples))
	}
	for i := range ds {
		m.SetUnchecked(i, i, 1)
		for j := i + 1; j < len(ds); j++ {
			rho := dot(ds[i], ds[j]) / (ns[i] * ns[j])
			m.SetUnchecked(i, j, rho)
			m.SetUnchecked(j, i, rho)
		}
	}

	return m, nil
}

// deltas projects a sample onto the error subspace of the set.
func (s *Set) deltas(values []float64) []float64 {
	l := s.layout
	var out []float64

	switch s.cfg.ErrorType.Family() {
	case FamilyHessian:
		out = make([]float64, 0, l.neigen+1)
		for k := 1; k <= l.neigen; k++ {
			out = append(out, (values[2*k-1]-values[2*k])/2)
		}
	case FamilySymmHessian:
		out = make([]float64, 0, l.npdf+1)
		for i := 1; i <= l.npdf; i++ {
			out = append(out, values[i]-values[0])
		}
	case FamilyReplicas:
		reps := values[1 : 1+l.npdf]
		var mean float64
		for _, v := range reps {
			mean += v
		}
		mean /= float64(len(reps))
		inv := 1 / math.Sqrt(float64(len(reps)-1))
		out = make([]float64, 0, l.npdf+1)
		for _, v := range reps {
			out = append(out, (v-mean)*inv)
		}
	}

	if l.asLo >= 0 {
		out = append(out, (values[l.asLo]-values[l.asHi])/2)
	}

	return out
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}
