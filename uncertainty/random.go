// SPDX-License-Identifier: MIT

package uncertainty

import (
	"math/rand/v2"
)

// RandomOption configures Hessian sampling.
type RandomOption func(*randomOptions)

type randomOptions struct {
	asymmetric bool
}

// WithAsymmetricSampling keeps the asymmetry of Hessian eigenvector pairs:
// a positive coordinate r moves along the (+) member by r·(v+ − v0), a
// negative one along the (−) member by |r|·(v− − v0). The average of many
// samples then differs from the central value. SymmHessian sets are
// unaffected.
func WithAsymmetricSampling() RandomOption {
	return func(o *randomOptions) { o.asymmetric = true }
}

func gatherRandomOptions(opts []RandomOption) randomOptions {
	var o randomOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// RandomValueFromHessian maps Gaussian eigenvector coordinates to a value on
// the Hessian error hypersurface (Watt–Thorne, arXiv:1205.4024).
//
// Implementation:
//   - Stage 1: validate the error family, len(values) == Size() and
//     len(randoms) == NumEigen().
//   - Stage 2: rescale the eigenvector displacements from the native
//     confidence level to one sigma.
//   - Stage 3: v0 + Σ r_k·δ_k, with δ_k = (v[2k−1] − v[2k])/2 for Hessian
//     pairs and δ_k = v[k] − v0 for symmetric displacements.
//
// Behavior highlights:
//   - The engine never draws random numbers; callers pass them in.
//   - All-zero randoms return values[0] exactly.
//   - Passing the same randoms for several observables preserves their
//     correlation.
//
// Errors:
//   - ErrInvalidConfiguration for replica sets.
//   - ErrInputLengthMismatch for wrong lengths.
//
// Complexity: Time O(NumEigen()), Space O(1).
func (s *Set) RandomValueFromHessian(values, randoms []float64, opts ...RandomOption) (float64, error) {
	if !s.cfg.ErrorType.IsHessian() {
		return 0, engineErrorf(opRandomValue, ErrInvalidConfiguration, "%s is not a Hessian error type", s.cfg.ErrorType)
	}
	if err := s.checkLen(opRandomValue, values); err != nil {
		return 0, err
	}
	if len(randoms) != s.layout.neigen {
		return 0, engineErrorf(opRandomValue, ErrInputLengthMismatch,
			"got %d random numbers, set has %d eigenvectors", len(randoms), s.layout.neigen)
	}

	scale, err := gaussianScale(CL1Sigma, s.native)
	if err != nil {
		return 0, engineErrorf(opRandomValue, err, "native level %g", s.native)
	}

	return s.randomValue(values, randoms, scale, gatherRandomOptions(opts)), nil
}

// randomValue is RandomValueFromHessian after validation.
func (s *Set) randomValue(values, randoms []float64, scale float64, o randomOptions) float64 {
	c := values[0]
	var shift float64

	switch s.cfg.ErrorType.Family() {
	case FamilyHessian:
		for k, r := range randoms {
			plus, minus := values[2*k+1], values[2*k+2]
			switch {
			case !o.asymmetric:
				shift += r * scale * (plus - minus) / 2
			case r >= 0:
				shift += r * scale * (plus - c)
			default:
				shift -= r * scale * (minus - c)
			}
		}
	case FamilySymmHessian:
		for k, r := range randoms {
			shift += r * scale * (values[k+1] - c)
		}
	}

	return c + shift
}

// HessianToReplicas converts one observable from Hessian members to a
// replica sample, one replica per draw.
//
// The returned slice has len(draws)+1 entries: index 0 is the mean of the
// generated replicas and indices 1..len(draws) are the replicas, so it is a
// valid member sample for a Replicas set of that size. Each draw must have
// NumEigen() coordinates.
//
// Errors:
//   - ErrInvalidConfiguration for replica sets.
//   - ErrInvalidMemberCount when draws is empty.
//   - ErrInputLengthMismatch for wrong lengths.
func (s *Set) HessianToReplicas(values []float64, draws [][]float64, opts ...RandomOption) ([]float64, error) {
	if !s.cfg.ErrorType.IsHessian() {
		return nil, engineErrorf(opHessianToReplicas, ErrInvalidConfiguration, "%s is not a Hessian error type", s.cfg.ErrorType)
	}
	if len(draws) == 0 {
		return nil, engineErrorf(opHessianToReplicas, ErrInvalidMemberCount, "no draws")
	}
	if err := s.checkLen(opHessianToReplicas, values); err != nil {
		return nil, err
	}
	for i, d := range draws {
		if len(d) != s.layout.neigen {
			return nil, engineErrorf(opHessianToReplicas, ErrInputLengthMismatch,
				"draw %d has %d coordinates, set has %d eigenvectors", i, len(d), s.layout.neigen)
		}
	}

	scale, err := gaussianScale(CL1Sigma, s.native)
	if err != nil {
		return nil, engineErrorf(opHessianToReplicas, err, "native level %g", s.native)
	}

	o := gatherRandomOptions(opts)
	out := make([]float64, len(draws)+1)
	var sum float64
	for i, d := range draws {
		out[i+1] = s.randomValue(values, d, scale, o)
		sum += out[i+1]
	}
	out[0] = sum / float64(len(draws))

	return out, nil
}

// GaussianDraws returns nrep vectors of neigen independent standard-normal
// numbers from a PCG generator seeded with seed. Equal arguments give equal
// draws on every platform.
func GaussianDraws(seed uint64, nrep, neigen int) [][]float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([][]float64, nrep)
	for i := range out {
		out[i] = make([]float64, neigen)
		for k := range out[i] {
			out[i][k] = rng.NormFloat64()
		}
	}

	return out
}
