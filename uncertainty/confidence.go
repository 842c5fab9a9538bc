// SPDX-License-Identifier: MIT

package uncertainty

import (
	"math"
	"sort"
)

// zScore maps a two-sided confidence level in percent to the Gaussian
// half-width in units of sigma: z = √2·erfinv(cl/100).
// zScore(CL1Sigma) is 1 up to roundoff; zScore(100) is +Inf.
func zScore(cl float64) float64 {
	return math.Sqrt2 * math.Erfinv(cl/100)
}

// sameLevelTol is the distance below which two confidence levels are the
// same level. Metadata writes one sigma as 68.268949.
const sameLevelTol = 1e-6

// gaussianScale maps errors defined at native to the requested level.
// Levels within sameLevelTol return exactly 1. A level of 100 has no finite
// Gaussian half-width and is rejected.
func gaussianScale(requested, native float64) (float64, error) {
	if math.Abs(requested-native) < sameLevelTol {
		return 1, nil
	}
	if requested >= 100 || native >= 100 {
		return 0, ErrInvalidConfiguration
	}

	return zScore(requested) / zScore(native), nil
}

// sortedCopy returns the values sorted ascending without touching the input.
func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)

	return out
}

// quantile interpolates linearly between order statistics of sorted:
// h = (n−1)·p, q = x[⌊h⌋] + (h−⌊h⌋)·(x[⌊h⌋+1] − x[⌊h⌋]).
// The result is monotone in p, so q(lo) ≤ median ≤ q(hi) whenever lo ≤ ½ ≤ hi.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 || p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// percentileBracket returns the lower and upper quantiles enclosing cl
// percent of the sorted sample symmetrically around the median.
func percentileBracket(sorted []float64, cl float64) (lo, hi float64) {
	f := cl / 100
	return quantile(sorted, (1-f)/2), quantile(sorted, (1+f)/2)
}
