// SPDX-License-Identifier: MIT

// Package uncertainty computes PDF-set uncertainties, correlations and
// Hessian random values from per-member evaluations of an observable.
//
// 🚀 What is a member sample?
//
//	A PDF set is an ensemble of members. Evaluating an observable (a parton
//	density xf(x,Q), a cross section, an acceptance) with every member gives
//	an ordered slice of length Size():
//	  • values[0]      — the central (best-fit) member
//	  • values[1..N]   — error members: Hessian eigenvector pairs, symmetric
//	                     eigenvector displacements, or Monte-Carlo replicas
//	  • last two       — alphaS variations, when the error type ends in "+as"
//
// ✨ Key features:
//   - closed ErrorType enumeration, parsed once (no string suffix checks)
//   - one member-layout derivation (N vs N−2 for +as) shared by all operations
//   - confidence-level rescaling via the Gaussian z-ratio, or direct
//     percentile bracketing of sorted replicas
//   - Pearson-style correlations restricted to the error subspace
//   - Watt–Thorne random values from caller-supplied Gaussian coordinates
//   - Hessian → replica conversion with reusable draws
//
// ⚙️ Usage:
//
//	set, err := uncertainty.NewSet(len(xg), uncertainty.Config{
//	  ErrorType: uncertainty.Hessian,
//	  ConfLevel: 90,
//	})
//	res, err := set.Uncertainty(xg)        // one-sigma result
//	res90, err := set.UncertaintyCL(xg, 90) // scaled to 90% C.L.
//	rho, err := set.Correlation(xg, xu)
//	v, err := set.RandomValueFromHessian(xg, randoms)
//
// A *Set is immutable; every method is a pure function of its arguments and
// may be called concurrently.
//
// References:
//
//	G. Watt, JHEP 1109 (2011) 069 [arXiv:1106.5788].
//	G. Watt and R.S. Thorne, JHEP 1208 (2012) 052 [arXiv:1205.4024].
package uncertainty
