// SPDX-License-Identifier: MIT

// Package pdfunc computes uncertainties, correlations and Hessian random
// samples for observables evaluated with every member of a PDF set.
//
// 🚀 What is pdfunc?
//
//	A small, dependency-light engine that takes the values of one observable
//	on every member of a set and turns them into:
//		• Central value and asymmetric/symmetric uncertainty at any C.L.
//		• Correlation between two observables (or a full matrix)
//		• Random values from Hessian eigenvectors (Watt–Thorne sampling)
//		• A replica member table converted from a Hessian set
//
// Supported error types: hessian, symmhessian, replicas, each optionally with
// two trailing alphaS variation members ("+as").
//
// Under the hood the module is organized as:
//
//	uncertainty/       — Set, Uncertainty, Correlation, RandomValueFromHessian
//	matrix/            — Dense member tables and correlation matrices
//	lhinfo/            — <set>.info metadata loading and validation
//	internal/table/    — whitespace-separated member table I/O
//	internal/logging/  — slog setup for the CLI
//	cmd/pdfunc/        — the pdfunc command
//
// Quick example:
//
//	set, _ := uncertainty.NewSet(5, uncertainty.Config{ErrorType: uncertainty.Hessian})
//	res, _ := set.Uncertainty([]float64{10, 11, 9, 10.5, 9.5})
//	// res.Central = 10, res.ErrSymm ≈ 1.118
//
//	go install github.com/katalvlaran/pdfunc/cmd/pdfunc@latest
package pdfunc
