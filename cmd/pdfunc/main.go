// SPDX-License-Identifier: MIT

// Command pdfunc computes PDF uncertainties, correlations and Hessian random
// values for observables evaluated with every member of a PDF set.
//
// Usage:
//
//	pdfunc uncertainty --info CT10nlo.info --values xg_xu.dat --cl 90
//	pdfunc correlation --info CT10nlo.info --values xg_xu.dat
//	pdfunc random      --info CT10nlo.info --values xg_xu.dat --seed 1234 --n 5
//	pdfunc replicas    --info CT10nlo.info --values xg_xu.dat --nrep 100 > rand.dat
//
// The values file has one row per member (row 0 = central) and one column
// per observable.
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
