// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pdfunc/uncertainty"
)

const (
	labFormat = "%2s%10s%12s%12s%12s%12s%12s\n"
	numFormat = "%2s%10d%12.4e%12.4e%12.4e%12.4e%12.4e\n"
)

// columnResult is one observable's result in JSON output.
type columnResult struct {
	Column int `json:"column"`
	uncertainty.Result
}

func newUncertaintyCmd(opts *rootOptions) *cobra.Command {
	var (
		cl     float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "uncertainty",
		Short: "Central value and uncertainty of every observable column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.load(cmd)
			if err != nil {
				return err
			}

			results := make([]columnResult, 0, l.table.Cols())
			for j, values := range l.table.Columns() {
				r, err := l.set.UncertaintyCL(values, cl)
				if err != nil {
					return fmt.Errorf("column %d: %w", j, err)
				}
				results = append(results, columnResult{Column: j, Result: r})
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			writeUncertaintyTable(cmd.OutOrStdout(), l.set.ErrorType().HasAlphaS(), results)

			return nil
		},
	}

	cmd.Flags().Float64Var(&cl, "cl", uncertainty.CL1Sigma, "requested confidence level in percent")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")

	return cmd
}

// writeUncertaintyTable prints one line per column, plus the PDF-only and
// alphaS-only lines when the set carries alphaS members.
func writeUncertaintyTable(w io.Writer, alphaS bool, results []columnResult) {
	fmt.Fprintf(w, labFormat, "#", "column", "central", "error+", "error-", "error", "scale")
	for _, r := range results {
		fmt.Fprintf(w, numFormat, "", r.Column, r.Central, r.ErrPlus, r.ErrMinus, r.ErrSymm, r.Scale)
		if alphaS {
			fmt.Fprintf(w, numFormat, "p", r.Column, r.Central, r.ErrPlusPDF, r.ErrMinusPDF, r.ErrSymmPDF, r.Scale)
			fmt.Fprintf(w, numFormat, "a", r.Column, r.Central, r.ErrAlphaS, r.ErrAlphaS, r.ErrAlphaS, r.Scale)
		}
	}
}
