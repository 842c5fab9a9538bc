// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pdfunc/matrix"
)

func newCorrelationCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "correlation",
		Short: "Correlation matrix between all observable columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.load(cmd)
			if err != nil {
				return err
			}

			m, err := l.set.CorrelationMatrix(l.table.Columns()...)
			if err != nil {
				return err
			}
			if err = matrix.ValidateSymmetric(m, 0); err != nil {
				return fmt.Errorf("correlation matrix: %w", err)
			}

			w := cmd.OutOrStdout()
			for i := 0; i < m.Rows(); i++ {
				for j := 0; j < m.Cols(); j++ {
					if j > 0 {
						fmt.Fprint(w, " ")
					}
					fmt.Fprintf(w, "%9.5f", m.AtUnchecked(i, j))
				}
				fmt.Fprintln(w)
			}

			return nil
		},
	}
}
