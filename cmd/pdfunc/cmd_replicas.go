// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pdfunc/internal/table"
	"github.com/katalvlaran/pdfunc/matrix"
	"github.com/katalvlaran/pdfunc/uncertainty"
)

// Bounds for --nrep: a replicas set needs two replicas, and the member
// numbering of a set directory stops at 9999.
const (
	minReplicas = 2
	maxReplicas = 9999
)

func newReplicasCmd(opts *rootOptions) *cobra.Command {
	var (
		sf   samplingFlags
		nrep int
	)

	cmd := &cobra.Command{
		Use:   "replicas",
		Short: "Convert Hessian member values to a replica member table",
		Long: "Writes a member table with nrep+1 rows: row 0 is the average of the random\n" +
			"replicas, rows 1..nrep are the replicas. The result is a valid values file\n" +
			"for a set with ErrorType: replicas and NumMembers: nrep+1.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if nrep < minReplicas || nrep > maxReplicas {
				return fmt.Errorf("--nrep must be between %d and %d, got %d", minReplicas, maxReplicas, nrep)
			}
			l, err := opts.load(cmd)
			if err != nil {
				return err
			}

			draws := [][]float64(nil)
			if l.set.ErrorType().IsHessian() {
				draws = uncertainty.GaussianDraws(sf.seed, nrep, l.set.NumEigen())
			}

			out, err := matrix.NewDense(nrep+1, l.table.Cols())
			if err != nil {
				return err
			}
			for j, values := range l.table.Columns() {
				reps, err := l.set.HessianToReplicas(values, draws, sf.options()...)
				if err != nil {
					return fmt.Errorf("column %d: %w", j, err)
				}
				for i, v := range reps {
					out.SetUnchecked(i, j, v)
				}
			}
			slog.Info("converted to replicas",
				"from", l.set.ErrorType().String(),
				"replicas", nrep,
				"observables", l.table.Cols(),
				"seed", sf.seed)

			return table.Write(cmd.OutOrStdout(), out)
		},
	}

	sf.register(cmd)
	cmd.Flags().IntVar(&nrep, "nrep", 100, "number of replicas (2-9999)")

	return cmd
}
