// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pdfunc/uncertainty"
)

// samplingFlags are shared by the random and replicas commands.
type samplingFlags struct {
	seed       uint64
	asymmetric bool
}

func (f *samplingFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.seed, "seed", 1234, "random seed")
	cmd.Flags().BoolVar(&f.asymmetric, "asymmetric", false, "keep eigenvector asymmetry (average differs from best fit)")
}

func (f *samplingFlags) options() []uncertainty.RandomOption {
	if f.asymmetric {
		return []uncertainty.RandomOption{uncertainty.WithAsymmetricSampling()}
	}

	return nil
}

func newRandomCmd(opts *rootOptions) *cobra.Command {
	var (
		sf samplingFlags
		n  int
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Random values of every column from the Hessian eigenvectors",
		Long: "Draws --n Gaussian vectors with one coordinate per eigenvector and maps each to a\n" +
			"random value of every column. The same draw is used for all columns, so\n" +
			"correlations between observables are preserved.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return fmt.Errorf("--n must be positive, got %d", n)
			}
			l, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if !l.set.ErrorType().IsHessian() {
				return fmt.Errorf("%w: %s set has no eigenvectors", uncertainty.ErrInvalidConfiguration, l.set.ErrorType())
			}

			draws := uncertainty.GaussianDraws(sf.seed, n, l.set.NumEigen())
			slog.Debug("drew random vectors", "n", n, "eigenvectors", l.set.NumEigen(), "seed", sf.seed)

			columns := l.table.Columns()
			w := cmd.OutOrStdout()
			for i, d := range draws {
				fmt.Fprintf(w, "Random %d:", i+1)
				for _, values := range columns {
					v, err := l.set.RandomValueFromHessian(values, d, sf.options()...)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, " %12.4e", v)
				}
				fmt.Fprintln(w)
			}

			return nil
		},
	}

	sf.register(cmd)
	cmd.Flags().IntVar(&n, "n", 5, "number of random values per column")

	return cmd
}
