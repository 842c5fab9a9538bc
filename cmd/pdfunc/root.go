// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pdfunc/internal/logging"
	"github.com/katalvlaran/pdfunc/internal/table"
	"github.com/katalvlaran/pdfunc/lhinfo"
	"github.com/katalvlaran/pdfunc/matrix"
	"github.com/katalvlaran/pdfunc/uncertainty"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	infoPath   string
	valuesPath string
	central    string
	interval   string
	logLevel   string
	logJSON    bool
}

// loaded is the bound set plus the member table it is applied to.
type loaded struct {
	info  *lhinfo.Info
	set   *uncertainty.Set
	table *matrix.Dense
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "pdfunc",
		Short:         "PDF-set uncertainties, correlations and Hessian sampling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(cmd.ErrOrStderr(), opts.logJSON, logging.ParseLevel(opts.logLevel))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.infoPath, "info", "", "set metadata file (<set>.info)")
	pf.StringVar(&opts.valuesPath, "values", "-", "member table: one row per member, one column per observable ('-' = stdin)")
	pf.StringVar(&opts.central, "central", "auto", "replica central value: auto|mean|member0|median")
	pf.StringVar(&opts.interval, "interval", "gaussian", "replica interval: gaussian|percentile")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	pf.BoolVar(&opts.logJSON, "log-json", false, "log as JSON on stderr")

	root.AddCommand(
		newInfoCmd(opts),
		newUncertaintyCmd(opts),
		newCorrelationCmd(opts),
		newRandomCmd(opts),
		newReplicasCmd(opts),
	)

	return root
}

// bindSet loads the metadata and binds it with the replica policy flags.
func (o *rootOptions) bindSet() (*lhinfo.Info, *uncertainty.Set, error) {
	if o.infoPath == "" {
		return nil, nil, fmt.Errorf("--info is required")
	}
	central, err := parseCentral(o.central)
	if err != nil {
		return nil, nil, err
	}
	interval, err := parseInterval(o.interval)
	if err != nil {
		return nil, nil, err
	}

	info, err := lhinfo.Load(o.infoPath)
	if err != nil {
		return nil, nil, err
	}
	set, err := info.NewSet(central, interval)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", o.infoPath, err)
	}
	slog.Debug("set bound",
		"desc", info.SetDesc,
		"error_type", set.ErrorType().String(),
		"members", set.Size(),
		"conf_level", set.ConfLevel())

	return info, set, nil
}

// load binds the set and reads the member table from --values or stdin.
func (o *rootOptions) load(cmd *cobra.Command) (*loaded, error) {
	info, set, err := o.bindSet()
	if err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	if o.valuesPath != "-" {
		f, err := os.Open(o.valuesPath)
		if err != nil {
			return nil, fmt.Errorf("open values: %w", err)
		}
		defer f.Close()
		r = f
	}

	d, err := table.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.valuesPath, err)
	}
	if d.Rows() != set.Size() {
		return nil, fmt.Errorf("%s: %w: table has %d members, set declares %d",
			o.valuesPath, uncertainty.ErrInputLengthMismatch, d.Rows(), set.Size())
	}
	slog.Debug("member table read", "members", d.Rows(), "observables", d.Cols())

	return &loaded{info: info, set: set, table: d}, nil
}

func parseCentral(s string) (uncertainty.ReplicaCentral, error) {
	for _, c := range []uncertainty.ReplicaCentral{
		uncertainty.CentralAuto, uncertainty.CentralMean, uncertainty.CentralMember0, uncertainty.CentralMedian,
	} {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("--central %q: %w", s, uncertainty.ErrInvalidConfiguration)
}

func parseInterval(s string) (uncertainty.ReplicaInterval, error) {
	for _, i := range []uncertainty.ReplicaInterval{uncertainty.IntervalGaussian, uncertainty.IntervalPercentile} {
		if strings.EqualFold(s, i.String()) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("--interval %q: %w", s, uncertainty.ErrInvalidConfiguration)
}
