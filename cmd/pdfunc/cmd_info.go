// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show how the set metadata is bound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, set, err := opts.bindSet()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "SetDesc:       %s\n", info.SetDesc)
			fmt.Fprintf(w, "ErrorType:     %s\n", set.ErrorType())
			fmt.Fprintf(w, "Members:       %d\n", set.Size())
			fmt.Fprintf(w, "ErrorMembers:  %d\n", set.NumErrorMembers())
			fmt.Fprintf(w, "Eigenvectors:  %d\n", set.NumEigen())
			fmt.Fprintf(w, "ConfLevel:     %.6f\n", set.ConfLevel())

			return nil
		},
	}
}
