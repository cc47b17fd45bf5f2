package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"datashell/internal/diagnostic"
)

func newCheckCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Audit the transformer registry for shadowed or unreachable declarations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.engine.Diagnose()

			for _, diag := range d.All() {
				if !verbose && diag.Severity == diagnostic.SeverityInfo {
					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", diag.Severity, diag)
			}

			if err := d.Error(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d transformations\n", len(a.engine.Transformations()))

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print informational findings")

	return cmd
}
