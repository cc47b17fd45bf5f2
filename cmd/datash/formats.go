package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"datashell/internal/format"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the known formats, their aliases and file extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FORMAT\tEXT\tALIASES")

			for _, f := range format.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Format, f.Ext, strings.Join(f.Aliases, ", "))
			}

			return w.Flush()
		},
	}
}
