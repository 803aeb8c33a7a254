package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [archive]",
		Short: "List the entries of an archive",
		Long: `List prints one line per entry with its name and size, in archive order.
Duplicate names are listed as often as they appear.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	archive, err := readArchive(cmd, args)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, f := range archive.Files {
		fmt.Fprintf(tw, "%s\t%s\n", f.Name, humanize.Bytes(uint64(len(f.Data))))
	}
	return tw.Flush()
}
