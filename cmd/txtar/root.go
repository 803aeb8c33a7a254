package main

import (
	"path/filepath"

	"github.com/jmgilman/go/fs/billy"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/txtar"
)

// newRootCmd builds the txtar command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "txtar",
		Short: "Create, list, and extract txtar archives",
		Long: `txtar works with txtar archives: plain-text files holding a comment
followed by file entries, each introduced by a "-- name --" marker line.

Examples:
  txtar create ./fixture > fixture.txtar    Archive a directory
  txtar list fixture.txtar                  Show entry names and sizes
  txtar extract -C /tmp/out fixture.txtar   Write the entries to a directory
  cat fixture.txtar | txtar extract         Extract from stdin into .`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error); env TXTAR_LOG_LEVEL")

	root.AddCommand(newExtractCmd())
	root.AddCommand(newCreateCmd())
	root.AddCommand(newListCmd())

	return root
}

// readArchive parses the archive named by args, or stdin when args is empty or "-".
func readArchive(cmd *cobra.Command, args []string) (*txtar.Archive, error) {
	if len(args) == 0 || args[0] == "-" {
		return txtar.ParseReader(cmd.InOrStdin())
	}

	abs, err := filepath.Abs(args[0])
	if err != nil {
		return nil, err
	}
	return txtar.ParseFile(billy.NewLocal(), abs)
}
