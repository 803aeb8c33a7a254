package main

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/txtar"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [archive]",
		Short: "Write the entries of an archive to a directory",
		Long: `Extract writes every entry of the archive below the destination directory,
creating parent directories as needed. Later entries with the same name
replace earlier ones unless --exclusive is set. The archive is read from
stdin when no file is given or the file is "-".

Entry names that are absolute or that escape the destination are refused.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().StringP("dir", "C", ".", "destination directory; env TXTAR_DIR")
	cmd.Flags().Bool("exclusive", false, "fail instead of replacing existing files; env TXTAR_EXCLUSIVE")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	archive, err := readArchive(cmd, args)
	if err != nil {
		return err
	}

	opts := []txtar.MaterializeOption{txtar.WithLogger(logger)}
	if cfg.Exclusive {
		opts = append(opts, txtar.WithExclusive())
	}

	if err := archive.Materialize(cmd.Context(), cfg.Dir, opts...); err != nil {
		return err
	}

	logger.Info("extracted archive", "files", len(archive.Files), "dir", cfg.Dir)
	return nil
}
