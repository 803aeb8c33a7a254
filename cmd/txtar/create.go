package main

import (
	"path/filepath"

	"github.com/jmgilman/go/fs/billy"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/txtar"
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [dir]",
		Short: "Write an archive of a directory to stdout",
		Long: `Create archives every regular file below dir (default ".") and writes the
result to stdout. Entries are sorted by path. Files that are not UTF-8 text,
that contain a line that looks like a marker, or whose names hold a newline
or surrounding spaces cannot be archived. Symbolic links are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().String("comment", "", "archive comment; env TXTAR_COMMENT")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	archive, err := txtar.FromFS(cmd.Context(), billy.NewLocal(), abs,
		txtar.WithComment(cfg.Comment),
		txtar.WithCollectLogger(logger),
	)
	if err != nil {
		return err
	}

	if _, err := archive.WriteTo(cmd.OutOrStdout()); err != nil {
		return err
	}

	logger.Debug("created archive", "files", len(archive.Files), "dir", abs)
	return nil
}
