package txtar

import (
	"io"
	"io/fs"
	"log/slog"

	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"
)

const (
	// DefaultFileMode is the permission used for materialized files.
	DefaultFileMode fs.FileMode = 0o644

	// DefaultDirMode is the permission used for directories created during materialization.
	DefaultDirMode fs.FileMode = 0o755
)

// MaterializeOptions controls how an archive is written to a filesystem.
type MaterializeOptions struct {
	// FS is the destination filesystem. If nil, the local filesystem is used.
	FS core.FS

	// FileMode is the permission for created files (before umask).
	FileMode fs.FileMode

	// DirMode is the permission for created directories (before umask).
	DirMode fs.FileMode

	// Exclusive refuses to replace any existing file, including one written
	// by an earlier entry of the same archive.
	Exclusive bool

	// Logger receives one debug record per entry. If nil, nothing is logged.
	Logger *slog.Logger

	// local is set when FS was defaulted to the local filesystem.
	local bool
}

// MaterializeOption is a functional option for Materialize.
type MaterializeOption func(*MaterializeOptions)

// WithFS writes entries to the given filesystem instead of the local one.
func WithFS(fsys core.FS) MaterializeOption {
	return func(opts *MaterializeOptions) {
		opts.FS = fsys
	}
}

// WithFileMode sets the permission for created files.
func WithFileMode(mode fs.FileMode) MaterializeOption {
	return func(opts *MaterializeOptions) {
		opts.FileMode = mode
	}
}

// WithDirMode sets the permission for created directories.
func WithDirMode(mode fs.FileMode) MaterializeOption {
	return func(opts *MaterializeOptions) {
		opts.DirMode = mode
	}
}

// WithExclusive makes Materialize fail with CodeAlreadyExists instead of
// replacing an existing file.
func WithExclusive() MaterializeOption {
	return func(opts *MaterializeOptions) {
		opts.Exclusive = true
	}
}

// WithLogger sets the logger used to trace materialization.
func WithLogger(logger *slog.Logger) MaterializeOption {
	return func(opts *MaterializeOptions) {
		opts.Logger = logger
	}
}

func defaultMaterializeOptions() *MaterializeOptions {
	return &MaterializeOptions{
		FileMode: DefaultFileMode,
		DirMode:  DefaultDirMode,
	}
}

func applyMaterializeOptions(opts []MaterializeOption) *MaterializeOptions {
	o := defaultMaterializeOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.FS == nil {
		o.FS = billy.NewLocal()
		o.local = true
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	return o
}

// CollectOptions controls how FromFS builds an archive.
type CollectOptions struct {
	// Comment is the archive comment. The trailing-newline rule is applied.
	Comment string

	// Logger receives one debug record per collected file. If nil, nothing is logged.
	Logger *slog.Logger
}

// CollectOption is a functional option for FromFS.
type CollectOption func(*CollectOptions)

// WithComment sets the comment of the collected archive.
func WithComment(comment string) CollectOption {
	return func(opts *CollectOptions) {
		opts.Comment = comment
	}
}

// WithCollectLogger sets the logger used to trace collection.
func WithCollectLogger(logger *slog.Logger) CollectOption {
	return func(opts *CollectOptions) {
		opts.Logger = logger
	}
}

func applyCollectOptions(opts []CollectOption) *CollectOptions {
	o := &CollectOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
