package txtar

import (
	"context"
	"os"
	"path"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"

	"github.com/jmgilman/go/txtar/internal/validate"
)

// Materialize writes every entry of the archive below dir.
//
// Entries are processed in archive order. For each entry the parent
// directories are created, then the file is created or truncated and its data
// written. When two entries resolve to the same path the later one wins. The
// comment is not written.
//
// Materialize stops at the first failure and returns it; entries written
// before the failure are left in place. Entry names are checked before use:
// empty, absolute, or escaping names fail with an error matching
// ErrUnsafeName. Interior ".." segments that stay inside dir are resolved.
//
// By default dir is a path on the local filesystem and relative paths are
// resolved against the working directory. Symbolic links already present
// below dir are then followed as if dir were the filesystem root, so an entry
// such as "link/file" is written inside dir even when link points elsewhere.
// With WithFS, dir is interpreted by the given provider and "" and "." name
// its root; confinement there is lexical and the provider decides how links
// are followed.
//
// The context is checked before each entry.
func (a *Archive) Materialize(ctx context.Context, dir string, opts ...MaterializeOption) error {
	o := applyMaterializeOptions(opts)

	root, err := resolveRoot(dir, o)
	if err != nil {
		return err
	}

	validator := validate.NewNameValidator()
	for i, f := range a.Files {
		if err := ctx.Err(); err != nil {
			return wrapCancelError(err, "materialization canceled", makeContext("name", f.Name, "index", i))
		}

		rel, err := validator.Clean(f.Name)
		if err != nil {
			return wrapUnsafeNameError(err, f.Name, makeContext("name", f.Name, "index", i))
		}

		target, err := entryPath(o, root, rel)
		if err != nil {
			return wrapIOError(err, "failed to resolve entry path", makeContext("name", f.Name, "index", i))
		}
		if err := writeEntry(o, target, f.Data); err != nil {
			return wrapIOError(err, "failed to materialize entry", makeContext("name", f.Name, "index", i, "path", target))
		}

		o.Logger.DebugContext(ctx, "materialized entry",
			"name", f.Name,
			"path", target,
			"bytes", len(f.Data),
		)
	}

	return nil
}

// FS materializes the archive into a new in-memory filesystem and returns it.
// Entry paths are relative to the root of the returned filesystem.
func (a *Archive) FS(ctx context.Context) (core.FS, error) {
	mem := billy.NewMemory()
	if err := a.Materialize(ctx, ".", WithFS(mem)); err != nil {
		return nil, err
	}
	return mem, nil
}

// resolveRoot returns the slash-separated destination root for the provider.
// The default local provider is rooted at "/", so relative paths are made
// absolute against the working directory first.
func resolveRoot(dir string, o *MaterializeOptions) (string, error) {
	if o.local {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", wrapIOError(err, "failed to resolve destination directory", makeContext("path", dir))
		}
		return filepath.ToSlash(abs), nil
	}

	if dir == "" {
		return ".", nil
	}
	return path.Clean(filepath.ToSlash(dir)), nil
}

// entryPath joins a validated relative name onto root. On the local
// filesystem existing symlinks are resolved without leaving root.
func entryPath(o *MaterializeOptions, root, rel string) (string, error) {
	if !o.local {
		return path.Join(root, rel), nil
	}
	resolved, err := securejoin.SecureJoin(filepath.FromSlash(root), filepath.FromSlash(rel))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(resolved), nil
}

// writeEntry creates the parent directories of target and writes data to it.
func writeEntry(o *MaterializeOptions, target string, data []byte) error {
	if parent := path.Dir(target); parent != "." && parent != "" {
		if err := o.FS.MkdirAll(parent, o.DirMode); err != nil {
			return err
		}
	}

	if !o.Exclusive {
		return o.FS.WriteFile(target, data, o.FileMode)
	}

	exists, err := o.FS.Exists(target)
	if err != nil {
		return err
	}
	if exists {
		return &os.PathError{Op: "create", Path: target, Err: os.ErrExist}
	}

	f, err := o.FS.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, o.FileMode)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
