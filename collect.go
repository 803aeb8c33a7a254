package txtar

import (
	"bytes"
	"context"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jmgilman/go/fs/core"
)

// FromFS builds an archive from the regular files below root.
//
// Entries are named by their slash-separated path relative to root and are
// sorted by name. Directories, symbolic links, and other special files are
// skipped. If root is itself a regular file, the archive holds that one file
// named by its base name.
//
// Because the format stores text only, a file that is not valid UTF-8 fails
// with ErrNotText, and a file containing a line that would be read back as a
// marker line fails with ErrMarkerInContent. A file whose name would not read
// back unchanged, such as one containing a newline or padded with spaces,
// fails with ErrNameNotRepresentable. A file without a final newline gains one.
func FromFS(ctx context.Context, fsys core.FS, root string, opts ...CollectOption) (*Archive, error) {
	o := applyCollectOptions(opts)
	root = cleanRoot(root)

	var files []File
	err := fsys.Walk(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return wrapIOError(walkErr, "failed to walk directory", makeContext("path", p))
		}
		if err := ctx.Err(); err != nil {
			return wrapCancelError(err, "collection canceled", makeContext("path", p))
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			o.Logger.DebugContext(ctx, "skipping special file", "path", p, "type", d.Type().String())
			return nil
		}

		name := relativeName(root, p)
		if !representable(name) {
			return wrapContentError(ErrNameNotRepresentable, makeContext("path", p, "name", name))
		}

		data, err := fsys.ReadFile(p)
		if err != nil {
			return wrapIOError(err, "failed to read file", makeContext("path", p, "name", name))
		}
		if !utf8.Valid(data) {
			return wrapContentError(ErrNotText, makeContext("path", p, "name", name))
		}
		if containsMarker(data) {
			return wrapContentError(ErrMarkerInContent, makeContext("path", p, "name", name))
		}

		files = append(files, File{Name: name, Data: fixNewline(bytes.Clone(data))})
		o.Logger.DebugContext(ctx, "collected file", "name", name, "bytes", len(data))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return New(o.Comment, files...), nil
}

func cleanRoot(root string) string {
	if root == "" {
		return "."
	}
	return path.Clean(filepath.ToSlash(root))
}

// relativeName returns p relative to root in slash form. A root that is
// itself a file is named by its base name.
func relativeName(root, p string) string {
	p = filepath.ToSlash(p)
	if p == root {
		return path.Base(p)
	}
	if root == "." {
		return strings.TrimPrefix(p, "./")
	}
	if root == "/" {
		return strings.TrimPrefix(p, "/")
	}
	return strings.TrimPrefix(p, root+"/")
}

// representable reports whether name survives a trip through a marker line.
func representable(name string) bool {
	if strings.Contains(name, "\n") || strings.TrimSpace(name) != name {
		return false
	}
	got, ok := markerName([]byte(markerStart + name + markerEnd))
	return ok && got == name
}
