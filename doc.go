// Package txtar reads, writes, and materializes txtar archives.
//
// A txtar archive is a plain-text file holding a free-form comment followed
// by zero or more file entries. Each entry starts with a marker line of the
// form "-- name --" and runs until the next marker line or the end of the
// archive. The format is meant to be edited by hand and to diff well, which
// is why it is used for test fixtures and small bundles of related files.
//
//	This is the comment.
//	-- hello.txt --
//	Hello, world.
//	-- dir/other.txt --
//	Nested file.
//
// # Parsing and Formatting
//
// Parsing never fails. Any input, including the empty string, maps to an
// Archive. Lines that do not look exactly like a marker line belong to the
// comment or to the current entry. A missing newline at the end of the input
// is treated as if it were present, so the stored comment and entry data
// always end in a newline when non-empty.
//
//	a := txtar.Parse(data)
//	for _, f := range a.Files {
//	    fmt.Println(f.Name, len(f.Data))
//	}
//
// Format is the inverse of Parse: for any archive produced by Parse,
// Parse(Format(a)) is equal to a.
//
//	out := txtar.Format(a)
//
// # Materializing
//
// Materialize writes every entry into a directory on a core.FS provider,
// creating parent directories as needed. Entries are written in archive order
// and a later entry with the same path replaces an earlier one. The comment is
// never written.
//
//	err := a.Materialize(ctx, "/tmp/fixture")
//
//	// Or into memory
//	mem := billy.NewMemory()
//	err := a.Materialize(ctx, "fixture", txtar.WithFS(mem))
//
// Entry names are untrusted. Names that are empty, absolute, or that escape
// the destination directory with ".." are rejected with ErrUnsafeName before
// anything is written for that entry. On the local filesystem, symbolic links
// found below the destination are resolved as if it were the filesystem root,
// so a link cannot carry a write outside it.
//
// FromFS goes the other way and builds an archive from the regular files
// below a directory, sorted by path.
//
// # Error Handling
//
// All errors are github.com/jmgilman/go/errors PlatformError values. The
// entry name and index are attached as context, and sentinel errors can be
// matched with errors.Is.
//
// # Limitations
//
// The format stores text only. There is no support for binary content, file
// permissions, symbolic links, or other special files.
package txtar
