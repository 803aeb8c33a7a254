package txtar

import (
	"bytes"
	"io"
)

// Format returns the serialized form of an archive.
//
// The comment and each entry's data are written verbatim, so callers building
// archives by hand should end non-empty content with a newline (New and
// NewFile do this). Names are not validated; a name containing a newline or
// surrounding whitespace produces an archive that does not parse back to a.
func Format(a *Archive) []byte {
	var buf bytes.Buffer
	buf.Grow(formattedSize(a))
	_, _ = a.WriteTo(&buf)
	return buf.Bytes()
}

// String returns the serialized form of the archive.
func (a *Archive) String() string {
	return string(Format(a))
}

// WriteTo writes the serialized form of the archive to w.
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	cw.write(a.Comment)
	for _, f := range a.Files {
		cw.writeString(markerStart)
		cw.writeString(f.Name)
		cw.writeString(markerEnd + "\n")
		cw.write(f.Data)
	}

	if cw.err != nil {
		return cw.n, wrapIOError(cw.err, "failed to write archive", nil)
	}
	return cw.n, nil
}

func formattedSize(a *Archive) int {
	n := len(a.Comment)
	for _, f := range a.Files {
		n += len(markerStart) + len(f.Name) + len(markerEnd) + 1 + len(f.Data)
	}
	return n
}

// countingWriter stops at the first error and counts bytes written.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) write(p []byte) {
	if cw.err != nil || len(p) == 0 {
		return
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
}

func (cw *countingWriter) writeString(s string) {
	if cw.err != nil || s == "" {
		return
	}
	n, err := io.WriteString(cw.w, s)
	cw.n += int64(n)
	cw.err = err
}
