package txtar

import (
	"bytes"
	"io"

	"github.com/jmgilman/go/fs/core"
)

const (
	markerStart = "-- "
	markerEnd   = " --"
)

// section identifies which accumulator the parser is filling.
type section int

const (
	inComment section = iota
	inFile
)

// parser is a two-state machine over the lines of the input. The open
// section is a half-open byte range of the input starting at start; it is
// copied out when the next marker line or the end of input closes it.
type parser struct {
	archive *Archive
	state   section
	name    string
	start   int
}

// Parse parses the serialized form of an archive.
//
// Parse never fails. Text before the first marker line becomes the comment,
// and each marker line opens a new entry. If data does not end in a newline,
// Parse behaves as if it did. The returned archive does not retain data.
func Parse(data []byte) *Archive {
	p := &parser{archive: &Archive{}, state: inComment}

	for pos := 0; pos < len(data); {
		line, next := nextLine(data, pos)
		if name, ok := markerName(line); ok {
			p.close(data[p.start:pos])
			p.state = inFile
			p.name = name
			p.start = next
		}
		pos = next
	}
	p.close(data[p.start:])

	return p.archive
}

// ParseString parses an archive held in a string.
func ParseString(s string) *Archive {
	return Parse([]byte(s))
}

// ParseReader reads r to EOF and parses the result.
func ParseReader(r io.Reader) (*Archive, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapIOError(err, "failed to read archive", nil)
	}
	return Parse(data), nil
}

// ParseFile reads the named file from fsys and parses it.
func ParseFile(fsys core.ReadFS, name string) (*Archive, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		return nil, wrapIOError(err, "failed to read archive file", makeContext("path", name))
	}
	return Parse(data), nil
}

// close finalizes the open section with the given content.
func (p *parser) close(content []byte) {
	content = fixNewline(bytes.Clone(content))

	switch p.state {
	case inComment:
		p.archive.Comment = content
	case inFile:
		p.archive.Files = append(p.archive.Files, File{Name: p.name, Data: content})
	}
}

// nextLine returns the line starting at pos without its terminator, and the
// offset of the following line.
func nextLine(data []byte, pos int) ([]byte, int) {
	i := bytes.IndexByte(data[pos:], '\n')
	if i < 0 {
		return data[pos:], len(data)
	}
	return data[pos : pos+i], pos + i + 1
}

// markerName reports whether line is a marker line and returns its name.
// Trailing whitespace, including a carriage return, is ignored. The two
// delimiters must not overlap.
func markerName(line []byte) (string, bool) {
	line = bytes.TrimRight(line, " \t\r")
	if len(line) < len(markerStart)+len(markerEnd) {
		return "", false
	}
	if !bytes.HasPrefix(line, []byte(markerStart)) || !bytes.HasSuffix(line, []byte(markerEnd)) {
		return "", false
	}
	return string(bytes.TrimSpace(line[len(markerStart) : len(line)-len(markerEnd)])), true
}

// isMarker reports whether line would be parsed as a marker line.
func isMarker(line []byte) bool {
	_, ok := markerName(line)
	return ok
}

// containsMarker reports whether any line of data is a marker line.
func containsMarker(data []byte) bool {
	for pos := 0; pos < len(data); {
		line, next := nextLine(data, pos)
		if isMarker(line) {
			return true
		}
		pos = next
	}
	return false
}
