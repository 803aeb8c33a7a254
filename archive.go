package txtar

import "bytes"

// Archive is a parsed txtar archive.
//
// Comment and Files may be replaced wholesale or by index. Parse never
// coalesces or splits entries, and duplicate names are kept in order.
type Archive struct {
	// Comment is the text preceding the first marker line.
	Comment []byte

	// Files holds the entries in archive order.
	Files []File
}

// File is a single archive entry.
type File struct {
	// Name is the text between the marker delimiters with surrounding
	// whitespace removed. It is not guaranteed to be unique, non-empty, or a
	// valid relative path.
	Name string

	// Data is the entry content, including its line terminators.
	Data []byte
}

// New creates an archive from a comment and a list of files.
// The trailing-newline rule is applied to comment.
func New(comment string, files ...File) *Archive {
	a := &Archive{
		Comment: fixNewline([]byte(comment)),
	}
	if len(files) > 0 {
		a.Files = make([]File, len(files))
		copy(a.Files, files)
	}
	return a
}

// NewFile creates an entry, applying the trailing-newline rule to data.
func NewFile(name, data string) File {
	return File{
		Name: name,
		Data: fixNewline([]byte(data)),
	}
}

// Names returns the entry names in archive order, duplicates included.
func (a *Archive) Names() []string {
	names := make([]string, len(a.Files))
	for i, f := range a.Files {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the last entry with the given name.
// The last entry is the one that wins when the archive is materialized.
func (a *Archive) Lookup(name string) (File, bool) {
	for i := len(a.Files) - 1; i >= 0; i-- {
		if a.Files[i].Name == name {
			return a.Files[i], true
		}
	}
	return File{}, false
}

// Clone returns a deep copy of the archive.
func (a *Archive) Clone() *Archive {
	c := &Archive{
		Comment: bytes.Clone(a.Comment),
	}
	if a.Files != nil {
		c.Files = make([]File, len(a.Files))
		for i, f := range a.Files {
			c.Files[i] = File{Name: f.Name, Data: bytes.Clone(f.Data)}
		}
	}
	return c
}

// fixNewline appends a newline to non-empty data that does not end in one.
// Empty data is returned as nil.
func fixNewline(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	if data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data
}
