package txtar

import (
	"bytes"
	"errors"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		archive *Archive
		want    string
	}{
		{
			name:    "empty archive",
			archive: &Archive{},
			want:    "",
		},
		{
			name:    "comment only",
			archive: &Archive{Comment: []byte("hello\n")},
			want:    "hello\n",
		},
		{
			name: "files",
			archive: &Archive{
				Comment: []byte("c\n"),
				Files: []File{
					{Name: "a", Data: []byte("x\n")},
					{Name: "empty"},
					{Name: "dir/b", Data: []byte("y\nz\n")},
				},
			},
			want: "c\n-- a --\nx\n-- empty --\n-- dir/b --\ny\nz\n",
		},
		{
			name: "data written verbatim",
			archive: &Archive{Files: []File{
				{Name: "a", Data: []byte("no newline")},
			}},
			want: "-- a --\nno newline",
		},
		{
			name: "empty name",
			archive: &Archive{Files: []File{
				{Name: "", Data: []byte("x\n")},
			}},
			want: "--  --\nx\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(Format(tt.archive)))
			assert.Equal(t, tt.want, tt.archive.String())
		})
	}
}

func TestFormat_ParseInverse(t *testing.T) {
	tests := map[string]string{
		"basic":       basic,
		"simplest":    "-- simplest.txt --",
		"crlf":        "blah\r\n-- hello --\r\nhello\r\n",
		"padded name": "--   spaced   --\nx\n",
		"empty":       "",
		"no markers":  "just text\nmore text\n",
		"adjacent":    "-- a --\n-- b --\nhi\n",
		"empty name":  "--  --\n--  --\n",
		"near misses": "-- --\n--\n-- x\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			a := ParseString(input)
			assert.Equal(t, a, Parse(Format(a)))
		})
	}
}

func TestFormat_NormalizesOnlyThroughParse(t *testing.T) {
	assert.Equal(t, basic+"\n", string(Format(ParseString(basic))))
	assert.Equal(t, "-- simplest.txt --\n", string(Format(ParseString("-- simplest.txt --"))))
	assert.Equal(t, "-- a --\n", string(Format(ParseString("--   a   --"))))
}

func TestWriteTo(t *testing.T) {
	a := ParseString(basic)

	var buf bytes.Buffer
	n, err := a.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, basic+"\n", buf.String())
}

type limitedWriter struct {
	remaining int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if len(p) > w.remaining {
		n := w.remaining
		w.remaining = 0
		return n, errors.New("disk full")
	}
	w.remaining -= len(p)
	return len(p), nil
}

func TestWriteTo_StopsAtFirstError(t *testing.T) {
	a := ParseString("comment\n-- a --\nxyz\n")

	w := &limitedWriter{remaining: 10}
	n, err := a.WriteTo(w)
	require.Error(t, err)
	assert.Equal(t, int64(10), n)
	assert.Equal(t, platformerrors.CodeInternal, platformerrors.GetCode(err))
	assert.Contains(t, err.Error(), "disk full")
}
