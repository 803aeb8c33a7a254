package validate

import (
	"path"
	"strings"
	"testing"
)

// FuzzClean ensures Clean never panics and never returns an escaping path.
func FuzzClean(f *testing.F) {
	seeds := []string{
		"file.txt",
		"dir/sub/file.txt",
		"../escape.txt",
		"..\\escape.txt",
		"/etc/passwd",
		"C:\\x",
		"file\x00name.txt",
		"a/../../b",
		"",
		" ",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, name string) {
		v := NewNameValidator()
		cleaned, err := v.Clean(name)
		if err != nil {
			return
		}
		if cleaned == "" || cleaned == "." {
			t.Fatalf("Clean(%q) returned empty path %q", name, cleaned)
		}
		if strings.HasPrefix(cleaned, "/") || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
			t.Fatalf("Clean(%q) returned escaping path %q", name, cleaned)
		}
		if path.Clean(cleaned) != cleaned {
			t.Fatalf("Clean(%q) returned uncleaned path %q", name, cleaned)
		}
	})
}
