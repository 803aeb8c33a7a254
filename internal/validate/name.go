// Package validate checks archive entry names before they are turned into
// filesystem paths.
//
// Entry names come straight from marker lines and are never validated by the
// parser, so anything may appear in them. The validator rejects names that
// would escape the destination directory or that cannot name a regular file,
// and returns a cleaned, slash-separated relative path for the rest.
package validate

import (
	"errors"
	"path"
	"strings"
)

var (
	// ErrEmptyName is returned for names that are empty, whitespace-only, or
	// that clean to the destination directory itself.
	ErrEmptyName = errors.New("empty entry name")

	// ErrAbsolutePath is returned for Unix absolute, Windows drive, and UNC names.
	ErrAbsolutePath = errors.New("absolute entry name")

	// ErrPathTraversal is returned for names that resolve outside the destination.
	ErrPathTraversal = errors.New("entry name escapes destination")

	// ErrControlCharacter is returned for names containing NUL or other
	// control characters.
	ErrControlCharacter = errors.New("control character in entry name")
)

// NameValidator validates entry names for materialization.
// The zero value is ready to use.
type NameValidator struct{}

// NewNameValidator returns a NameValidator.
func NewNameValidator() *NameValidator {
	return &NameValidator{}
}

// Clean validates name and returns its cleaned relative form.
//
// Interior ".." segments that stay inside the destination are resolved, so
// "a/../b" yields "b". Backslashes are kept in the returned path but are
// treated as separators when looking for traversal, which keeps the check
// conservative on every platform.
func (v *NameValidator) Clean(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}

	if hasControlCharacter(name) {
		return "", ErrControlCharacter
	}

	if isAbsolute(name) {
		return "", ErrAbsolutePath
	}

	if escapes(name) || escapes(strings.ReplaceAll(name, "\\", "/")) {
		return "", ErrPathTraversal
	}

	cleaned := path.Clean(name)
	if cleaned == "." {
		return "", ErrEmptyName
	}

	return cleaned, nil
}

// IsSafe reports whether name would be accepted by Clean.
func (v *NameValidator) IsSafe(name string) bool {
	_, err := v.Clean(name)
	return err == nil
}

func escapes(name string) bool {
	cleaned := path.Clean(name)
	return cleaned == ".." || strings.HasPrefix(cleaned, "../")
}

// isAbsolute checks for absolute paths on all platforms, not just the host.
func isAbsolute(name string) bool {
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") {
		return true
	}

	// Windows drive letters (C:, D:\, c:/)
	if len(name) >= 2 && name[1] == ':' {
		drive := name[0]
		if (drive >= 'A' && drive <= 'Z') || (drive >= 'a' && drive <= 'z') {
			return true
		}
	}

	return false
}

func hasControlCharacter(name string) bool {
	for _, r := range name {
		if r == '\t' {
			continue
		}
		if r < 32 || r == 127 {
			return true
		}
	}
	return false
}
