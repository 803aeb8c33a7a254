package txtar

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/errors"
)

// Sentinel errors. Match them with errors.Is on any error returned by this package.
var (
	// ErrUnsafeName indicates an entry name that cannot be materialized safely:
	// empty, absolute, escaping the destination, or containing control characters.
	ErrUnsafeName = errors.New(errors.CodeInvalidInput, "unsafe entry name")

	// ErrNotText indicates file content that is not valid UTF-8 text.
	ErrNotText = errors.New(errors.CodeInvalidInput, "content is not text")

	// ErrMarkerInContent indicates file content containing a line that would be
	// read back as a marker line, which makes the archive impossible to round-trip.
	ErrMarkerInContent = errors.New(errors.CodeInvalidInput, "content contains a marker line")

	// ErrNameNotRepresentable indicates a file name that cannot be written as a
	// marker line and read back unchanged: it contains a newline, has leading
	// or trailing whitespace, or produces a line that parses to another name.
	ErrNameNotRepresentable = errors.New(errors.CodeInvalidInput, "file name cannot be stored in an archive")
)

// wrapIOError wraps a filesystem error, choosing the code from the cause.
func wrapIOError(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, ioCode(err), message, ctx)
}

// wrapUnsafeNameError wraps a validator error so it matches ErrUnsafeName.
func wrapUnsafeNameError(err error, name string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(
		fmt.Errorf("%w: %w", ErrUnsafeName, err),
		errors.CodeInvalidInput,
		fmt.Sprintf("refusing to materialize entry %q", name),
		ctx,
	)
}

// wrapContentError wraps a content check failure for a collected file.
func wrapContentError(sentinel error, ctx map[string]interface{}) errors.PlatformError {
	return errors.WrapWithContext(sentinel, errors.CodeInvalidInput, "cannot archive file", ctx)
}

// wrapCancelError wraps a context error observed between entries.
func wrapCancelError(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, ioCode(err), message, ctx)
}

// ioCode maps a filesystem error to the closest platform error code.
func ioCode(err error) errors.ErrorCode {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return errors.CodeForbidden
	case errors.Is(err, fs.ErrExist):
		return errors.CodeAlreadyExists
	case errors.Is(err, fs.ErrNotExist):
		return errors.CodeNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return errors.CodeTimeout
	case errors.Is(err, context.Canceled):
		// No platform code means "canceled"; callers match context.Canceled.
		return errors.CodeUnknown
	default:
		return errors.CodeInternal
	}
}

// makeContext builds a context map from alternating keys and values.
// Example: makeContext("name", "a.txt", "index", 2).
func makeContext(kvPairs ...interface{}) map[string]interface{} {
	if len(kvPairs) == 0 {
		return nil
	}

	ctx := make(map[string]interface{}, len(kvPairs)/2)
	for i := 0; i < len(kvPairs)-1; i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kvPairs[i+1]
	}

	if len(ctx) == 0 {
		return nil
	}
	return ctx
}
