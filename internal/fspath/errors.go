// errors.go defines the status values returned by path operations.
//
// Callers match categories with errors.Is against the sentinels and recover
// the failing operation and input with errors.As on *PathError.

package fspath

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidPath indicates a structurally impossible resolution, such as
	// ".." above an absolute root or a malformed file:// URL.
	ErrInvalidPath = errors.New("invalid path")

	// ErrOutOfMemory indicates a Buffer could not grow within its limit.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrNotFound indicates the existence collaborator reported no such path.
	// It is never produced by the textual operations themselves.
	ErrNotFound = errors.New("path not found")
)

// PathError records a failed operation together with its input.
type PathError struct {
	Op   string // operation name, e.g. "resolve", "fromurl"
	Path string // input that caused the failure
	Err  error  // wrapped sentinel
}

func (e *PathError) Error() string {
	return e.Op + " " + strconv.Quote(e.Path) + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

// invalidf builds a PathError wrapping ErrInvalidPath with a reason.
func invalidf(op, path, format string, args ...any) error {
	return &PathError{
		Op:   op,
		Path: path,
		Err:  fmt.Errorf("%w: "+format, append([]any{ErrInvalidPath}, args...)...),
	}
}
