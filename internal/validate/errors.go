// errors.go defines sentinel errors for validation failures.
//
// Sentinel errors (not error types) because validation failures don't carry
// context beyond the category. Detailed messages are added by wrapping these
// with fmt.Errorf in the validation functions.

package validate

import "errors"

var (
	ErrInvalidPath      = errors.New("invalid path")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidSeparator = errors.New("invalid separator")
)
