package validate

import (
	"fmt"
	"strings"
)

// Path validates a path argument.
//
// Validation rules:
//   - Null bytes rejected (no real path contains one)
//   - Max length enforced if maxLen > 0 (0 means no limit)
func Path(p string, maxLen int) error {
	if strings.ContainsRune(p, 0) {
		return fmt.Errorf("%w: null byte in path", ErrInvalidPath)
	}
	if maxLen > 0 && len(p) > maxLen {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrPathTooLong, len(p), maxLen)
	}
	return nil
}

// Paths validates every element of ps with [Path].
func Paths(ps []string, maxLen int) error {
	for _, p := range ps {
		if err := Path(p, maxLen); err != nil {
			return err
		}
	}
	return nil
}

// Separator validates a join separator, which must be exactly one
// non-NUL byte, and returns it.
func Separator(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: must be a single byte, got %q", ErrInvalidSeparator, s)
	}
	if s[0] == 0 {
		return 0, fmt.Errorf("%w: null byte", ErrInvalidSeparator)
	}
	return s[0], nil
}
