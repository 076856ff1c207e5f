// Package fspath provides textual manipulation of filesystem-style paths.
//
// Nothing in this package touches the filesystem. Operations decompose, join,
// normalise and resolve path strings using '/' as the canonical separator.
// Root prefixes (a leading slash, and on Windows a drive letter or a UNC host)
// are computed by a single scanner, Platform.Root, so that POSIX and Windows
// rules differ in exactly one place.
//
// Most operations come in two forms: a method on Platform or a package-level
// function returning a fresh string, and a *Buffer method that writes into a
// caller-owned growable buffer. Package-level functions use Native.
package fspath

import (
	"fmt"
	"strings"
)

// Platform selects the root and separator rules applied to a path.
type Platform int

const (
	// POSIX recognises only a leading '/' as a root.
	POSIX Platform = iota
	// Windows additionally recognises drive letters ("C:/") and UNC hosts
	// ("//host/share").
	Windows
)

// String returns the lower-case platform name.
func (p Platform) String() string {
	switch p {
	case POSIX:
		return "posix"
	case Windows:
		return "windows"
	default:
		return fmt.Sprintf("platform(%d)", int(p))
	}
}

// ParsePlatform maps a configuration value to a Platform.
// Empty and "native" select the build platform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "", "native":
		return Native, nil
	case "posix", "unix":
		return POSIX, nil
	case "windows", "win32":
		return Windows, nil
	default:
		return Native, fmt.Errorf("unknown platform %q (valid: posix, windows, native)", s)
	}
}
