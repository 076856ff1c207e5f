// root.go is the segment scanner: the one place that knows what a root
// prefix looks like on each platform.

package fspath

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// driveLen returns 2 when path starts with a drive letter and colon.
func driveLen(path string) int {
	if len(path) >= 2 && isAlpha(path[0]) && path[1] == ':' {
		return 2
	}
	return 0
}

// Root returns the offset of the separator that terminates the root prefix
// of path, or -1 when path is relative.
//
//	POSIX:   "/rooted/path"         -> 0
//	Windows: "C:/rooted/path"       -> 2
//	Windows: "//host/share/file"    -> 6 (the '/' after the host)
//	Windows: "C:relative", "//host" -> -1
func (p Platform) Root(path string) int {
	offset := 0

	if p == Windows {
		if n := driveLen(path); n > 0 {
			offset = n
		} else if len(path) > 2 &&
			((path[0] == '/' && path[1] == '/' && path[2] != '/') ||
				(path[0] == '\\' && path[1] == '\\' && path[2] != '\\')) {
			// network path: skip the computer name
			offset = 2
			for offset < len(path) && path[offset] != '/' && path[offset] != '\\' {
				offset++
			}
		}
		if offset < len(path) && path[offset] == '\\' {
			return offset
		}
	}

	if offset < len(path) && path[offset] == '/' {
		return offset
	}
	return -1
}

// IsAbsolute reports whether path has a root prefix.
func (p Platform) IsAbsolute(path string) bool {
	return p.Root(path) >= 0
}

// Root reports the root offset of path using the Native platform.
func Root(path string) int { return Native.Root(path) }

// IsAbsolute reports whether path is rooted on the Native platform.
func IsAbsolute(path string) bool { return Native.IsAbsolute(path) }

// prefixLen reports whether path[:n] is a bare Windows root ("C:" or
// "//host") and returns n if so. Such a prefix is returned by Dirname with a
// separator appended, mirroring how "/.git" has the parent "/".
func (p Platform) prefixLen(path string, n int) int {
	if p != Windows {
		return -1
	}
	if driveLen(path) == n {
		return n
	}
	if isNetworkName(path, n) {
		return n
	}
	return -1
}

// isNetworkName reports whether path[:n] is "//name" with no further slash.
func isNetworkName(path string, n int) bool {
	if n < 3 || path[0] != '/' || path[1] != '/' {
		return false
	}
	for i := n - 1; i > 1; i-- {
		if path[i] == '/' {
			return false
		}
	}
	return true
}

// urlPrefixLen returns the length of a leading "scheme://" or 0.
func urlPrefixLen(path []byte) int {
	i := 0
	for i < len(path) && isAlpha(path[i]) {
		i++
	}
	if i+2 < len(path) && path[i] == ':' && path[i+1] == '/' && path[i+2] == '/' {
		return i + 3
	}
	return 0
}
