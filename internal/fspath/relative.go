package fspath

import "strings"

// MakeRelative rewrites path relative to parent, climbing with "../" where
// parent is not an ancestor:
//
//	MakeRelative("/foo/bar/baz.c", "/foo/bar")      -> "baz.c"
//	MakeRelative("/foo/bar/baz.c", "/foo/bar/asdf") -> "../baz.c"
//	MakeRelative("/foo/bar", "/foo/bar")            -> ""
//
// The two must share at least one leading segment (or both be absolute);
// otherwise ErrNotFound is returned.
func MakeRelative(path, parent string) (string, error) {
	// index of the last separator shared at the same offset
	i, dirsep := 0, 0
	for ; i < len(path) && i < len(parent); i++ {
		if path[i] == '/' && parent[i] == '/' {
			dirsep = i
		} else if path[i] != parent[i] {
			break
		}
	}

	if dirsep == 0 && (path == "" || parent == "" || path[0] != '/' || parent[0] != '/') {
		return "", &PathError{Op: "relative", Path: path, Err: ErrNotFound}
	}

	pathEnd, parentEnd := i == len(path), i == len(parent)
	var rest string
	var q int
	switch {
	case !pathEnd && path[i] == '/' && parentEnd:
		rest, q = path[i+1:], len(parent)
	case pathEnd && !parentEnd && parent[i] == '/':
		rest, q = "", i+1
	case pathEnd && parentEnd:
		return "", nil
	default:
		rest, q = path[dirsep+1:], dirsep+1
	}

	if q >= len(parent) {
		return rest, nil
	}

	// one "../" per remaining parent segment, ignoring a trailing slash
	depth := 1
	for tail := parent[q:]; ; {
		j := strings.IndexByte(tail, '/')
		if j < 0 || j+1 >= len(tail) {
			break
		}
		depth++
		tail = tail[j+1:]
	}
	return strings.Repeat("../", depth) + rest, nil
}

// SquashSlashes collapses every run of separators in path to one.
func SquashSlashes(path string) string {
	if !strings.Contains(path, "//") {
		return path
	}
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		if path[i] == '/' && i > 0 && path[i-1] == '/' {
			continue
		}
		b.WriteByte(path[i])
	}
	return b.String()
}

// IsDotOrDotDot reports whether segment is "." or "..".
func IsDotOrDotDot(segment string) bool {
	return segment == "." || segment == ".."
}
