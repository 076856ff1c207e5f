package fspath

// dirname returns the parent portion of path. prefix is true when the result
// is a bare Windows root that still needs its trailing separator.
func (p Platform) dirname(path string) (dir string, prefix bool) {
	if path == "" {
		return ".", false
	}

	// strip trailing slashes
	end := len(path) - 1
	for end > 0 && path[end] == '/' {
		end--
	}

	if n := p.prefixLen(path, end+1); n > 0 {
		return path[:n], true
	}

	// find the start of the dir
	for end > 0 && path[end] != '/' {
		end--
	}

	// either the dir is "/" or there are no slashes
	if end == 0 {
		if path[0] == '/' {
			return "/", false
		}
		return ".", false
	}

	end--
	for end > 0 && path[end] == '/' {
		end--
	}

	if n := p.prefixLen(path, end+1); n > 0 {
		return path[:n], true
	}
	return path[:end+1], false
}

// Dirname returns the parent directory of path. Trailing separators are
// ignored and a root prefix is never stripped:
//
//	""          -> "."
//	"usr/lib/"  -> "usr"
//	"/usr"      -> "/"
//	"C:"        -> "C:/"        (Windows)
//	"//host/x"  -> "//host/"    (Windows)
func (p Platform) Dirname(path string) string {
	dir, prefix := p.dirname(path)
	if prefix {
		return dir + "/"
	}
	return dir
}

// DirnameTo writes the parent directory of path into buf.
func (p Platform) DirnameTo(buf *Buffer, path string) error {
	dir, prefix := p.dirname(path)
	if err := buf.Set(dir); err != nil {
		return err
	}
	if prefix {
		return buf.AppendByte('/')
	}
	return nil
}

// Dirname returns the parent directory of path on the Native platform.
func Dirname(path string) string { return Native.Dirname(path) }

// Basename returns the final segment of path, ignoring trailing separators.
// An empty path yields "." and a path made only of separators yields "/".
func Basename(path string) string {
	if path == "" {
		return "."
	}

	end := len(path) - 1
	for end > 0 && path[end] == '/' {
		end--
	}

	// all slashes becomes "/"
	if end == 0 && path[0] == '/' {
		return "/"
	}

	start := end
	for start > 0 && path[start-1] != '/' {
		start--
	}
	return path[start : end+1]
}

// BasenameTo writes the final segment of path into buf.
func BasenameTo(buf *Buffer, path string) error {
	return buf.Set(Basename(path))
}
