package fspath

// ceiling returns the offset below which resolution must not back up: just
// past the root separator, else just past a "scheme://" prefix, else 0.
func (p Platform) ceiling(path []byte) int {
	if c := p.Root(string(path)) + 1; c > 0 {
		return c
	}
	return urlPrefixLen(path)
}

// resolve collapses "." and ".." segments of path in place and returns the
// shortened slice. It reports false when ".." would climb above a hard
// ceiling (an absolute root or URL prefix).
//
// The write cursor never overtakes the read cursor, so copying forward
// within the same slice is safe.
func (p Platform) resolve(path []byte) ([]byte, bool) {
	ceiling := p.ceiling(path)
	base, to, from := ceiling, ceiling, ceiling
	n := len(path)

	for from < n {
		next := from
		for next < n && path[next] != '/' {
			next++
		}
		l := next - from

		switch {
		case l == 1 && path[from] == '.':
			// drop singleton dot

		case l == 2 && path[from] == '.' && path[from+1] == '.':
			if to == base && ceiling != 0 {
				return path, false
			}
			if to == base {
				// nothing left to strip: the ".." becomes part of the base
				if next < n {
					l++
				}
				to += copy(path[to:], path[from:from+l])
				base = to
			} else {
				for to > base && path[to-1] == '/' {
					to--
				}
				for to > base && path[to-1] != '/' {
					to--
				}
			}

		default:
			if next < n && path[from] != '/' {
				l++
			}
			to += copy(path[to:], path[from:from+l])
		}

		from += l
		for from < n && path[from] == '/' {
			from++
		}
	}

	return path[:to], true
}

// ResolveRelative collapses "." and ".." segments and runs of separators
// without consulting the filesystem.
//
// On a relative path leading ".." segments that cannot be collapsed are kept
// ("a/../../b" -> "../b"). On an absolute path, or one starting with
// "scheme://", climbing above the root fails with ErrInvalidPath. A path
// that resolves to nothing yields "/" when absolute and "" when relative.
//
// Under Windows a network prefix is kept only once it has a share separator:
// "//host/share/../x" gives "//host/x", but a bare "//host" has no root and
// resolves to the relative "host".
func (p Platform) ResolveRelative(path string) (string, error) {
	out, ok := p.resolve([]byte(path))
	if !ok {
		return "", invalidf("resolve", path, "cannot strip root component")
	}
	return string(out), nil
}

// ResolveRelative resolves the buffer's contents in place. On failure the
// buffer is left unchanged.
func (b *Buffer) ResolveRelative(p Platform) error {
	out, ok := p.resolve([]byte(b.String()))
	if !ok {
		return invalidf("resolve", b.String(), "cannot strip root component")
	}
	return b.setBytes(out)
}

// ApplyRelative merges rel onto base: each leading ".." in rel strips one
// segment of base, the remainder is appended, and the result is resolved.
//
//	ApplyRelative("/this/is/a/base", "../test")         -> "/this/is/a/test"
//	ApplyRelative("https://h/a.git", "../b.git")        -> "https://h/b.git"
//	ApplyRelative("../../x/y", "../../z")               -> "../../z"
//	ApplyRelative("/", "..")                            -> ErrInvalidPath
func (p Platform) ApplyRelative(base, rel string) (string, error) {
	out, ok := p.resolve(appendJoin(nil, '/', []string{base, rel}))
	if !ok {
		return "", invalidf("apply", rel, "%q has no segment left to strip", base)
	}
	return string(out), nil
}

// ApplyRelative merges rel onto the buffer's contents. On failure the buffer
// is left unchanged.
func (b *Buffer) ApplyRelative(p Platform, rel string) error {
	out, err := p.ApplyRelative(b.String(), rel)
	if err != nil {
		return err
	}
	return b.Set(out)
}

// ResolveRelative resolves path on the Native platform.
func ResolveRelative(path string) (string, error) { return Native.ResolveRelative(path) }

// ApplyRelative applies rel to base on the Native platform.
func ApplyRelative(base, rel string) (string, error) { return Native.ApplyRelative(base, rel) }
