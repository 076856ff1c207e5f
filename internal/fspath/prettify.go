package fspath

// Exists reports whether a path is present. It is the only bridge between
// this package and a real filesystem; callers typically wrap os.Stat.
type Exists func(path string) bool

// Prettify returns the canonical textual form of path: base is prepended to
// a relative path, "." and ".." are collapsed, a trailing separator above the
// root is dropped and the result is checked with exists. A missing path
// yields ErrNotFound.
func (p Platform) Prettify(path, base string, exists Exists) (string, error) {
	if path == "" {
		path = "."
	}
	if base != "" && !p.IsAbsolute(path) {
		path = Join(base, path)
	}

	out, err := p.ResolveRelative(path)
	if err != nil {
		return "", err
	}
	if n := len(out); n > 1 && out[n-1] == '/' && n-1 > p.Root(out) {
		out = out[:n-1]
	}
	if out == "" {
		out = "."
	}

	if exists != nil && !exists(out) {
		return "", &PathError{Op: "prettify", Path: out, Err: ErrNotFound}
	}
	return out, nil
}

// PrettifyDir is Prettify followed by conversion to directory form.
func (p Platform) PrettifyDir(path, base string, exists Exists) (string, error) {
	out, err := p.Prettify(path, base, exists)
	if err != nil {
		return "", err
	}
	return ToDir(out), nil
}
