package fspath

import (
	"iter"
	"strings"
)

// rfindNext returns the index of the last '/' in s that precedes the final
// segment, skipping any trailing run of separators. -1 if there is none.
func rfindNext(s string) int {
	i := len(s) - 1
	for i >= 0 && s[i] == '/' {
		i--
	}
	for i >= 0 && s[i] != '/' {
		i--
	}
	return i
}

// Ancestors yields path and then each enclosing directory, innermost first.
//
// Every value after the first is in directory form and keeps the separator
// run exactly as written ("///a///b" yields "///a///b", "///a///", "///").
// When root is a prefix of path the walk ends at the first ancestor no
// shorter than root; otherwise (including root == "") it runs to the top and,
// for a relative path, finishes with "". The walk never goes below the root
// prefix, so a UNC path stops at "//host/". An empty path yields "" once.
func (p Platform) Ancestors(path, root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if path == "" {
			yield("")
			return
		}

		bounded := root != "" && strings.HasPrefix(path, root)
		stop := 0
		if bounded {
			stop = len(root)
		}
		if r := p.Root(path); r >= stop {
			stop = r + 1
		}

		for scan := len(path); scan >= stop; {
			if !yield(path[:scan]) {
				return
			}
			scan = rfindNext(path[:scan])
			if scan < 0 {
				break
			}
			scan++
		}

		// relative path: one last step for the implicit current directory
		if !bounded && p.Root(path) < 0 {
			yield("")
		}
	}
}

// WalkUp calls fn for path and each of its ancestors as produced by
// Ancestors. A non-nil error from fn stops the walk at once and is returned
// unchanged; fn is not called again.
func (p Platform) WalkUp(path, root string, fn func(dir string) error) error {
	for dir := range p.Ancestors(path, root) {
		if err := fn(dir); err != nil {
			return err
		}
	}
	return nil
}

// WalkUp runs fn over the ancestors of the buffer's contents. The buffer is
// not modified.
func (b *Buffer) WalkUp(p Platform, root string, fn func(dir string) error) error {
	return p.WalkUp(b.String(), root, fn)
}

// Ancestors enumerates ancestors on the Native platform.
func Ancestors(path, root string) iter.Seq[string] { return Native.Ancestors(path, root) }

// WalkUp walks ancestors on the Native platform.
func WalkUp(path, root string, fn func(dir string) error) error {
	return Native.WalkUp(path, root, fn)
}
