package conformance

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/pathkit/internal/fspath"
)

// op evaluates one operation. Multi-valued results are newline-joined.
type op struct {
	min, max int // argument count; max < 0 means unbounded
	fn       func(p fspath.Platform, args []string) (string, error)
}

var ops = map[string]op{
	"dirname": {1, 1, func(p fspath.Platform, a []string) (string, error) {
		return p.Dirname(a[0]), nil
	}},
	"basename": {1, 1, func(_ fspath.Platform, a []string) (string, error) {
		return fspath.Basename(a[0]), nil
	}},
	"join": {0, -1, func(_ fspath.Platform, a []string) (string, error) {
		return fspath.JoinN('/', a...), nil
	}},
	"todir": {1, 1, func(_ fspath.Platform, a []string) (string, error) {
		return fspath.ToDir(a[0]), nil
	}},
	"squash": {1, 1, func(_ fspath.Platform, a []string) (string, error) {
		return fspath.SquashSlashes(a[0]), nil
	}},
	"root": {1, 1, func(p fspath.Platform, a []string) (string, error) {
		return strconv.Itoa(p.Root(a[0])), nil
	}},
	"walkup": {1, 2, func(p fspath.Platform, a []string) (string, error) {
		root := ""
		if len(a) > 1 {
			root = a[1]
		}
		return strings.Join(slices.Collect(p.Ancestors(a[0], root)), "\n"), nil
	}},
	"resolve": {1, 1, func(p fspath.Platform, a []string) (string, error) {
		return p.ResolveRelative(a[0])
	}},
	"apply": {2, -1, func(p fspath.Platform, a []string) (string, error) {
		out := a[0]
		for _, rel := range a[1:] {
			var err error
			if out, err = p.ApplyRelative(out, rel); err != nil {
				return "", err
			}
		}
		return out, nil
	}},
	"common": {2, 2, func(_ fspath.Platform, a []string) (string, error) {
		return strconv.Itoa(fspath.CommonDirlen(a[0], a[1])), nil
	}},
	"decode": {1, 1, func(_ fspath.Platform, a []string) (string, error) {
		return fspath.PercentDecode(a[0]), nil
	}},
	"fromurl": {1, 1, func(p fspath.Platform, a []string) (string, error) {
		return p.FromURL(a[0])
	}},
	"prettify": {1, 2, func(p fspath.Platform, a []string) (string, error) {
		base := ""
		if len(a) > 1 {
			base = a[1]
		}
		return p.Prettify(a[0], base, nil)
	}},
	"relative": {2, 2, func(_ fspath.Platform, a []string) (string, error) {
		return fspath.MakeRelative(a[0], a[1])
	}},
}

// Ops lists the operation names a case may use.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Eval runs the case's operation and returns its output.
func Eval(c Case) (string, error) {
	o, ok := ops[c.Op]
	if !ok {
		return "", fmt.Errorf("unknown op %q", c.Op)
	}
	if len(c.Args) < o.min || (o.max >= 0 && len(c.Args) > o.max) {
		return "", fmt.Errorf("%s: wrong argument count %d", c.Op, len(c.Args))
	}
	p, err := c.platform()
	if err != nil {
		return "", err
	}
	return o.fn(p, c.Args)
}
