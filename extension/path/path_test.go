package path

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/config"
	"github.com/jpl-au/pathkit/internal/fspath"
	"github.com/jpl-au/pathkit/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func posix() settings {
	return settings{platform: fspath.POSIX, maxPath: 4096}
}

func newExt(s settings) *Extension {
	return &Extension{s: s}
}

func TestValueFuncs(t *testing.T) {
	tests := []struct {
		name string
		fn   valueFunc
		in   []string
		want string
	}{
		{"dirname", dirname, []string{"/usr/lib/"}, "/usr"},
		{"dirname relative", dirname, []string{"file.txt"}, "."},
		{"basename", basename, []string{"/usr/lib/"}, "lib"},
		{"join", joinWith('/'), []string{"/usr/", "/lib"}, "/usr/lib"},
		{"join sep", joinWith(','), []string{"a", "b", "c"}, "a,b,c"},
		{"todir", todir, []string{"/usr/lib"}, "/usr/lib/"},
		{"todir already", todir, []string{"/usr/lib/"}, "/usr/lib/"},
		{"squash", squash, []string{"//a///b/"}, "/a/b/"},
		{"resolve", resolve, []string{"../../test//../././path"}, "../../path"},
		{"apply", apply, []string{"/this/is/a/base", "../../.."}, "/this/"},
		{"decode", decode, []string{"a%20b%zz"}, "a b%zz"},
		{"fromurl", fromURL, []string{"file:///tmp/x%20y"}, "/tmp/x y"},
		{"relative", relative, []string{"/foo/bar/baz.c", "/foo/bar/asdf"}, "../baz.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(posix(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueFuncs_Errors(t *testing.T) {
	_, err := resolve(posix(), []string{"/.."})
	assert.ErrorIs(t, err, fspath.ErrInvalidPath)

	_, err = fromURL(posix(), []string{"file://example.com/tmp"})
	assert.ErrorIs(t, err, fspath.ErrInvalidPath)

	_, err = relative(posix(), []string{"foo", "bar"})
	assert.ErrorIs(t, err, fspath.ErrNotFound)
}

func TestPrettify(t *testing.T) {
	seen := ""
	exists := func(p string) bool {
		seen = p
		return p == "/repo/main.go"
	}

	got, err := prettify(false, exists)(posix(), []string{"src/../main.go", "/repo"})
	require.NoError(t, err)
	assert.Equal(t, "/repo/main.go", got)
	assert.Equal(t, "/repo/main.go", seen)

	_, err = prettify(false, exists)(posix(), []string{"missing", "/repo"})
	assert.ErrorIs(t, err, fspath.ErrNotFound)

	always := func(string) bool { return true }
	got, err = prettify(true, always)(posix(), []string{"/repo//src/", ""})
	require.NoError(t, err)
	assert.Equal(t, "/repo/src/", got)
}

func TestRootOf(t *testing.T) {
	s := posix()
	assert.Equal(t, rootResult{Path: "/usr", Platform: "posix", Root: 0, Absolute: true}, rootOf(s, "/usr"))
	assert.Equal(t, -1, rootOf(s, "usr").Root)
	assert.False(t, rootOf(s, "usr").Absolute)

	s.platform = fspath.Windows
	assert.Equal(t, 2, rootOf(s, "C:/foo").Root)
	assert.Equal(t, 8, rootOf(s, "//server/share").Root)
}

func TestCommonOf(t *testing.T) {
	r, err := commonOf(posix(), []string{"foo/one.txt", "foo/two.txt"})
	require.NoError(t, err)
	assert.Equal(t, 4, r.Length)
	assert.Equal(t, "foo/", r.Prefix)

	r, err = commonOf(posix(), []string{"foo/bar.txt", "bar/foo.txt"})
	require.NoError(t, err)
	assert.Equal(t, 0, r.Length)
	assert.Empty(t, r.Prefix)
}

func TestWalkFor(t *testing.T) {
	s := posix()

	dirs, err := walkFor(s, "/a/b/c", "", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/b/c", "/a/b/", "/a/", "/"}, dirs)

	dirs, err = walkFor(s, "/a/b/c/d/e", "/a/b", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/b/c/d/e", "/a/b/c/d/", "/a/b/c/", "/a/b/"}, dirs)

	dirs, err = walkFor(s, "/a/b/c", "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/b/c", "/a/b/"}, dirs)

	_, err = walkFor(s, "/a", "", -1)
	assert.ErrorIs(t, err, errNegativeLimit)
}

func TestPrepare(t *testing.T) {
	s := posix()
	s.maxPath = 8

	_, err := s.prepare("dirname", []string{"/a/b/c/d/e"})
	assert.ErrorIs(t, err, validate.ErrPathTooLong)

	_, err = s.prepare("dirname", []string{"a\x00b"})
	assert.ErrorIs(t, err, validate.ErrInvalidPath)

	decomposed := "cafe\u0301"
	in, err := s.prepare("basename", []string{decomposed})
	require.NoError(t, err)
	assert.Equal(t, decomposed, in[0])

	s.precompose = true
	in, err = s.prepare("basename", []string{decomposed})
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9", in[0])
}

func TestCompute_BufferLimit(t *testing.T) {
	s := posix()
	s.maxPath = 8

	_, err := compute(s, "join", []string{"aaaa", "bbbb"}, joinWith('/'))
	assert.ErrorIs(t, err, fspath.ErrOutOfMemory)

	got, err := compute(s, "join", []string{"aaa", "bbb"}, joinWith('/'))
	require.NoError(t, err)
	assert.Equal(t, "aaa/bbb", got)
}

func TestSettingsFrom(t *testing.T) {
	maxPath, limit, pre := 16, 3, true
	cfg := &config.Config{
		Platform: "windows",
		Unicode:  config.Unicode{Precompose: &pre},
		Limits:   config.Limits{MaxPath: &maxPath},
		Walk:     config.Walk{Limit: &limit},
	}
	ctx, err := extension.NewContext(cfg, "")
	require.NoError(t, err)

	e := &Extension{}
	require.NoError(t, e.Init(ctx))
	s := e.current()
	assert.Equal(t, fspath.Windows, s.platform)
	assert.True(t, s.precompose)
	assert.Equal(t, 3, s.walkLimit)

	buf := s.buffer()
	assert.Equal(t, 16, buf.Limit())
	assert.Equal(t, 0, buf.Len())
}

func TestWithPlatform(t *testing.T) {
	s, err := posix().withPlatform("")
	require.NoError(t, err)
	assert.Equal(t, fspath.POSIX, s.platform)

	s, err = posix().withPlatform("windows")
	require.NoError(t, err)
	assert.Equal(t, fspath.Windows, s.platform)

	_, err = posix().withPlatform("amiga")
	assert.Error(t, err)
}

// request builds a tool call carrying args.
func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

// text returns the text of the first content item of res.
func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

// callTool finds the named tool on e and invokes it.
func callTool(t *testing.T, e *Extension, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	for _, tool := range e.MCPTools() {
		if tool.Tool.Name == name {
			res, err := tool.Handler(context.Background(), nil, request(args))
			require.NoError(t, err)
			return res
		}
	}
	t.Fatalf("no tool %q", name)
	return nil
}

func TestMCPTools_Names(t *testing.T) {
	e := newExt(posix())
	names := map[string]bool{}
	for _, tool := range e.MCPTools() {
		names[tool.Tool.Name] = true
	}
	for _, c := range e.Commands() {
		op := c.Name()
		assert.True(t, names["path_"+op], "no tool for command %q", op)
	}
	assert.Len(t, names, len(e.Commands()))
}

func TestMCPTool_Value(t *testing.T) {
	e := newExt(posix())

	res := callTool(t, e, "path_dirname", map[string]any{"path": "/usr/lib/"})
	require.False(t, res.IsError)

	var v valueResult
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &v))
	assert.Equal(t, "/usr", v.Result)
	assert.Equal(t, "posix", v.Platform)
	assert.Equal(t, []string{"/usr/lib/"}, v.Input)

	res = callTool(t, e, "path_dirname", map[string]any{"path": "C:/foo", "platform": "windows"})
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &v))
	assert.Equal(t, "C:/", v.Result)
	assert.Equal(t, "windows", v.Platform)

	// The override applies to one call only.
	assert.Equal(t, fspath.POSIX, e.current().platform)
}

func TestMCPTool_Errors(t *testing.T) {
	e := newExt(posix())

	res := callTool(t, e, "path_dirname", map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "path is required")

	res = callTool(t, e, "path_resolve", map[string]any{"path": "/.."})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "invalid path")

	res = callTool(t, e, "path_basename", map[string]any{"path": "a", "platform": "amiga"})
	assert.True(t, res.IsError)

	res = callTool(t, e, "path_join", map[string]any{"parts": []any{"a", "b"}, "sep": "::"})
	assert.True(t, res.IsError)

	res = callTool(t, e, "path_apply", map[string]any{"base": "/a"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "relative is required")

	res = callTool(t, e, "path_common", map[string]any{"a": "x"})
	assert.True(t, res.IsError)
}

func TestMCPTool_Join(t *testing.T) {
	e := newExt(posix())
	res := callTool(t, e, "path_join", map[string]any{"parts": []any{"/usr/", "/lib", "x"}})
	require.False(t, res.IsError)

	var v valueResult
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &v))
	assert.Equal(t, "/usr/lib/x", v.Result)
}

func TestMCPTool_Apply(t *testing.T) {
	e := newExt(posix())
	res := callTool(t, e, "path_apply", map[string]any{
		"base":     "/this/is/a/base",
		"relative": []any{"../..", "x"},
	})
	require.False(t, res.IsError)

	var v valueResult
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &v))
	assert.Equal(t, "/this/is/x", v.Result)
}

func TestMCPTool_Root(t *testing.T) {
	e := newExt(posix())
	res := callTool(t, e, "path_root", map[string]any{"path": "//server/share", "platform": "windows"})
	require.False(t, res.IsError)

	var r rootResult
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &r))
	assert.Equal(t, 8, r.Root)
	assert.True(t, r.Absolute)
	assert.Equal(t, "windows", r.Platform)
}

func TestMCPTool_Walkup(t *testing.T) {
	s := posix()
	s.walkLimit = 2
	e := newExt(s)

	res := callTool(t, e, "path_walkup", map[string]any{"path": "/a/b/c"})
	require.False(t, res.IsError)
	var w walkResult
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &w))
	assert.Equal(t, []string{"/a/b/c", "/a/b/"}, w.Dirs)

	res = callTool(t, e, "path_walkup", map[string]any{"path": "/a/b/c", "limit": float64(0)})
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &w))
	assert.Equal(t, []string{"/a/b/c", "/a/b/", "/a/", "/"}, w.Dirs)

	res = callTool(t, e, "path_walkup", map[string]any{"path": "/a", "limit": float64(-1)})
	assert.True(t, res.IsError)
}

func TestMCPTool_Common(t *testing.T) {
	e := newExt(posix())
	res := callTool(t, e, "path_common", map[string]any{"a": "a/b/c/foo.txt", "b": "a/b/c/d/e/bar.txt"})
	require.False(t, res.IsError)

	var r commonResult
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &r))
	assert.Equal(t, 6, r.Length)
	assert.Equal(t, "a/b/c/", r.Prefix)
}

func TestMCPTool_Prettify(t *testing.T) {
	dir := t.TempDir()
	e := newExt(posix())

	res := callTool(t, e, "path_prettify", map[string]any{"path": dir + "/./"})
	require.False(t, res.IsError, text(t, res))

	res = callTool(t, e, "path_prettify", map[string]any{"path": "missing", "base": dir})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "not found")
}

// stubContext supplies fixed settings to Init and HandleEvent.
type stubContext struct {
	extension.Context
	platform fspath.Platform
}

func (c stubContext) Platform() fspath.Platform { return c.platform }

func TestHandleEvent_IgnoresOtherEvents(t *testing.T) {
	e := newExt(posix())
	require.NoError(t, e.HandleEvent(stubContext{platform: fspath.Windows}, otherEvent{}))
	assert.Equal(t, fspath.POSIX, e.current().platform)
}

type otherEvent struct{}

func (otherEvent) EventType() extension.EventType { return "test:other" }
