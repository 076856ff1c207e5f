// mcp.go exposes every path command as an MCP tool named path_<command>.
//
// Tools accept an optional "platform" argument that overrides the configured
// convention for that call only. Results are always JSON.

package path

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jpl-au/pathkit/extension"
	pkmcp "github.com/jpl-au/pathkit/internal/mcp"
	"github.com/jpl-au/pathkit/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

var platformParam = mcp.WithString("platform",
	mcp.Description("Path convention for this call: posix, windows or native (default: configured)"))

// MCPTools returns one tool per path command.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		e.singleTool("dirname", "Parent directory of a path. Trailing slashes are ignored; a root is never removed.", dirname),
		e.singleTool("basename", "Final segment of a path, ignoring trailing slashes", basename),
		e.singleTool("todir", "Path in directory form (trailing slash appended if missing)", todir),
		e.singleTool("squash", "Collapse runs of slashes to one", squash),
		e.singleTool("resolve", "Collapse . and .. segments and runs of slashes. Fails when .. climbs above an absolute root.", resolve),
		{
			Tool: mcp.NewTool("path_join",
				mcp.WithDescription("Join segments with exactly one separator at each seam"),
				mcp.WithArray("parts", mcp.Required(), mcp.Description("Segments to join, in order"), mcp.Items(map[string]any{"type": "string"})),
				mcp.WithString("sep", mcp.Description("Single-byte separator (default: /)")),
				platformParam,
			),
			Handler: e.joinTool,
		},
		{
			Tool: mcp.NewTool("path_apply",
				mcp.WithDescription("Apply relative paths to a base in order, resolving after each"),
				mcp.WithString("base", mcp.Required(), mcp.Description("Starting path")),
				mcp.WithArray("relative", mcp.Required(), mcp.Description("Relative paths to apply"), mcp.Items(map[string]any{"type": "string"})),
				platformParam,
			),
			Handler: e.applyTool,
		},
		{
			Tool: mcp.NewTool("path_root",
				mcp.WithDescription("Offset of the separator ending the root prefix, or -1 for a relative path"),
				mcp.WithString("path", mcp.Required(), mcp.Description("Path to inspect")),
				platformParam,
			),
			Handler: e.rootTool,
		},
		{
			Tool: mcp.NewTool("path_walkup",
				mcp.WithDescription("A path and each enclosing directory, deepest first"),
				mcp.WithString("path", mcp.Required(), mcp.Description("Starting path")),
				mcp.WithString("root", mcp.Description("Stop at this ancestor (ignored if not a prefix)")),
				mcp.WithNumber("limit", mcp.Description("Stop after this many entries (default: walk.limit config)")),
				platformParam,
			),
			Handler: e.walkupTool,
		},
		{
			Tool: mcp.NewTool("path_common",
				mcp.WithDescription("Length of the common directory prefix of two paths"),
				mcp.WithString("a", mcp.Required(), mcp.Description("First path")),
				mcp.WithString("b", mcp.Required(), mcp.Description("Second path")),
			),
			Handler: e.commonTool,
		},
		{
			Tool: mcp.NewTool("path_decode",
				mcp.WithDescription("Percent-decode a string; malformed escapes are kept"),
				mcp.WithString("value", mcp.Required(), mcp.Description("String to decode")),
			),
			Handler: e.valueTool("decode", []string{"value"}, decode),
		},
		{
			Tool: mcp.NewTool("path_fromurl",
				mcp.WithDescription("Local path named by a file:// URL (empty or localhost host only)"),
				mcp.WithString("url", mcp.Required(), mcp.Description("file:// URL")),
				platformParam,
			),
			Handler: e.valueTool("fromurl", []string{"url"}, fromURL),
		},
		{
			Tool: mcp.NewTool("path_prettify",
				mcp.WithDescription("Resolve a path against a base, drop a trailing slash and check it exists"),
				mcp.WithString("path", mcp.Required(), mcp.Description("Path to prettify")),
				mcp.WithString("base", mcp.Description("Directory a relative path is taken from")),
				mcp.WithBoolean("dir", mcp.Description("Return the result in directory form")),
				platformParam,
			),
			Handler: e.prettifyTool,
		},
		{
			Tool: mcp.NewTool("path_relative",
				mcp.WithDescription("Rewrite a path relative to a parent directory"),
				mcp.WithString("path", mcp.Required(), mcp.Description("Path to rewrite")),
				mcp.WithString("parent", mcp.Required(), mcp.Description("Directory to make it relative to")),
			),
			Handler: e.valueTool("relative", []string{"path", "parent"}, relative),
		},
	}
}

// singleTool builds a tool taking one required "path" argument.
func (e *Extension) singleTool(op, desc string, fn valueFunc) extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("path_"+op,
			mcp.WithDescription(desc),
			mcp.WithString("path", mcp.Required(), mcp.Description("Input path")),
			platformParam,
		),
		Handler: e.valueTool(op, []string{"path"}, fn),
	}
}

// valueTool returns a handler that reads the named string arguments in
// order and runs fn over them.
func (e *Extension) valueTool(op string, params []string, fn valueFunc) extension.MCPHandler {
	return func(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := make([]string, len(params))
		for i, name := range params {
			v, err := req.RequireString(name)
			if err != nil {
				return mcp.NewToolResultError(name + " is required"), nil //nolint:nilerr
			}
			args[i] = v
		}
		return e.toolValue(req, op, args, fn)
	}
}

func (e *Extension) joinTool(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	parts := pkmcp.Strings(req, "parts")
	if len(parts) == 0 {
		return mcp.NewToolResultError("parts is required"), nil
	}
	sep, err := validate.Separator(pkmcp.String(req, "sep", "/"))
	if err != nil {
		return pkmcp.ErrorResult(err)
	}
	return e.toolValue(req, "join", parts, joinWith(sep))
}

func (e *Extension) applyTool(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base, err := req.RequireString("base")
	if err != nil {
		return mcp.NewToolResultError("base is required"), nil //nolint:nilerr
	}
	rels := pkmcp.Strings(req, "relative")
	if len(rels) == 0 {
		return mcp.NewToolResultError("relative is required"), nil
	}
	return e.toolValue(req, "apply", append([]string{base}, rels...), apply)
}

func (e *Extension) prettifyTool(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	base := pkmcp.String(req, "base", "")
	dir := pkmcp.Bool(req, "dir", false)
	return e.toolValue(req, "prettify", []string{p, base}, prettify(dir, statExists))
}

func (e *Extension) rootTool(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	s, err := e.current().withPlatform(pkmcp.String(req, "platform", ""))
	if err != nil {
		return pkmcp.ErrorResult(err)
	}
	in, err := s.prepare("root", []string{p})
	var r rootResult
	if err == nil {
		r = rootOf(s, in[0])
	}
	record("mcp:path_root", "root", s, []string{p}, strconv.Itoa(r.Root), err)
	if err != nil {
		return pkmcp.ErrorResult(err)
	}
	return pkmcp.JSONResult(r)
}

func (e *Extension) walkupTool(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	s, err := e.current().withPlatform(pkmcp.String(req, "platform", ""))
	if err != nil {
		return pkmcp.ErrorResult(err)
	}
	root := pkmcp.String(req, "root", "")
	limit := pkmcp.Int(req, "limit", s.walkLimit)

	dirs, err := walkFor(s, p, root, limit)
	record("mcp:path_walkup", "walkup", s, []string{p, root}, fmt.Sprintf("%d entries", len(dirs)), err)
	if err != nil {
		return pkmcp.ErrorResult(err)
	}
	return pkmcp.JSONResult(walkResult{Path: p, Root: root, Platform: s.platform.String(), Dirs: dirs})
}

func (e *Extension) commonTool(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, errA := req.RequireString("a")
	b, errB := req.RequireString("b")
	if errA != nil || errB != nil {
		return mcp.NewToolResultError("a and b are required"), nil
	}
	s := e.current()
	r, err := commonOf(s, []string{a, b})
	record("mcp:path_common", "common", s, []string{a, b}, strconv.Itoa(r.Length), err)
	if err != nil {
		return pkmcp.ErrorResult(err)
	}
	return pkmcp.JSONResult(r)
}
