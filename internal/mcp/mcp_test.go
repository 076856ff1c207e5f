package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/config"
	"github.com/jpl-au/pathkit/internal/fspath"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

// isolate points config lookups at a fresh directory and returns handlers
// bound to a Context loaded from it.
func isolate(t *testing.T) *handlers {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := config.Load()
	require.NoError(t, err)
	ctx, err := extension.NewContext(cfg, "posix")
	require.NoError(t, err)
	return &handlers{ctx: ctx}
}

func TestParams(t *testing.T) {
	req := request(map[string]any{
		"s":     "value",
		"b":     true,
		"bs":    "true",
		"n":     float64(7),
		"ns":    "7",
		"list":  []any{"a", 1, "b"},
		"empty": []any{},
	})

	assert.Equal(t, "value", String(req, "s", "def"))
	assert.Equal(t, "def", String(req, "missing", "def"))
	assert.Equal(t, "def", String(req, "n", "def"))

	assert.True(t, Bool(req, "b", false))
	assert.False(t, Bool(req, "bs", false))
	assert.True(t, Bool(req, "missing", true))

	assert.Equal(t, 7, Int(req, "n", 0))
	assert.Equal(t, 3, Int(req, "ns", 3))

	assert.Equal(t, []string{"a", "b"}, Strings(req, "list"))
	assert.Empty(t, Strings(req, "empty"))
	assert.Nil(t, Strings(req, "missing"))
	assert.Nil(t, Strings(req, "s"))
}

func TestParams_NoArguments(t *testing.T) {
	var req mcp.CallToolRequest
	assert.Equal(t, "d", String(req, "x", "d"))
	assert.False(t, Bool(req, "x", false))
	assert.Equal(t, 1, Int(req, "x", 1))
	assert.Nil(t, Strings(req, "x"))
}

func TestJSONResult(t *testing.T) {
	res, err := JSONResult(map[string]int{"root": 0})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"root": 0}`, text(t, res))

	res, err = JSONResult(make(chan int))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestErrorResult(t *testing.T) {
	res, err := ErrorResult(fspath.ErrInvalidPath)
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "invalid path", text(t, res))
}

func TestParseGuideURI(t *testing.T) {
	topic, err := parseGuideURI("pathkit://guide/walkup")
	require.NoError(t, err)
	assert.Equal(t, "walkup", topic)

	topic, err = parseGuideURI("pathkit://guide/")
	require.NoError(t, err)
	assert.Empty(t, topic)

	for _, uri := range []string{"other://guide/x", "pathkit://guide/a/b", "walkup"} {
		_, err := parseGuideURI(uri)
		assert.ErrorIs(t, err, ErrInvalidURI, uri)
	}
}

func TestReadGuide(t *testing.T) {
	h := &handlers{}

	var req mcp.ReadResourceRequest
	req.Params.URI = "pathkit://guide/resolve"
	contents, err := h.readGuide(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "text/markdown", tc.MIMEType)
	assert.Contains(t, tc.Text, "resolve")

	req.Params.URI = "pathkit://guide/no-such-topic"
	_, err = h.readGuide(context.Background(), req)
	assert.Error(t, err)
}

func TestGetGuide(t *testing.T) {
	h := &handlers{}

	res, err := h.getGuide(context.Background(), request(map[string]any{}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "walkup")

	res, err = h.getGuide(context.Background(), request(map[string]any{"topic": "no-such-topic"}))
	require.NoError(t, err)

	var out struct {
		Error  string   `json:"error"`
		Topics []string `json:"available_topics"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &out))
	assert.NotEmpty(t, out.Error)
	assert.Contains(t, out.Topics, "resolve")
}

func TestConfigTools(t *testing.T) {
	h := isolate(t)

	res, err := h.configGet(context.Background(), request(map[string]any{}))
	require.NoError(t, err)
	var all map[string]string
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &all))
	assert.Contains(t, all, "platform")
	assert.Contains(t, all, "limits.max_path")

	res, err = h.configSet(context.Background(), request(map[string]any{"key": "limits.max_path", "value": "64"}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))
	assert.Equal(t, "limits.max_path = 64 (global)", text(t, res))
	assert.Equal(t, 64, h.ctx.Config().MaxPath())

	res, err = h.configGet(context.Background(), request(map[string]any{"key": "limits.max_path"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"limits.max_path": "64"}`, text(t, res))
}

func TestConfigTools_Errors(t *testing.T) {
	h := isolate(t)

	res, err := h.configGet(context.Background(), request(map[string]any{"key": "nope"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = h.configSet(context.Background(), request(map[string]any{"key": "platform"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "value is required")

	res, err = h.configSet(context.Background(), request(map[string]any{"key": "walk.limit", "value": "-1"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestNewServer(t *testing.T) {
	h := isolate(t)
	assert.NotNil(t, NewServer(h.ctx))
}
