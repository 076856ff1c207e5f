// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Separated to centralise the boilerplate of extracting typed parameters from
// MCP's generic argument map. Extensions use the exported helpers when
// building their own tool handlers.
//
// Extraction is permissive: a missing or mistyped optional parameter yields
// the caller's default rather than an error, because LLM clients frequently
// omit optional parameters or send them in unexpected formats.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// String extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or not a string.
func String(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// Bool extracts a boolean parameter from the MCP request arguments.
// A string "true" is not accepted; only JSON booleans are.
func Bool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// Int extracts an integer parameter from the MCP request arguments.
//
// JSON numbers decode as float64, so the value is asserted to float64 and
// then truncated.
func Int(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// Strings extracts a string array parameter from the MCP request arguments.
//
// Non-string elements are skipped. Returns nil (not an empty slice) when the
// parameter is absent.
func Strings(req mcp.CallToolRequest, name string) []string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	arr, ok := args[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// JSONResult serialises any value as indented JSON and wraps it in an MCP
// text result. Marshalling failures become MCP error results.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ErrorResult wraps err as an MCP error result so the client sees the
// message rather than a protocol failure.
func ErrorResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
