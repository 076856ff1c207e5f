// Package mcp implements the Model Context Protocol server, exposing pathkit
// operations to LLMs over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/pathkit/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
func Serve(extCtx extension.Context) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx)

	slog.Info("pathkit MCP server ready",
		"version", Version,
		"transport", "stdio",
		"platform", extCtx.Platform().String())

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with the built-in guide and config tools,
// the guide resources, and every tool contributed by registered extensions.
func NewServer(extCtx extension.Context) *server.MCPServer {
	h := &handlers{ctx: extCtx}

	s := server.NewMCPServer(
		"pathkit",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	for _, ext := range extension.All() {
		for _, t := range ext.MCPTools() {
			s.AddTool(t.Tool, h.wrap(t.Handler))
			slog.Debug("registered tool", "extension", ext.Name(), "tool", t.Tool.Name)
		}
	}
	return s
}

// handlers provides MCP request handlers with access to the shared
// extension Context.
type handlers struct {
	ctx extension.Context
}

// wrap adapts an extension handler to the server's handler signature.
func (h *handlers) wrap(fn extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return fn(ctx, h.ctx, req)
	}
}

// registerResources adds URI-based access to the embedded guides.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"pathkit://guide/{topic}",
			"Guide",
			mcp.WithTemplateDescription("Read a pathkit guide page by topic"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuide,
	)
}

// registerTools exposes process-wide operations (guide, config) as MCP tools.
// Path operations come from extensions.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("pathkit_guide",
			mcp.WithDescription("Get help/guide content for pathkit operations"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'walkup', 'resolve', 'fromurl') or empty for index")),
		),
		h.getGuide,
	)

	s.AddTool(
		mcp.NewTool("pathkit_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (platform, unicode.precompose, limits.max_path, walk.limit) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("pathkit_config_set",
			mcp.WithDescription("Set a configuration value. Takes effect for subsequent tool calls."),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key (platform, unicode.precompose, limits.max_path, walk.limit)")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
		),
		h.configSet,
	)
}
