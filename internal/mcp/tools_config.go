// tools_config.go implements MCP tools for configuration management.
//
// Config changes made through the server are saved, then the shared
// extension Context is reloaded and a ConfigChangeEvent is fired so that
// extensions caching settings pick up the new values without a restart.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/config"
	"github.com/jpl-au/pathkit/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles pathkit_config_get tool calls.
func (h *handlers) configGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	cfg := h.ctx.Config()

	key := String(req, "key", "")
	if key == "" {
		log.Event("mcp:config_get", "list").Write(nil)
		return JSONResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:config_get", "get").Detail("key", key).Write(err)

	if err != nil {
		return ErrorResult(err)
	}
	return JSONResult(map[string]string{key: v})
}

// configSet handles pathkit_config_set tool calls.
func (h *handlers) configSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	l := log.Event("mcp:config_set", "set").Detail("key", key).Detail("value", value)

	cfg, err := config.Load()
	if err != nil {
		l.Write(err)
		return ErrorResult(err)
	}
	if err := cfg.Set(key, value); err != nil {
		l.Write(err)
		return ErrorResult(err)
	}
	err = cfg.Save()
	l.Write(err)
	if err != nil {
		return ErrorResult(err)
	}

	scope := "global"
	if cfg.Scope() == config.ScopeLocal {
		scope = "local"
	}

	if err := h.ctx.Reload(); err != nil {
		log.Event("mcp:config_set", "reload").Write(err)
		return mcp.NewToolResultText(fmt.Sprintf("%s = %s (warning: reload failed, restart server to apply: %v)", key, value, err)), nil
	}
	extension.Fire(h.ctx, extension.ConfigChangeEvent{Key: key, Value: value, Scope: scope})

	return mcp.NewToolResultText(fmt.Sprintf("%s = %s (%s)", key, value, scope)), nil
}
