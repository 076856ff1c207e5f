// serve.go implements the "pathkit serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects. It is standalone so it
// can initialise extensions itself and report failures before serving.

package core

import (
	"fmt"

	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/internal/log"
	"github.com/jpl-au/pathkit/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Every path command is exposed as a tool (path_dirname, path_join, ...).
Tools accept an optional platform argument; otherwise --platform, then the
platform config key, decides the convention.`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	ext, err := cmd.ExtContext()
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	log.Event("core:serve", "serve").Platform(ext.Platform().String()).Write(nil)
	return mcp.Serve(ext)
}
