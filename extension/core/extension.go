// Package core provides the core extension for pathkit.
// It registers commands: config, guide, llm, serve, version, check, history,
// vacuum.
package core

import (
	"github.com/jpl-au/pathkit/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension  = (*Extension)(nil)
	_ extension.Standalone = (*Extension)(nil)
)

// Name returns "core" - this extension provides the tool's own commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newLlmCmd(),
		newCheckCmd(),
		newHistoryCmd(),
		newVacuumCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - config and guide tools are built into the server.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// StandaloneCommands returns commands that do not need initialised
// extensions.
// config: Reports a broken config file itself, with the path to fix.
// serve: Initialises extensions itself before serving.
// check: Runs the path functions directly, independent of config.
// history, vacuum: Only touch the audit log.
// guide, llm, version: Informational.
func (e *Extension) StandaloneCommands() []string {
	return []string{"config", "serve", "check", "history", "vacuum", "guide", "llm", "version"}
}
