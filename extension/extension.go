// Package extension provides the plugin architecture for pathkit. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, enabling modular feature development without touching core code.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for pathkit extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before any of their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Standalone is an optional interface for extensions with commands that
// run without extension initialisation. Commands returned by
// StandaloneCommands() do not load configuration in PersistentPreRunE.
//
// Use cases:
// 1. Commands that must keep working when the config file is broken (config)
// 2. Commands that manage their own lifecycle (serve)
// 3. Informational commands (guide, version)
type Standalone interface {
	StandaloneCommands() []string
}
