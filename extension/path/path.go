// Package path provides the path extension: one command and one MCP tool
// for each textual path operation in internal/fspath.
// Registers commands: dirname, basename, join, todir, squash, root, walkup,
// resolve, apply, common, decode, fromurl, prettify, relative.
//
// Every command validates its input, optionally precomposes it to NFC,
// writes its result through a Buffer bounded by limits.max_path and records
// the invocation in the audit log.
package path

import (
	"sync"

	"github.com/jpl-au/pathkit/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the path extension.
type Extension struct {
	mu sync.RWMutex
	s  settings
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.EventHandler  = (*Extension)(nil)
)

// Name returns "path".
func (e *Extension) Name() string { return "path" }

// Init captures the platform and limits for this invocation.
func (e *Extension) Init(ctx extension.Context) error {
	e.load(ctx)
	return nil
}

// HandleEvent refreshes cached settings after a config change, so a
// running MCP server applies the new platform or limits to later calls.
func (e *Extension) HandleEvent(ctx extension.Context, evt extension.Event) error {
	if evt.EventType() == extension.EventConfigChange {
		e.load(ctx)
	}
	return nil
}

func (e *Extension) load(ctx extension.Context) {
	s := settingsFrom(ctx)
	e.mu.Lock()
	e.s = s
	e.mu.Unlock()
}

func (e *Extension) current() settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.s
}

// Commands returns one command per path operation.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newDirnameCmd(),
		e.newBasenameCmd(),
		e.newJoinCmd(),
		e.newToDirCmd(),
		e.newSquashCmd(),
		e.newRootCmd(),
		e.newWalkupCmd(),
		e.newResolveCmd(),
		e.newApplyCmd(),
		e.newCommonCmd(),
		e.newDecodeCmd(),
		e.newFromURLCmd(),
		e.newPrettifyCmd(),
		e.newRelativeCmd(),
	}
}
