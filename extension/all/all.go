// Package all imports all built-in pathkit extensions.
// Import this package to register all built-in commands.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/jpl-au/pathkit/extension/core"
	_ "github.com/jpl-au/pathkit/extension/path"
)
