/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config and wires up extensions.
//
// Extensions register during init() but aren't initialised until first
// command execution. This two-phase pattern allows extensions to declare
// commands before configuration is loaded. One Context is created and shared
// across all extensions.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/config"
)

// standaloneCommands lists commands that bypass extension initialisation.
// Built from extension-declared Standalone commands.
var standaloneCommands map[string]bool

func buildStandaloneCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}
	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Standalone); ok {
			for _, name := range s.StandaloneCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}

var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads configuration and injects the shared Context into
// every Initializable extension.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		ctx, err := extension.NewContext(cfg, PlatformFlag())
		if err != nil {
			initErr = err
			return
		}
		extContext = ctx

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// ExtContext initialises extensions if needed and returns the shared
// Context. Standalone commands that later need it (serve) call this.
func ExtContext() (extension.Context, error) {
	if err := initExtensions(); err != nil {
		return nil, err
	}
	return extContext, nil
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		standaloneCommands = buildStandaloneCommands()
	})
}
