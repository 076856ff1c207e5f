// config.go implements the "pathkit config" command for configuration management.
//
// Separated from extension.go to isolate config-specific logic including
// the local vs global config precedence rules.
//
// Config follows a cascade model similar to git: local config
// (.pathkit/config.yaml) takes precedence over global
// (~/.pathkit/config.yaml). The --local flag forces use of local config even
// if it doesn't exist yet.

package core

import (
	"fmt"

	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/config"
	"github.com/jpl-au/pathkit/internal/log"
	"github.com/spf13/cobra"
)

// configResult is the JSON form of a config read or write.
type configResult struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Scope string `json:"scope,omitempty"`
}

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  pathkit config                      # show config
  pathkit config platform             # show platform value
  pathkit config platform windows     # set platform
  pathkit config walk.limit 10        # cap walkup output

Keys: platform, unicode.precompose, limits.max_path, walk.limit

Configuration locations:
  Global: ~/.pathkit/config.yaml
  Local:  .pathkit/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.pathkit/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("core:config", "list").Detail("scope", scopeName).Write(nil)
		if cmd.JSON() {
			return cmd.PrintJSON(all)
		}
		for _, k := range config.ValidKeys() {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(configResult{Key: args[0], Value: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").
			Detail("key", args[0]).
			Detail("value", args[1]).
			Detail("scope", scopeName).
			Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}

		v, _ := cfg.Get(args[0])
		if cmd.JSON() {
			return cmd.PrintJSON(configResult{Key: args[0], Value: v, Scope: scopeName})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], v, scopeName)
	}
	return nil
}
