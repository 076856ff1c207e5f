// version.go implements the "pathkit version" command.

package core

import (
	"fmt"

	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the build tag, build time, git commit, Go version, host platform and
the path style "--platform native" resolves to on this build.

  pathkit version
  pathkit version --short     # build tag only, for scripts
  pathkit -o json version`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()
			if cmd.JSON() {
				return cmd.PrintJSON(info)
			}
			if short, _ := c.Flags().GetBool(extension.FlagShort); short {
				fmt.Fprintln(cmd.Out(), version.Short())
				return nil
			}
			fmt.Fprint(cmd.Out(), info.String())
			return nil
		},
	}
	c.Flags().Bool(extension.FlagShort, false, "Print only the build tag")
	return c
}
