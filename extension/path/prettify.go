// prettify.go implements the "pathkit prettify" command, the one path
// command that consults the filesystem.

package path

import (
	"os"
	"path/filepath"

	"github.com/jpl-au/pathkit/extension"
	"github.com/spf13/cobra"
)

// statExists reports whether path names an existing file or directory.
func statExists(path string) bool {
	_, err := os.Stat(filepath.FromSlash(path))
	return err == nil
}

func (e *Extension) newPrettifyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "prettify <path>",
		Short: "Resolve a path and check that it exists",
		Long: `Prepend --base to a relative path, collapse "." and ".." segments, drop a
trailing slash and check that the result exists.

  pathkit prettify ./src/../go.mod            # go.mod
  pathkit prettify --base /etc ./hosts        # /etc/hosts
  pathkit prettify --dir /usr/./lib           # /usr/lib/`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			base, _ := c.Flags().GetString(extension.FlagBase)
			dir, _ := c.Flags().GetBool(extension.FlagDir)
			return e.runValue("prettify", []string{args[0], base}, prettify(dir, statExists))
		},
	}
	c.Flags().String(extension.FlagBase, "", "Directory a relative path is taken from")
	c.Flags().Bool(extension.FlagDir, false, "Print the result in directory form")
	return c
}

// prettify expects in to hold the path and the base directory.
func prettify(dir bool, exists func(string) bool) valueFunc {
	return func(s settings, in []string) (string, error) {
		if dir {
			return s.platform.PrettifyDir(in[0], in[1], exists)
		}
		return s.platform.Prettify(in[0], in[1], exists)
	}
}
