// relative.go implements the "pathkit relative" command.

package path

import (
	"github.com/jpl-au/pathkit/internal/fspath"
	"github.com/spf13/cobra"
)

func (e *Extension) newRelativeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relative <path> <parent>",
		Short: "Rewrite a path relative to another",
		Long: `Rewrite a path relative to parent, climbing with "../" where parent is not
an ancestor. The two must share a leading segment or both be absolute.

  pathkit relative /foo/bar/baz.c /foo/bar        # baz.c
  pathkit relative /foo/bar/baz.c /foo/bar/asdf   # ../baz.c
  pathkit relative foo/x bar/y                    # error`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return e.runValue("relative", args, relative)
		},
	}
}

func relative(_ settings, in []string) (string, error) {
	return fspath.MakeRelative(in[0], in[1])
}
