// dirname.go implements the "pathkit dirname" and "pathkit basename" commands.

package path

import (
	"github.com/jpl-au/pathkit/internal/fspath"
	"github.com/spf13/cobra"
)

func (e *Extension) newDirnameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dirname <path>",
		Short: "Print the parent directory of a path",
		Long: `Print the parent directory of a path. Trailing slashes are ignored and a
root is never removed.

  pathkit dirname /usr/lib/       # /usr
  pathkit dirname file.txt        # .
  pathkit --platform windows dirname C:/foo   # C:/`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return e.runValue("dirname", args, dirname)
		},
	}
}

func dirname(s settings, in []string) (string, error) {
	buf := s.buffer()
	if err := s.platform.DirnameTo(buf, in[0]); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Extension) newBasenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basename <path>",
		Short: "Print the final segment of a path",
		Long: `Print the final segment of a path, ignoring trailing slashes.

  pathkit basename /usr/lib/      # lib
  pathkit basename /              # /
  pathkit basename ""             # .`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return e.runValue("basename", args, basename)
		},
	}
}

func basename(s settings, in []string) (string, error) {
	buf := s.buffer()
	if err := fspath.BasenameTo(buf, in[0]); err != nil {
		return "", err
	}
	return buf.String(), nil
}
