// join.go implements the "pathkit join", "pathkit todir" and
// "pathkit squash" commands.

package path

import (
	"fmt"

	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/fspath"
	"github.com/jpl-au/pathkit/internal/validate"
	"github.com/spf13/cobra"
)

func (e *Extension) newJoinCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "join <segment> <segment>...",
		Short: "Join path segments with one separator at each seam",
		Long: `Join path segments so each seam carries exactly one separator. Leading
separators on later segments are dropped.

  pathkit join /usr lib           # /usr/lib
  pathkit join /usr/ /lib         # /usr/lib
  pathkit join a ""               # a/
  pathkit join --sep , a b c      # a,b,c`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			sepFlag, _ := c.Flags().GetString(extension.FlagSep)
			sep, err := validate.Separator(sepFlag)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("join: %w", err))
			}
			return e.runValue("join", args, joinWith(sep))
		},
	}
	c.Flags().String(extension.FlagSep, "/", "Separator byte")
	return c
}

func joinWith(sep byte) valueFunc {
	return func(s settings, in []string) (string, error) {
		buf := s.buffer()
		if err := buf.JoinN(sep, in...); err != nil {
			return "", &fspath.PathError{Op: "join", Path: in[0], Err: err}
		}
		return buf.String(), nil
	}
}

func (e *Extension) newToDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "todir <path>",
		Short: "Append a trailing slash if missing",
		Long: `Print a path in directory form: a trailing slash is appended unless the
path is empty or already ends with one.

  pathkit todir /usr/lib          # /usr/lib/
  pathkit todir /usr/lib/         # /usr/lib/`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return e.runValue("todir", args, todir)
		},
	}
}

func todir(s settings, in []string) (string, error) {
	buf := s.buffer()
	if err := buf.Set(in[0]); err != nil {
		return "", &fspath.PathError{Op: "todir", Path: in[0], Err: err}
	}
	if err := buf.ToDir(); err != nil {
		return "", &fspath.PathError{Op: "todir", Path: in[0], Err: err}
	}
	return buf.String(), nil
}

func (e *Extension) newSquashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "squash <path>",
		Short: "Collapse runs of slashes",
		Long: `Collapse every run of slashes to a single slash. No other change is made.

  pathkit squash //a///b/         # /a/b/`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return e.runValue("squash", args, squash)
		},
	}
}

func squash(_ settings, in []string) (string, error) {
	return fspath.SquashSlashes(in[0]), nil
}
