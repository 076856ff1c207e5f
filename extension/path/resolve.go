// resolve.go implements the "pathkit resolve" and "pathkit apply" commands.

package path

import (
	"github.com/spf13/cobra"
)

func (e *Extension) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Collapse . and .. segments",
		Long: `Collapse "." and ".." segments and runs of slashes without consulting the
filesystem. Leading ".." on a relative path is kept; climbing above an
absolute root is an error.

  pathkit resolve a/./b/../c      # a/c
  pathkit resolve ../../x         # ../../x
  pathkit resolve /..             # error`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return e.runValue("resolve", args, resolve)
		},
	}
}

func resolve(s settings, in []string) (string, error) {
	buf := s.buffer()
	if err := buf.Set(in[0]); err != nil {
		return "", err
	}
	if err := buf.ResolveRelative(s.platform); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Extension) newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <base> <relative>...",
		Short: "Apply relative paths to a base in order",
		Long: `Join each relative path onto the running result and resolve it.

  pathkit apply /this/is/a/base ../test               # /this/is/a/test
  pathkit apply https://host/a/repo.git ../b.git      # https://host/a/b.git
  pathkit apply / ..                                  # error`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return e.runValue("apply", args, apply)
		},
	}
}

func apply(s settings, in []string) (string, error) {
	buf := s.buffer()
	if err := buf.Set(in[0]); err != nil {
		return "", err
	}
	for _, rel := range in[1:] {
		if err := buf.ApplyRelative(s.platform, rel); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
