// common.go implements the "pathkit common" command.

package path

import (
	"fmt"
	"strconv"

	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/internal/fspath"
	"github.com/spf13/cobra"
)

// commonResult reports the shared directory prefix of two paths.
type commonResult struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Length int    `json:"length"`
	Prefix string `json:"prefix"`
}

func (e *Extension) newCommonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "common <path> <path>",
		Short: "Print the length of the common directory prefix",
		Long: `Print the length of the longest prefix two paths share that ends at a
separator, or 0.

  pathkit common foo/one.txt foo/two.txt              # 4
  pathkit common a/b/c/foo.txt a/b/c/d/e/bar.txt      # 6
  pathkit common foo/bar.txt bar/foo.txt              # 0`,
		Args: cobra.ExactArgs(2),
		RunE: e.runCommon,
	}
}

func commonOf(s settings, args []string) (commonResult, error) {
	in, err := s.prepare("common", args)
	if err != nil {
		return commonResult{}, err
	}
	n := fspath.CommonDirlen(in[0], in[1])
	return commonResult{A: in[0], B: in[1], Length: n, Prefix: in[0][:n]}, nil
}

func (e *Extension) runCommon(_ *cobra.Command, args []string) error {
	s := e.current()
	r, err := commonOf(s, args)
	record("path:common", "common", s, args, strconv.Itoa(r.Length), err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if !cmd.JSON() {
		fmt.Fprintln(cmd.Out(), r.Length)
		return nil
	}
	return cmd.PrintJSON(r)
}
