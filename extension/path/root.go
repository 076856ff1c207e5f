// root.go implements the "pathkit root" command.

package path

import (
	"fmt"
	"strconv"

	"github.com/jpl-au/pathkit/cmd"
	"github.com/spf13/cobra"
)

// rootResult reports where the root prefix of a path ends.
type rootResult struct {
	Path     string `json:"path"`
	Platform string `json:"platform"`
	Root     int    `json:"root"`
	Absolute bool   `json:"absolute"`
}

func (e *Extension) newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root <path>",
		Short: "Print the offset of the root separator",
		Long: `Print the byte offset of the separator that ends the root prefix, or -1
for a relative path.

  pathkit root /usr                               # 0
  pathkit root usr                                # -1
  pathkit --platform windows root C:/foo          # 2
  pathkit --platform windows root //server/share  # 8`,
		Args: cobra.ExactArgs(1),
		RunE: e.runRoot,
	}
}

func rootOf(s settings, path string) rootResult {
	n := s.platform.Root(path)
	return rootResult{
		Path:     path,
		Platform: s.platform.String(),
		Root:     n,
		Absolute: n >= 0,
	}
}

func (e *Extension) runRoot(_ *cobra.Command, args []string) error {
	s := e.current()
	in, err := s.prepare("root", args)
	var r rootResult
	if err == nil {
		r = rootOf(s, in[0])
	}
	record("path:root", "root", s, args, strconv.Itoa(r.Root), err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if !cmd.JSON() {
		fmt.Fprintln(cmd.Out(), r.Root)
		return nil
	}
	return cmd.PrintJSON(r)
}
