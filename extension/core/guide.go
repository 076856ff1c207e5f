// guide.go implements the "pathkit guide" command for documentation access.
//
// Guides are embedded in the binary via the guide package, so documentation
// is always available without external files.

package core

import (
	"fmt"
	"strings"

	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/guide"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the pathkit usage guide",
		Long: `Outputs the pathkit guide for humans and LLMs.

  pathkit guide           # main guide
  pathkit guide resolve   # resolve and apply
  pathkit guide windows   # drive letters and UNC paths`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			topics, _ := guide.List()
			return topics, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
			}
			render(content)
			return nil
		},
	}
}
