// llm.go implements the "pathkit llm" command, a quick start for LLMs.
//
// Reads guide/llm.md so the onboarding text has a single source.

package core

import (
	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/guide"
	"github.com/spf13/cobra"
)

func newLlmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "llm",
		Short: "Getting started guide for LLMs",
		Long:  `Quick reference for LLMs to discover available commands, MCP tools and usage patterns.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			content, err := guide.Get("llm")
			if err != nil {
				return cmd.PrintJSONError(err)
			}
			render(content)
			return nil
		},
	}
}
