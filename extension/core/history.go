// history.go implements the "pathkit history" command, a view of the audit
// log.
//
// Every CLI command and MCP tool call is recorded in
// ~/.pathkit/log/pathkit-log.db. This lists the most recent entries, newest
// first, optionally filtered by source, outcome or project.

package core

import (
	"fmt"

	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/format"
	"github.com/jpl-au/pathkit/internal/log"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Show recent operations from the audit log",
		Long: `Show recent operations from the audit log, newest first.

  pathkit history                     # last 20 operations
  pathkit history -n 50 --long        # more, with platform, result and details
  pathkit history --failed            # only failures
  pathkit history --source mcp:path_join
  pathkit history --project           # only this working directory`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Number of entries")
	c.Flags().String(extension.FlagSource, "", "Only entries from this source (e.g., path:join)")
	c.Flags().Bool(extension.FlagFailed, false, "Only failed operations")
	c.Flags().Bool(extension.FlagProject, false, "Only the current working directory")
	c.Flags().BoolP(extension.FlagLong, "l", false, "Long format")
	c.Flags().Bool(extension.FlagNoColour, false, "Disable colour")
	return c
}

func runHistory(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	source, _ := c.Flags().GetString(extension.FlagSource)
	failed, _ := c.Flags().GetBool(extension.FlagFailed)
	project, _ := c.Flags().GetBool(extension.FlagProject)
	long, _ := c.Flags().GetBool(extension.FlagLong)
	noColour, _ := c.Flags().GetBool(extension.FlagNoColour)

	if limit < 1 {
		return cmd.PrintJSONError(fmt.Errorf("history: --limit must be at least 1"))
	}

	recs, err := log.Recent(log.Query{Limit: limit, Source: source, Failed: failed, Project: project})
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("history: %w", err))
	}

	if cmd.JSON() {
		if recs == nil {
			recs = []log.Record{}
		}
		return cmd.PrintJSON(recs)
	}
	if len(recs) == 0 {
		fmt.Fprintln(cmd.Out(), "No matching entries")
		return nil
	}
	if long {
		return format.Long(cmd.Out(), recs, colour(noColour))
	}
	return format.Records(cmd.Out(), recs)
}
