// vacuum.go implements the "pathkit vacuum" command for audit log pruning.
//
// Separated from extension.go because vacuum is destructive and requires
// special handling including confirmation prompts and dry-run support.

package core

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/duration"
	"github.com/jpl-au/pathkit/internal/log"
	"github.com/spf13/cobra"
)

// vacuumResult is the JSON form of a prune.
type vacuumResult struct {
	Removed   int64  `json:"removed"`
	DryRun    bool   `json:"dry_run"`
	OlderThan string `json:"older_than,omitempty"`
}

func newVacuumCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "vacuum",
		Short: "Prune old entries from the audit log",
		Long: `Permanently delete audit log entries.

  pathkit vacuum --older-than 30d     # keep the last 30 days
  pathkit vacuum --older-than 4w -n   # count what would go
  pathkit vacuum --force              # everything, no prompt

This is irreversible. Use --force to skip confirmation.

Ages: 12h (hours), 7d (days), 4w (weeks), 3m (30-day months), 1y (365 days)`,
		Args: cobra.NoArgs,
		RunE: runVacuum,
	}
	c.Flags().String(extension.FlagOlderThan, "", "Only prune entries older than this age (e.g., 12h, 7d, 4w, 3m, 1y)")
	c.Flags().BoolP(extension.FlagDryRun, "n", false, "Show what would be deleted")
	c.Flags().BoolP(extension.FlagForce, "f", false, "Skip confirmation")
	return c
}

func runVacuum(c *cobra.Command, _ []string) error {
	olderThan, _ := c.Flags().GetString(extension.FlagOlderThan)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)
	force, _ := c.Flags().GetBool(extension.FlagForce)

	var age *time.Duration
	if olderThan != "" {
		d, err := duration.Parse(olderThan)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("parse duration %q: %w", olderThan, err))
		}
		age = &d
	}

	if !dryRun && !force {
		scope := "all audit log entries"
		if age != nil {
			scope = "audit log entries older than " + olderThan
		}
		fmt.Fprintf(cmd.Out(), "Permanently delete %s? This cannot be undone. [y/N] ", scope)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("reading confirmation: %w", err))
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(cmd.Out(), "Cancelled")
			return nil
		}
	}

	n, err := log.Prune(age, dryRun)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("vacuum: %w", err))
	}
	// Logged after the prune so the entry itself survives.
	log.Event("core:vacuum", "vacuum").
		Detail("older_than", olderThan).
		Detail("dry_run", dryRun).
		Detail("count", n).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(vacuumResult{Removed: n, DryRun: dryRun, OlderThan: olderThan})
	}
	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}
	fmt.Fprintf(cmd.Out(), "%s %s entr%s\n", verb, humanize.Comma(n), plural(n))
	return nil
}

func plural(n int64) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
