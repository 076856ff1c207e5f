// walkup.go implements the "pathkit walkup" command.
//
// The walk itself is fspath's; this file adds the entry limit, which is
// implemented by returning a private sentinel from the visitor and treating
// it as success.

package path

import (
	"errors"
	"fmt"

	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/format"
	"github.com/jpl-au/pathkit/internal/fspath"
	"github.com/spf13/cobra"
)

var (
	errLimit         = errors.New("walk limit reached")
	errNegativeLimit = errors.New("limit must not be negative")
)

// walkResult lists the directories visited by a walk-up.
type walkResult struct {
	Path     string   `json:"path"`
	Root     string   `json:"root,omitempty"`
	Platform string   `json:"platform"`
	Dirs     []string `json:"dirs"`
}

func (e *Extension) newWalkupCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "walkup <path>",
		Short: "List a path and each enclosing directory",
		Long: `List a path and each enclosing directory, deepest first.

  pathkit walkup /a/b/c           # /a/b/c /a/b/ /a/ /
  pathkit walkup /a/b/c --root /a # /a/b/c /a/b/ /a/
  pathkit walkup a/b --limit 1    # a/b

A relative path ends with an empty line for the current directory.
--limit defaults to the walk.limit config key (0 for no limit).`,
		Args: cobra.ExactArgs(1),
		RunE: e.runWalkup,
	}
	c.Flags().String(extension.FlagRoot, "", "Stop at this ancestor (ignored if not a prefix)")
	c.Flags().Int(extension.FlagLimit, 0, "Stop after N entries")
	c.Flags().BoolP(extension.FlagNull, "z", false, "Terminate entries with NUL instead of newline")
	return c
}

// walkup collects at most limit entries (all when limit is 0) of the walk
// from path up to root.
func walkup(s settings, path, root string, limit int) ([]string, error) {
	buf := s.buffer()
	if err := buf.Set(path); err != nil {
		return nil, &fspath.PathError{Op: "walkup", Path: path, Err: err}
	}

	var dirs []string
	err := buf.WalkUp(s.platform, root, func(dir string) error {
		dirs = append(dirs, dir)
		if limit > 0 && len(dirs) >= limit {
			return errLimit
		}
		return nil
	})
	if errors.Is(err, errLimit) {
		err = nil
	}
	return dirs, err
}

func (e *Extension) runWalkup(c *cobra.Command, args []string) error {
	s := e.current()
	root, _ := c.Flags().GetString(extension.FlagRoot)
	null, _ := c.Flags().GetBool(extension.FlagNull)
	limit := s.walkLimit
	if c.Flags().Changed(extension.FlagLimit) {
		limit, _ = c.Flags().GetInt(extension.FlagLimit)
	}

	dirs, err := walkFor(s, args[0], root, limit)
	record("path:walkup", "walkup", s, []string{args[0], root}, fmt.Sprintf("%d entries", len(dirs)), err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(walkResult{Path: args[0], Root: root, Platform: s.platform.String(), Dirs: dirs})
	}
	return format.Paths(cmd.Out(), dirs, null)
}

// walkFor validates the walk arguments and runs the walk. Shared by the
// command and the MCP tool.
func walkFor(s settings, path, root string, limit int) ([]string, error) {
	if limit < 0 {
		return nil, fmt.Errorf("walkup: %w", errNegativeLimit)
	}
	in, err := s.prepare("walkup", []string{path, root})
	if err != nil {
		return nil, err
	}
	return walkup(s, in[0], in[1], limit)
}
