// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation concerns like
// column alignment and colourised output.
package format

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jpl-au/pathkit/internal/log"
)

const (
	red   = "\033[31m"
	reset = "\033[0m"
)

// dash stands in for empty columns.
func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// clip shortens s to n bytes, marking the cut with "...".
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// Records prints audit entries one per line in a compact form, with
// relative times ("3 minutes ago").
func Records(w io.Writer, recs []log.Record) error {
	for _, r := range recs {
		status := "ok"
		if !r.Success {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%-16s  %-4s  %-18s  %s\n",
			humanize.Time(time.Unix(r.Start, 0)),
			status,
			r.Source,
			dash(r.Path),
		)
	}
	return nil
}

// Long prints audit entries in aligned columns.
//
// Column order is ID, WHEN, PLATFORM, SOURCE, PATH, RESULT. Fixed-width
// columns come first; SOURCE and PATH are padded to the widest value so the
// variable-length RESULT trails at the end. Failed entries show the error in
// place of the result, in red when colour is set.
func Long(w io.Writer, recs []log.Record, colour bool) error {
	if len(recs) == 0 {
		return nil
	}

	maxSource, maxPath := 6, 4 // minimum "SOURCE", "PATH"
	for _, r := range recs {
		maxSource = max(maxSource, len(r.Source))
		maxPath = max(maxPath, len(clip(dash(r.Path), 48)))
	}

	fmt.Fprintf(w, "%6s  %-16s  %-8s  %-*s  %-*s  %s\n",
		"ID", "WHEN", "PLATFORM", maxSource, "SOURCE", maxPath, "PATH", "RESULT")

	for _, r := range recs {
		when := time.Unix(r.Start, 0).Format("2006-01-02 15:04")
		result := dash(r.Result)
		if !r.Success {
			result = "error: " + r.Error
			if colour {
				result = red + result + reset
			}
		}
		fmt.Fprintf(w, "%6d  %s  %-8s  %-*s  %-*s  %s\n",
			r.ID, when, dash(r.Platform),
			maxSource, r.Source,
			maxPath, clip(dash(r.Path), 48),
			result)
		if len(r.Detail) > 0 {
			fmt.Fprintf(w, "%6s  %s\n", "", details(r.Detail))
		}
	}
	return nil
}

// details renders a detail map as sorted key=value pairs.
func details(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, m[k])
	}
	return strings.Join(parts, " ")
}

// Paths prints one path per line, or NUL-terminated when null is set.
func Paths(w io.Writer, paths []string, null bool) error {
	term := "\n"
	if null {
		term = "\x00"
	}
	for _, p := range paths {
		if _, err := io.WriteString(w, p+term); err != nil {
			return err
		}
	}
	return nil
}
