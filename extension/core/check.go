// check.go implements the "pathkit check" conformance runner.
//
// Each file argument is a YAML case file; with none the embedded suite runs.
// Mismatches print a diff of expected against actual output, and any failure
// makes the command exit non-zero.

package core

import (
	"errors"
	"fmt"

	"github.com/jpl-au/pathkit/cmd"
	"github.com/jpl-au/pathkit/extension"
	"github.com/jpl-au/pathkit/internal/conformance"
	"github.com/jpl-au/pathkit/internal/log"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned when at least one case fails.
var ErrCheckFailed = errors.New("conformance check failed")

// checkResult is the JSON form of one suite's report.
type checkResult struct {
	Source   string        `json:"source"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Failures []checkFailed `json:"failures,omitempty"`
}

type checkFailed struct {
	Case  string `json:"case"`
	Want  string `json:"want,omitempty"`
	Error string `json:"expected_error,omitempty"`
	Got   string `json:"got"`
}

func newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check [file.yaml...]",
		Short: "Run a conformance suite against the path functions",
		Long: `Run conformance cases against the path functions.

  pathkit check                  # built-in suite
  pathkit check cases.yaml -v    # custom cases, list passes too

Case file format:

  cases:
    - op: dirname
      args: ["/usr/lib"]
      want: /usr
    - op: resolve
      args: ["/.."]
      error: invalid path

platform defaults to posix. See "pathkit guide check".`,
		RunE: runCheck,
	}
	c.Flags().BoolP(extension.FlagVerbose, "v", false, "List passing cases too")
	c.Flags().Bool(extension.FlagNoColour, false, "Disable colour in diffs")
	return c
}

func runCheck(c *cobra.Command, args []string) error {
	verbose, _ := c.Flags().GetBool(extension.FlagVerbose)
	noColour, _ := c.Flags().GetBool(extension.FlagNoColour)

	var suites []conformance.Suite
	if len(args) == 0 {
		s, err := conformance.Builtin()
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("check: %w", err))
		}
		suites = append(suites, s)
	}
	for _, path := range args {
		s, err := conformance.LoadFile(path)
		if err != nil {
			log.Event("core:check", "check").Path(path).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("check: %w", err))
		}
		suites = append(suites, s)
	}

	failed := 0
	var results []checkResult
	for _, s := range suites {
		r := conformance.Run(s, conformance.Options{Progress: !cmd.JSON()})
		failed += r.Failed

		var err error
		if !r.OK() {
			err = fmt.Errorf("%d case(s) failed", r.Failed)
		}
		log.Event("core:check", "check").
			Path(s.Source).
			Result(fmt.Sprintf("%d passed", r.Passed)).
			Detail("failed", r.Failed).
			Write(err)

		if cmd.JSON() {
			results = append(results, toCheckResult(r))
			continue
		}
		r.Write(cmd.Out(), conformance.WriteOptions{Verbose: verbose, Colour: colour(noColour)})
	}

	if cmd.JSON() {
		if err := cmd.PrintJSON(results); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d case(s)", ErrCheckFailed, failed)
	}
	return nil
}

func toCheckResult(r conformance.Report) checkResult {
	out := checkResult{Source: r.Source, Passed: r.Passed, Failed: r.Failed}
	for _, o := range r.Outcomes {
		if o.Pass {
			continue
		}
		got := o.Got
		if o.Err != nil {
			got = "error: " + o.Err.Error()
		}
		out.Failures = append(out.Failures, checkFailed{
			Case:  o.Case.Label(),
			Want:  o.Case.Want,
			Error: o.Case.Error,
			Got:   got,
		})
	}
	return out
}
