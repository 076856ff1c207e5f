package conformance

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jpl-au/pathkit/internal/diff"
	"github.com/jpl-au/pathkit/internal/progress"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("76")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Outcome is the result of running one case.
type Outcome struct {
	Case Case
	Got  string
	Err  error
	Pass bool
}

// Report collects the outcomes of a suite run.
type Report struct {
	Source   string
	Outcomes []Outcome
	Passed   int
	Failed   int
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Options configures a run.
type Options struct {
	Progress bool // show a progress line on stderr for large suites
}

// normalise drops trailing newlines; YAML block scalars add one and
// multi-valued results are newline-joined without one.
func normalise(s string) string {
	return strings.TrimRight(s, "\n")
}

// Check runs a single case.
func Check(c Case) Outcome {
	got, err := Eval(c)
	o := Outcome{Case: c, Got: got, Err: err}
	if c.Error != "" {
		o.Pass = err != nil && strings.Contains(err.Error(), c.Error)
	} else {
		o.Pass = err == nil && normalise(got) == normalise(c.Want)
	}
	return o
}

// Run executes every case in s.
func Run(s Suite, opts Options) Report {
	r := Report{Source: s.Source, Outcomes: make([]Outcome, 0, len(s.Cases))}

	var p *progress.Progress
	if opts.Progress {
		p = progress.New("check", len(s.Cases))
		defer p.Done()
	}

	for _, c := range s.Cases {
		o := Check(c)
		r.Outcomes = append(r.Outcomes, o)
		if o.Pass {
			r.Passed++
		} else {
			r.Failed++
		}
		if p != nil {
			p.Increment()
			p.Print()
		}
	}
	return r
}

// WriteOptions controls report rendering.
type WriteOptions struct {
	Verbose bool // list passing cases too
	Colour  bool // ANSI colour for labels and diffs
}

// Write renders the report: one line per failure followed by a diff of
// expected against actual, then a summary.
func (r Report) Write(w io.Writer, opts WriteOptions) {
	label := func(style lipgloss.Style, s string) string {
		if opts.Colour {
			return style.Render(s)
		}
		return s
	}

	for _, o := range r.Outcomes {
		if o.Pass {
			if opts.Verbose {
				fmt.Fprintf(w, "%s  %s\n", label(passStyle, "PASS"), o.Case.Label())
			}
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", label(failStyle, "FAIL"), o.Case.Label())
		fmt.Fprint(w, indent(mismatch(o, opts.Colour)))
	}

	fmt.Fprintf(w, "%s: %d passed, %d failed, %d total\n",
		r.Source, r.Passed, r.Failed, r.Passed+r.Failed)
}

// mismatch explains why a case failed.
func mismatch(o Outcome, colour bool) string {
	c := o.Case
	switch {
	case c.Error != "" && o.Err == nil:
		return fmt.Sprintf("expected error containing %q, got %q\n", c.Error, o.Got)
	case c.Error != "":
		return fmt.Sprintf("expected error containing %q, got error %q\n", c.Error, o.Err)
	case o.Err != nil:
		return fmt.Sprintf("unexpected error: %v\n", o.Err)
	}

	want, got := normalise(c.Want), normalise(o.Got)
	if !strings.Contains(want, "\n") && !strings.Contains(got, "\n") {
		return fmt.Sprintf("want %q\ngot  %q\ndiff %s\n", want, got, diff.Inline(want, got))
	}
	return diff.Compute(want, got, "want", "got").Format(colour)
}

func indent(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		b.WriteString("      " + line + "\n")
	}
	return b.String()
}
