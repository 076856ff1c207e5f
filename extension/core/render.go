// render.go renders embedded markdown for the guide and llm commands.

package core

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/pathkit/cmd"
	"golang.org/x/term"
)

// render writes markdown to the output writer. A terminal gets glamour
// rendering; pipes and redirects get the raw markdown.
func render(content string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(content, "dark")
		if err == nil {
			fmt.Fprint(cmd.Out(), rendered)
			return
		}
	}
	fmt.Fprint(cmd.Out(), content)
}

// colour reports whether ANSI colour should be used for stdout.
func colour(noColour bool) bool {
	return !noColour && os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))
}
