// Package output provides terminal output formatting utilities for the
// addonbuild CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintStep prints a colored step header (e.g., "[2/5] Updating CHANGELOG.md...").
// Uses cyan for the step indicator and white for the step name.
func PrintStep(out io.Writer, stepNum, totalSteps int, name string) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", cyan(fmt.Sprintf("[%d/%d]", stepNum, totalSteps)), white(name+"..."))
}

// PrintSuccess prints a colored success line for a completed step.
// Uses green checkmark and cyan for the detail text.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), cyan(message))
}

// PrintPreview prints a block of generated text under a dim rule so it stands
// apart from the surrounding status lines.
func PrintPreview(out io.Writer, title, body string) {
	width := GetTerminalWidth()
	dim := color.New(color.Faint).SprintFunc()

	label := " " + title + " "
	lineLen := (width - len(label)) / 2
	if lineLen < 3 {
		lineLen = 3
	}
	rule := strings.Repeat("─", lineLen)

	fmt.Fprintf(out, "\n%s%s%s\n", dim(rule), dim(label), dim(rule))
	fmt.Fprintln(out, strings.TrimRight(body, "\n"))
	fmt.Fprintf(out, "%s\n\n", dim(strings.Repeat("─", lineLen*2+len(label))))
}

// PrintDryRun prints a notice that a mutating step was skipped.
func PrintDryRun(out io.Writer, message string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("dry-run:"), message)
}
