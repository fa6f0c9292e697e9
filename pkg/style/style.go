// Package style renders pybin's terminal output with pterm.
package style

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Styles used across renderers
var (
	TitleStyle   = pterm.NewStyle(pterm.Bold)
	MutedStyle   = pterm.NewStyle(pterm.FgGray)
	SuccessStyle = pterm.NewStyle(pterm.FgGreen)
	ErrorStyle   = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	WarnStyle    = pterm.NewStyle(pterm.FgYellow)
)

// Bold returns the string formatted as bold when stdout is a terminal
func Bold(s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// Indent indents every line of s by n levels of two spaces
func Indent(s string, n int) string {
	prefix := strings.Repeat("  ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
