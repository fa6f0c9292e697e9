package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/pybin/pkg/types"
)

// Renderer defines the interface for rendering various output types
type Renderer interface {
	RenderInstall(s types.InstalledScript) string
	RenderSummary(result *types.InstallResult) string
	RenderInstalledFiles(files []types.InstalledFile) string
	RenderAliasStatuses(statuses []types.AliasStatus) string
	RenderError(err error) string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderInstall renders one per-file progress line
func (r *TerminalRenderer) RenderInstall(s types.InstalledScript) string {
	verb := "installed"
	if s.Replaced {
		verb = "replaced"
	}
	return fmt.Sprintf("%s %s %s %s",
		SuccessStyle.Sprint("✓"), Bold(s.Command), MutedStyle.Sprint(verb+" ->"), s.Target)
}

// RenderSummary renders the final count line. Zero is reported
// distinctly from a positive count.
func (r *TerminalRenderer) RenderSummary(result *types.InstallResult) string {
	if result.Count == 0 {
		return MutedStyle.Sprint("No scripts found to install.")
	}

	noun := "scripts"
	if result.Count == 1 {
		noun = "script"
	}
	summary := fmt.Sprintf("Installed %d %s.", result.Count, noun)
	if result.DryRun {
		summary = fmt.Sprintf("Would install %d %s (dry run).", result.Count, noun)
	}
	return SuccessStyle.Sprint(summary)
}

// RenderInstalledFiles renders the list command output
func (r *TerminalRenderer) RenderInstalledFiles(files []types.InstalledFile) string {
	if len(files) == 0 {
		return MutedStyle.Sprint("No scripts installed.")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Sprint("Installed scripts") + "\n\n")

	for _, f := range files {
		line := fmt.Sprintf("%s %s", pterm.Info.Prefix.Text, Bold(f.Filename))
		if !f.Executable {
			line += " " + WarnStyle.Sprint("(not executable)")
		}
		result.WriteString(line + "\n")
		result.WriteString(Indent(MutedStyle.Sprint(f.Path), 1) + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderAliasStatuses renders the status command output
func (r *TerminalRenderer) RenderAliasStatuses(statuses []types.AliasStatus) string {
	if len(statuses) == 0 {
		return MutedStyle.Sprint("No command aliases found.")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Sprint("Command aliases") + "\n\n")

	for _, s := range statuses {
		var marker string
		switch s.State {
		case types.AliasOK:
			marker = SuccessStyle.Sprint("✓")
		case types.AliasDangling:
			marker = ErrorStyle.Sprint("✗")
		case types.AliasNotExecutable:
			marker = WarnStyle.Sprint("!")
		default:
			marker = MutedStyle.Sprint("?")
		}
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			marker, Bold(s.Name), MutedStyle.Sprint("->"), s.Target))
		if s.State != types.AliasOK {
			result.WriteString(Indent(MutedStyle.Sprint(string(s.State)), 1) + "\n")
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders an error for display
func (r *TerminalRenderer) RenderError(err error) string {
	return ErrorStyle.Sprint("Error: ") + err.Error()
}
