package pybin

import (
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pybin/pkg/style"
)

// initTemplateFormatting registers the formatting functions the usage
// template relies on. Styling is TTY-gated through pkg/style, so help
// output stays plain when piped.
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold": style.Bold,
		"boldUpper": func(s string) string {
			return style.Bold(strings.ToUpper(s))
		},
	})
}
