package style

import (
	"io"
	"strings"
	"text/template"

	"github.com/pterm/pterm"
)

// TemplateFuncs returns the bold/upper helpers used in command help
// templates. Bold is only applied when out is a terminal.
func TemplateFuncs(out io.Writer) template.FuncMap {
	tty := IsTerminal(out)

	bold := func(s string) string {
		if !tty {
			return s
		}
		return pterm.Bold.Sprint(s)
	}

	return template.FuncMap{
		"bold":  bold,
		"upper": strings.ToUpper,
		"boldUpper": func(s string) string {
			return bold(strings.ToUpper(s))
		},
	}
}
