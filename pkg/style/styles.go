package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/dircolors/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

var ErrorStyle = lipgloss.NewStyle().
	Foreground(ErrorColor).
	Bold(true)

var DetailStyle = lipgloss.NewStyle().
	Faint(true)

// RenderError formats an error message for stderr. Details attached to a
// DircolorsError follow on their own lines, sorted by key.
func RenderError(err error) string {
	var b strings.Builder
	b.WriteString(ErrorStyle.Render("Error:") + " " + err.Error())

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteString("\n  " + DetailStyle.Render(fmt.Sprintf("%s: %v", key, details[key])))
	}
	return b.String()
}
