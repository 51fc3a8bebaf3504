package style

import (
	"io"
	"os"

	"github.com/arthur-debert/dircolors/pkg/config"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ShouldColor decides whether output written to w gets escape sequences
// for a display.color mode. Any mode other than config.ColorAlways and
// config.ColorNever is treated as config.ColorAuto. In auto mode NO_COLOR and CLICOLOR=0 turn colors off, otherwise w must
// be a terminal.
func ShouldColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	return IsTerminal(w)
}
