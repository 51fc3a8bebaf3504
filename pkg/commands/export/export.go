package export

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dircolors/pkg/colordb"
	"github.com/arthur-debert/dircolors/pkg/errors"
	"github.com/arthur-debert/dircolors/pkg/logging"
)

// Shell syntaxes understood by Export
const (
	ShellAuto = "auto"
	ShellSh   = "sh"
	ShellCsh  = "csh"
	ShellRaw  = "raw"
)

// ExportOptions defines the options for the Export command.
type ExportOptions struct {
	// Database holds the colors to export
	Database *colordb.Database
	// Shell is one of the Shell* constants; auto guesses from ShellPath
	Shell string
	// ShellPath is the user's login shell, usually $SHELL
	ShellPath string
	// Variable is the name assigned to; empty means LS_COLORS
	Variable string
}

// Export renders the database as a shell assignment, like dircolors -b
// and -c. The raw shell prints the bare list.
func Export(opts ExportOptions) (string, error) {
	log := logging.GetLogger("core.commands")

	if opts.Database == nil {
		return "", errors.New(errors.ErrInvalidInput, "no database to export")
	}
	variable := opts.Variable
	if variable == "" {
		variable = colordb.DefaultEnvVar
	}

	shell := opts.Shell
	if shell == "" || shell == ShellAuto {
		shell = GuessShell(opts.ShellPath)
	}

	value := opts.Database.GenerateLsColors()
	log.Debug().
		Str("command", "Export").
		Str("shell", shell).
		Int("length", len(value)).
		Msg("Exporting database")

	switch shell {
	case ShellSh:
		return variable + "=" + quote(value) + ";\nexport " + variable + "\n", nil
	case ShellCsh:
		return "setenv " + variable + " " + quote(value) + "\n", nil
	case ShellRaw:
		return value + "\n", nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown shell %q", opts.Shell).
			WithDetail("allowed", []string{ShellAuto, ShellSh, ShellCsh, ShellRaw})
	}
}

// GuessShell picks csh syntax for csh-family shells and sh otherwise
func GuessShell(shellPath string) string {
	if strings.HasSuffix(filepath.Base(shellPath), "csh") {
		return ShellCsh
	}
	return ShellSh
}

// quote wraps s in single quotes, escaping embedded single quotes
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
