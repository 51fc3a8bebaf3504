package dircolors

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Color file names like GNU ls"
	MsgLsShort            = "List files with colors"
	MsgExportShort        = "Print shell code that sets LS_COLORS"
	MsgPrintDatabaseShort = "Print the built-in color database"
	MsgConfigShort        = "Print the effective configuration"
	MsgCompletionShort    = "Generate shell completion script"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrLoadDatabase = "failed to load color database: %w"
	MsgErrListFailed   = "%d path(s) could not be listed"
	MsgErrExport       = "failed to export colors: %w"
	MsgErrColorMode    = "invalid --color value %q (want auto, always or never)"
	MsgErrNoCommand    = "no command specified"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Read settings from this file instead of the XDG config file"
	MsgFlagColor       = "When to color names: auto, always or never (default from config)"
	MsgFlagDereference = "Color symlinks by the file they point to"
	MsgFlagNoTargets   = "Do not show symlink targets"
	MsgFlagShell       = "Shell syntax: auto, sh, csh or raw"
	MsgFlagLenient     = "Skip malformed lines in FILE instead of failing"
	MsgFlagFormat      = "Output format: toml or yaml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/ls-long.txt
	msgLsLongRaw string
	MsgLsLong    = strings.TrimSpace(msgLsLongRaw)

	//go:embed msgs/ls-example.txt
	msgLsExampleRaw string
	MsgLsExample    = strings.TrimRight(msgLsExampleRaw, "\n")

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/export-example.txt
	msgExportExampleRaw string
	MsgExportExample    = strings.TrimRight(msgExportExampleRaw, "\n")

	//go:embed msgs/print-database-long.txt
	msgPrintDatabaseLongRaw string
	MsgPrintDatabaseLong    = strings.TrimSpace(msgPrintDatabaseLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
