//go:build linux || darwin

// Package commands provides high-level command implementations for dircolors.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the colordb and classifier packages.
//
// Each command is implemented in its own subdirectory:
//   - database/ - LoadDatabase, shared color database resolution
//   - list/     - ListPaths command
//   - export/   - Export command
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"github.com/arthur-debert/dircolors/pkg/commands/database"
	"github.com/arthur-debert/dircolors/pkg/commands/export"
	"github.com/arthur-debert/dircolors/pkg/commands/list"
)

// LoadDatabase resolves the color database from a file, the environment or
// the built-in defaults.
type LoadDatabaseOptions = database.LoadOptions

func LoadDatabase(opts LoadDatabaseOptions) (*database.LoadResult, error) {
	return database.Load(opts)
}

// ListPaths prints files and directory contents with colors.
type ListPathsOptions = list.ListPathsOptions

func ListPaths(opts ListPathsOptions) (*list.ListPathsResult, error) {
	return list.ListPaths(opts)
}

// Export renders the database as a shell assignment.
type ExportOptions = export.ExportOptions

func Export(opts ExportOptions) (string, error) {
	return export.Export(opts)
}
