// Package testutil provides utilities for testing dircolors components.
//
// Key components:
//   - CreateFile, CreateDir, CreateSymlink: single-entry fixtures on the real filesystem
//   - TreeBuilder: declarative fixture trees with explicit modes and symlinks
//   - Wrap: the expected ANSI output for a colored name
//
// Usage guidelines:
//   - Classifier tests need real stat results, so fixtures live under t.TempDir()
//   - Modes are applied with chmod after creation so the umask never interferes
//   - Each test should be completely isolated with no shared state
package testutil
