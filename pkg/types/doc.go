// Package types defines the core types and interfaces shared by the
// dircolors packages: the filesystem interface the classifier stats
// entries through, and DirRef, the base directory a lookup is relative to.
package types
