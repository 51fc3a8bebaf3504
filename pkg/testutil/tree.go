package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// entryKind is what a TreeBuilder entry creates
type entryKind int

const (
	kindFile entryKind = iota
	kindDir
	kindSymlink
)

type treeEntry struct {
	name   string
	kind   entryKind
	mode   fs.FileMode
	target string
}

// TreeBuilder declares a fixture tree and materializes it under a fresh
// temporary directory.
//
//	root := testutil.NewTree(t).
//		File("execfile", 0755).
//		Dir("subdir", 0755).
//		Symlink("link.png", "image.png").
//		Build()
type TreeBuilder struct {
	t       *testing.T
	entries []treeEntry
}

// NewTree starts an empty tree declaration
func NewTree(t *testing.T) *TreeBuilder {
	t.Helper()
	return &TreeBuilder{t: t}
}

// File adds an empty regular file
func (b *TreeBuilder) File(name string, mode fs.FileMode) *TreeBuilder {
	b.entries = append(b.entries, treeEntry{name: name, kind: kindFile, mode: mode})
	return b
}

// Dir adds a directory
func (b *TreeBuilder) Dir(name string, mode fs.FileMode) *TreeBuilder {
	b.entries = append(b.entries, treeEntry{name: name, kind: kindDir, mode: mode})
	return b
}

// Symlink adds a symlink whose raw target is target
func (b *TreeBuilder) Symlink(name, target string) *TreeBuilder {
	b.entries = append(b.entries, treeEntry{name: name, kind: kindSymlink, target: target})
	return b
}

// Build creates every entry in declaration order and returns the root.
// Directories are chmod'ed last so read-only or sticky modes do not block
// creating their children.
func (b *TreeBuilder) Build() string {
	b.t.Helper()
	root := b.t.TempDir()

	var dirs []treeEntry
	for _, e := range b.entries {
		switch e.kind {
		case kindFile:
			CreateFile(b.t, root, e.name, e.mode)
		case kindDir:
			CreateDir(b.t, root, e.name, 0755)
			dirs = append(dirs, e)
		case kindSymlink:
			CreateSymlink(b.t, e.target, filepath.Join(root, e.name))
		}
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		path := filepath.Join(root, dirs[i].name)
		if err := os.Chmod(path, dirs[i].mode); err != nil {
			b.t.Fatalf("Failed to chmod %s to %v: %v", path, dirs[i].mode, err)
		}
	}
	return root
}
