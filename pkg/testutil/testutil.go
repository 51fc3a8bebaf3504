package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates an empty file with exactly the given mode in dir.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name string, mode fs.FileMode) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	// Chmod bypasses the umask so setuid and world bits stick
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("Failed to chmod %s to %v: %v", path, mode, err)
	}

	return path
}

// CreateDir creates a directory with exactly the given mode in parent.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string, mode fs.FileMode) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("Failed to chmod %s to %v: %v", path, mode, err)
	}

	return path
}

// CreateSymlink creates a symbolic link pointing to target.
// It fails the test if the symlink cannot be created.
func CreateSymlink(t *testing.T, target, link string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for symlink %s: %v", link, err)
	}

	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}

	return link
}

// IsRoot reports whether the tests run with root privileges, where
// permission bits do not restrict access
func IsRoot() bool {
	return os.Geteuid() == 0
}
