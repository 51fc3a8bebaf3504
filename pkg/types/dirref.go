package types

import (
	"fmt"
	"path/filepath"
)

// DirKind tags which variant a DirRef holds
type DirKind int

const (
	// DirCurrent resolves names against the process working directory
	DirCurrent DirKind = iota
	// DirPathRef resolves names against a directory given by path
	DirPathRef
	// DirHandleRef resolves names against an already-open directory descriptor
	DirHandleRef
)

// DirRef is the base directory a lookup is relative to: the working
// directory, a directory path, or an open directory descriptor owned by
// the caller. The zero value is the working directory.
type DirRef struct {
	kind DirKind
	path string
	fd   int
}

// CurrentDir returns a DirRef for the process working directory
func CurrentDir() DirRef {
	return DirRef{kind: DirCurrent}
}

// DirPath returns a DirRef for the directory at path.
// An empty path means the working directory.
func DirPath(path string) DirRef {
	if path == "" {
		return CurrentDir()
	}
	return DirRef{kind: DirPathRef, path: path}
}

// DirHandle returns a DirRef for an open directory descriptor.
// Lookups through it never close fd.
func DirHandle(fd int) DirRef {
	return DirRef{kind: DirHandleRef, fd: fd}
}

// Kind reports which variant d holds
func (d DirRef) Kind() DirKind {
	return d.kind
}

// Path returns the directory path for DirPathRef values, "" otherwise
func (d DirRef) Path() string {
	return d.path
}

// FD returns the descriptor for DirHandleRef values, -1 otherwise
func (d DirRef) FD() int {
	if d.kind != DirHandleRef {
		return -1
	}
	return d.fd
}

// Resolve joins name onto a path-based DirRef. Absolute names and the
// working directory pass name through unchanged. Descriptor refs have no
// path to join onto and report ok=false.
func (d DirRef) Resolve(name string) (resolved string, ok bool) {
	switch d.kind {
	case DirHandleRef:
		return "", false
	case DirPathRef:
		if filepath.IsAbs(name) {
			return name, true
		}
		return filepath.Join(d.path, name), true
	default:
		return name, true
	}
}

func (d DirRef) String() string {
	switch d.kind {
	case DirPathRef:
		return d.path
	case DirHandleRef:
		return fmt.Sprintf("fd:%d", d.fd)
	default:
		return "."
	}
}
