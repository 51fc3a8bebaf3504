package types

import (
	"io"
)

// FS is the filesystem interface required for classifying entries.
// Mode bits are returned in POSIX st_mode layout (S_IFMT type bits plus
// permission, setuid, setgid and sticky bits).
type FS interface {
	// StatAt stats name relative to dir. The final symlink is only
	// followed when followSymlinks is true.
	StatAt(dir DirRef, name string, followSymlinks bool) (uint32, error)

	// ReadlinkAt returns the raw target of the symlink name relative to dir.
	ReadlinkAt(dir DirRef, name string) (string, error)

	// OpenDir opens path for repeated relative lookups. The returned
	// closer releases whatever OpenDir acquired.
	OpenDir(path string) (DirRef, io.Closer, error)

	// ReadDirNames returns the names of the entries in path, sorted.
	ReadDirNames(path string) ([]string, error)
}
