//go:build linux || darwin

package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dircolors/pkg/types"
	"golang.org/x/sys/unix"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

// withDir runs fn with a directory descriptor for looking up name in dir.
// Descriptors opened here from a path are closed before returning;
// caller-owned descriptors are passed through untouched. An absolute name
// never opens a path base, matching DirRef.Resolve.
func withDir(dir types.DirRef, name string, fn func(dirfd int) error) error {
	switch dir.Kind() {
	case types.DirHandleRef:
		return fn(dir.FD())
	case types.DirPathRef:
		if filepath.IsAbs(name) {
			return fn(unix.AT_FDCWD)
		}
		dirfd, err := openDir(dir.Path())
		if err != nil {
			return err
		}
		defer func() { _ = unix.Close(dirfd) }()
		return fn(dirfd)
	default:
		return fn(unix.AT_FDCWD)
	}
}

func openDir(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return -1, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	return fd, nil
}

func (o *osFS) StatAt(dir types.DirRef, name string, followSymlinks bool) (uint32, error) {
	flags := 0
	if !followSymlinks {
		flags = unix.AT_SYMLINK_NOFOLLOW
	}

	var st unix.Stat_t
	err := withDir(dir, name, func(dirfd int) error {
		if err := unix.Fstatat(dirfd, name, &st, flags); err != nil {
			return &fs.PathError{Op: "stat", Path: name, Err: err}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return uint32(st.Mode), nil
}

func (o *osFS) ReadlinkAt(dir types.DirRef, name string) (string, error) {
	var target string
	err := withDir(dir, name, func(dirfd int) error {
		for size := 128; ; size *= 2 {
			buf := make([]byte, size)
			n, err := unix.Readlinkat(dirfd, name, buf)
			if err != nil {
				return &fs.PathError{Op: "readlink", Path: name, Err: err}
			}
			if n < size {
				target = string(buf[:n])
				return nil
			}
		}
	})
	return target, err
}

func (o *osFS) OpenDir(path string) (types.DirRef, io.Closer, error) {
	fd, err := openDir(path)
	if err != nil {
		return types.DirRef{}, nil, err
	}
	return types.DirHandle(fd), dirCloser(fd), nil
}

func (o *osFS) ReadDirNames(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names, nil
}

// dirCloser closes a descriptor opened by OpenDir
type dirCloser int

func (d dirCloser) Close() error {
	if err := unix.Close(int(d)); err != nil {
		return &fs.PathError{Op: "close", Path: "", Err: err}
	}
	return nil
}
