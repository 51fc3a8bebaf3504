//go:build linux || darwin

package filesystem

import (
	"io/fs"
	"syscall"

	"golang.org/x/sys/unix"
)

// ModeFromFileInfo returns the POSIX st_mode bits for info. The raw value
// from the underlying stat call is used when available.
func ModeFromFileInfo(info fs.FileInfo) uint32 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint32(st.Mode)
	}
	return ModeFromFileMode(info.Mode())
}

// ModeFromFileMode translates Go's portable fs.FileMode into POSIX
// st_mode bits.
func ModeFromFileMode(m fs.FileMode) uint32 {
	mode := uint32(m.Perm())

	switch {
	case m&fs.ModeDir != 0:
		mode |= unix.S_IFDIR
	case m&fs.ModeSymlink != 0:
		mode |= unix.S_IFLNK
	case m&fs.ModeNamedPipe != 0:
		mode |= unix.S_IFIFO
	case m&fs.ModeSocket != 0:
		mode |= unix.S_IFSOCK
	case m&fs.ModeCharDevice != 0:
		mode |= unix.S_IFCHR
	case m&fs.ModeDevice != 0:
		mode |= unix.S_IFBLK
	default:
		mode |= unix.S_IFREG
	}

	if m&fs.ModeSetuid != 0 {
		mode |= unix.S_ISUID
	}
	if m&fs.ModeSetgid != 0 {
		mode |= unix.S_ISGID
	}
	if m&fs.ModeSticky != 0 {
		mode |= unix.S_ISVTX
	}
	return mode
}
