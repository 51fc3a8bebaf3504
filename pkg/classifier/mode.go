//go:build linux || darwin

package classifier

import (
	"github.com/arthur-debert/dircolors/pkg/colordb"
	"golang.org/x/sys/unix"
)

const anyExec = unix.S_IXUSR | unix.S_IXGRP | unix.S_IXOTH

// codeForMode returns the type code for mode bits, or false when only the
// file extension can decide
func codeForMode(mode uint32) (string, bool) {
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return dirCode(mode), true
	case unix.S_IFLNK:
		return colordb.CodeLink, true
	case unix.S_IFIFO:
		return colordb.CodeFifo, true
	case unix.S_IFSOCK:
		return colordb.CodeSocket, true
	case unix.S_IFBLK:
		return colordb.CodeBlockDevice, true
	case unix.S_IFCHR:
		return colordb.CodeCharDevice, true
	}

	switch {
	case mode&unix.S_ISUID != 0:
		return colordb.CodeSetuid, true
	case mode&unix.S_ISGID != 0:
		return colordb.CodeSetgid, true
	case mode&anyExec != 0:
		return colordb.CodeExec, true
	}
	return "", false
}

func dirCode(mode uint32) string {
	sticky := mode&unix.S_ISVTX != 0
	otherWritable := mode&unix.S_IWOTH != 0

	switch {
	case sticky && otherWritable:
		return colordb.CodeStickyOtherWritable
	case sticky:
		return colordb.CodeSticky
	case otherWritable:
		return colordb.CodeOtherWritable
	default:
		return colordb.CodeDir
	}
}

func isSymlink(mode uint32) bool {
	return mode&unix.S_IFMT == unix.S_IFLNK
}
