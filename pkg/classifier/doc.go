// Package classifier decides which dircolors color applies to a file and
// wraps its name in the matching ANSI escape sequence.
//
// FormatByMode is a pure function of a display string and POSIX mode bits.
// Format stats a path (optionally relative to a directory reference) and
// can render symlinks as "link -> target", dereferencing exactly one level.
// Filesystem errors never escape Format; they are rendered inline so the
// result is always displayable.
package classifier
