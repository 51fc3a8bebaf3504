// Package filesystem provides filesystem implementations for dircolors.
//
// This package contains implementations of the types.FS interface: the
// OS filesystem, which resolves names with the *at family of syscalls so a
// lookup can be relative to an open directory descriptor, and an afero
// backed filesystem for virtual trees and tests.
package filesystem
