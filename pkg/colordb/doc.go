// Package colordb holds the dircolors color database: the mapping from
// file type codes (di, ln, ex, ...) and file extensions to SGR attribute
// strings such as "01;34".
//
// A Database is filled by exactly one loader at a time, and every loader
// clears the previous contents first:
//
//	LoadFromLsColors    the colon separated LS_COLORS format
//	LoadFromEnvironment LS_COLORS (or another variable) from the process env
//	LoadFromConfig      the GNU dircolors configuration file format
//	LoadDefaults        the built-in database shipped with this package
//
// GenerateLsColors serializes the database back to the LS_COLORS format.
//
// A Database has no internal locking. Callers sharing one across
// goroutines must not reload it while it is being read.
package colordb
