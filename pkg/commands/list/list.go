//go:build linux || darwin

package list

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/dircolors/pkg/classifier"
	"github.com/arthur-debert/dircolors/pkg/errors"
	"github.com/arthur-debert/dircolors/pkg/logging"
	"github.com/arthur-debert/dircolors/pkg/types"
	"golang.org/x/sys/unix"
)

// ListPathsOptions defines the options for the ListPaths command.
type ListPathsOptions struct {
	// Paths to list; empty means "."
	Paths []string
	// Classifier renders each name
	Classifier *classifier.Classifier
	// FS is used to tell directories apart and to read them
	FS types.FS
	// Dereference colors symlinks by what they point to
	Dereference bool
	// ShowTargets renders "link -> target"
	ShowTargets bool
	// Out receives the listing, ErrOut the per-path errors
	Out    io.Writer
	ErrOut io.Writer
}

// ListPathsResult summarizes a listing. Errors holds one DIR_LIST or
// DIR_OPEN error per entry of Failed.
type ListPathsResult struct {
	Directories int
	Entries     int
	Failed      []string
	Errors      []error
}

// ListPaths prints each path the way ls does. A directory, not reached
// through a symlink, has its entries printed in sorted order followed by a
// blank line, with a "name:" heading when several paths are given. Anything
// else is printed as a single formatted name. A directory that cannot be
// read is reported on ErrOut and the remaining paths are still listed.
func ListPaths(opts ListPathsOptions) (*ListPathsResult, error) {
	log := logging.GetLogger("core.commands")
	done := logging.LogOperationStart(log, "ListPaths")
	defer done()

	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	result := &ListPathsResult{}
	for _, path := range paths {
		if !isDirectory(opts.FS, path) {
			line := opts.Classifier.Format(path, types.CurrentDir(), opts.Dereference, opts.ShowTargets)
			fmt.Fprintln(opts.Out, line)
			result.Entries++
			continue
		}

		if err := listDirectory(opts, path, len(paths) > 1, result); err != nil {
			log.Debug().Err(err).Str("path", path).Msg("Listing failed")
			fmt.Fprintf(opts.ErrOut, "%s: error: %v\n", path, err)
			result.Failed = append(result.Failed, path)
			result.Errors = append(result.Errors, err)
		}
	}

	log.Info().
		Str("command", "ListPaths").
		Int("directories", result.Directories).
		Int("entries", result.Entries).
		Int("failed", len(result.Failed)).
		Msg("Command finished")
	return result, nil
}

func listDirectory(opts ListPathsOptions, path string, heading bool, result *ListPathsResult) error {
	names, err := opts.FS.ReadDirNames(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrDirList, "cannot read directory").
			WithDetail("path", path)
	}
	sort.Strings(names)

	dir, closer, err := opts.FS.OpenDir(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrDirOpen, "cannot open directory").
			WithDetail("path", path)
	}
	defer func() { _ = closer.Close() }()

	if heading && path != "." {
		fmt.Fprintln(opts.Out, opts.Classifier.Format(path, types.CurrentDir(), false, false)+":")
	}
	for _, name := range names {
		fmt.Fprintln(opts.Out, opts.Classifier.Format(name, dir, opts.Dereference, opts.ShowTargets))
	}
	fmt.Fprintln(opts.Out)

	result.Directories++
	result.Entries += len(names)
	return nil
}

// isDirectory reports whether path is a directory itself rather than a
// symlink to one
func isDirectory(fsys types.FS, path string) bool {
	mode, err := fsys.StatAt(types.CurrentDir(), path, false)
	if err != nil {
		return false
	}
	return mode&unix.S_IFMT == unix.S_IFDIR
}
