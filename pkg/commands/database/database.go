package database

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/dircolors/pkg/colordb"
	"github.com/arthur-debert/dircolors/pkg/errors"
	"github.com/arthur-debert/dircolors/pkg/logging"
	"github.com/spf13/afero"
)

// Source records where a database's colors came from
type Source string

const (
	SourceFile        Source = "file"
	SourceEnvironment Source = "environment"
	SourceDefaults    Source = "defaults"
	SourceDisabled    Source = "disabled"
)

// LoadOptions defines where to look for color definitions. The first
// usable source wins: File, then the Variable environment variable, then
// the built-in defaults.
type LoadOptions struct {
	// File is a dircolors database file; empty skips it
	File string
	// Strict rejects malformed lines in File
	Strict bool
	// Variable is the environment variable to read; empty skips the
	// environment entirely
	Variable string
	// Disabled returns an empty database, so every name renders plain
	Disabled bool
	// Fs is the filesystem File is read from; nil means the OS
	Fs afero.Fs
}

// LoadResult is the resolved database and its origin
type LoadResult struct {
	Database *colordb.Database
	Source   Source
}

// Load resolves a color database
func Load(opts LoadOptions) (*LoadResult, error) {
	log := logging.GetLogger("commands.database")
	db := colordb.New()

	if opts.Disabled {
		log.Debug().Msg("Colors disabled, using an empty database")
		return &LoadResult{Database: db, Source: SourceDisabled}, nil
	}

	if opts.File != "" {
		loaded, err := db.LoadFromConfigFile(opts.Fs, opts.File, opts.Strict)
		if err != nil {
			return nil, wrapFileError(err, opts.File)
		}
		log.Debug().
			Str("path", opts.File).
			Bool("strict", opts.Strict).
			Bool("loaded", loaded).
			Msg("Database loaded from file")
		return &LoadResult{Database: db, Source: SourceFile}, nil
	}

	if opts.Variable != "" && db.LoadFromEnvironment(opts.Variable) {
		log.Debug().Str("variable", opts.Variable).Msg("Database loaded from environment")
		return &LoadResult{Database: db, Source: SourceEnvironment}, nil
	}

	if err := db.LoadDefaults(); err != nil {
		return nil, err
	}
	log.Debug().Msg("Database loaded from built-in defaults")
	return &LoadResult{Database: db, Source: SourceDefaults}, nil
}

// wrapFileError keeps parse errors as they are and classifies OS errors
func wrapFileError(err error, path string) error {
	var dcErr *errors.DircolorsError
	if stderrors.As(err, &dcErr) {
		return dcErr.WithDetail("path", path)
	}
	code := errors.ErrFileAccess
	if stderrors.Is(err, fs.ErrNotExist) {
		code = errors.ErrFileNotFound
	}
	return errors.Wrapf(err, code, "cannot read database file %s", path).
		WithDetail("path", path)
}
