package colordb

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dircolors/pkg/errors"
	"github.com/arthur-debert/dircolors/pkg/logging"
	"github.com/spf13/afero"
)

// maxConfigLine bounds a single line of a dircolors config file
const maxConfigLine = 1024 * 1024

// LoadFromLsColors replaces the database with the entries of an LS_COLORS
// style string ("di=01;34:ln=01;36:*.tar=01;31"). Items without "=" are
// skipped. Keys starting with "*." are extensions; anything else is kept
// verbatim as a type code. Returns whether any entry was loaded.
func (d *Database) LoadFromLsColors(lsColors string) bool {
	log := logging.GetLogger("colordb.loader")
	d.Clear()

	if lsColors == "" {
		return false
	}

	for _, item := range strings.Split(lsColors, ":") {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			log.Trace().Str("item", item).Msg("Skipping item without '='")
			continue
		}
		if strings.HasPrefix(key, "*.") {
			d.setExtension(key[1:], value)
		} else {
			d.setCode(key, value)
		}
	}

	loaded := d.finishLoad()
	codes, exts := d.Len()
	log.Debug().
		Int("codes", codes).
		Int("extensions", exts).
		Bool("loaded", loaded).
		Msg("Loaded LS_COLORS string")
	return loaded
}

// LoadFromEnvironment replaces the database with the contents of the
// environment variable envVar, LS_COLORS when envVar is empty. An unset or
// empty variable leaves the database empty and returns false.
func (d *Database) LoadFromEnvironment(envVar string) bool {
	if envVar == "" {
		envVar = DefaultEnvVar
	}
	log := logging.GetLogger("colordb.loader")
	log.Debug().
		Str("variable", envVar).
		Msg("Loading colors from environment")
	return d.LoadFromLsColors(os.Getenv(envVar))
}

// LoadFromConfig replaces the database with the directives of a GNU
// dircolors configuration read from r.
//
// Text from '#' to end of line is a comment. Each remaining non-blank line
// must be exactly "KEY VALUE". TERM lines are ignored, long-form keywords
// (DIR, LINK, EXEC, ...) become type codes and ".ext" keys become
// extension rules. In strict mode any other line fails with an
// ErrConfigParse error carrying the line; otherwise it is skipped.
//
// On error the database is left cleared.
func (d *Database) LoadFromConfig(r io.Reader, strict bool) (bool, error) {
	log := logging.GetLogger("colordb.loader")
	d.Clear()

	if r == nil {
		return false, errors.New(errors.ErrInvalidInput, "config source must not be nil")
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxConfigLine)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		raw := scanner.Text()

		line := raw
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := d.applyDirective(line); err != nil {
			if strict {
				d.Clear()
				return false, errors.Wrapf(err, errors.ErrConfigParse, "invalid dircolors line %d: %q", lineNumber, raw).
					WithDetails(map[string]interface{}{
						"line":       raw,
						"lineNumber": lineNumber,
					})
			}
			log.Trace().
				Int("lineNumber", lineNumber).
				Str("line", raw).
				Str("reason", err.Error()).
				Msg("Skipping dircolors line")
		}
	}
	if err := scanner.Err(); err != nil {
		d.Clear()
		return false, err
	}

	loaded := d.finishLoad()
	codes, exts := d.Len()
	log.Debug().
		Int("lines", lineNumber).
		Int("codes", codes).
		Int("extensions", exts).
		Bool("strict", strict).
		Msg("Loaded dircolors config")
	return loaded, nil
}

// applyDirective stores one comment-free, trimmed config line
func (d *Database) applyDirective(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return errors.Newf(errors.ErrInvalidInput, "expected KEY VALUE, got %d fields", len(fields))
	}
	key, value := fields[0], fields[1]

	if strings.EqualFold(key, termKeyword) {
		return nil
	}
	if code, ok := CodeForKeyword(key); ok {
		d.setCode(code, value)
		return nil
	}
	if strings.HasPrefix(key, ".") {
		d.setExtension(key, value)
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown keyword %q", key)
}

// LoadFromConfigFile opens path on fsys (the OS filesystem when nil) and
// loads it with LoadFromConfig. Open errors are returned as-is.
func (d *Database) LoadFromConfigFile(fsys afero.Fs, path string, strict bool) (bool, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	f, err := fsys.Open(path)
	if err != nil {
		d.Clear()
		return false, err
	}
	defer func() { _ = f.Close() }()

	log := logging.GetLogger("colordb.loader")
	log.Debug().
		Str("path", path).
		Msg("Loading dircolors config file")
	return d.LoadFromConfig(f, strict)
}
