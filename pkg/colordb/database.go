package colordb

import (
	"strings"
)

// DefaultEnvVar is the environment variable GNU ls reads its colors from
const DefaultEnvVar = "LS_COLORS"

// Database maps type codes and file extensions to SGR attribute strings
type Database struct {
	codes      *orderedMap
	extensions *orderedMap
	loaded     bool
}

// New returns an empty, unloaded Database
func New() *Database {
	d := &Database{}
	d.Clear()
	return d
}

// NewFromEnvironment returns a Database loaded from envVar (LS_COLORS when
// empty). When the variable is unset or yields no entries, the built-in
// defaults are loaded instead.
func NewFromEnvironment(envVar string) (*Database, error) {
	d := New()
	if d.LoadFromEnvironment(envVar) {
		return d, nil
	}
	if err := d.LoadDefaults(); err != nil {
		return nil, err
	}
	return d, nil
}

// Clear drops all entries and marks the database unloaded
func (d *Database) Clear() {
	d.codes = newOrderedMap()
	d.extensions = newOrderedMap()
	d.loaded = false
}

// Loaded reports whether the most recent load produced at least one entry
func (d *Database) Loaded() bool {
	return d.loaded
}

// Code returns the SGR string stored for a type code such as "di"
func (d *Database) Code(code string) (string, bool) {
	return d.codes.get(code)
}

// Extension returns the SGR string stored for ext, which includes its
// leading dot (".tar")
func (d *Database) Extension(ext string) (string, bool) {
	return d.extensions.get(ext)
}

// Reset returns the SGR string that ends a colored span: the "rs" entry
// when present, "0" otherwise.
func (d *Database) Reset() string {
	if rs, ok := d.codes.get(CodeReset); ok {
		return rs
	}
	return "0"
}

// Len returns the number of type code and extension entries
func (d *Database) Len() (codes, extensions int) {
	return d.codes.len(), d.extensions.len()
}

// GenerateLsColors serializes the database in LS_COLORS format: type
// codes first, then extensions as "*.ext=value", each group in insertion
// order. An unloaded database yields "".
func (d *Database) GenerateLsColors() string {
	if !d.loaded {
		return ""
	}

	items := make([]string, 0, d.codes.len()+d.extensions.len())
	d.codes.each(func(code, value string) {
		items = append(items, code+"="+value)
	})
	d.extensions.each(func(ext, value string) {
		items = append(items, "*"+ext+"="+value)
	})
	return strings.Join(items, ":")
}

func (d *Database) setCode(code, value string) {
	d.codes.set(code, value)
}

func (d *Database) setExtension(ext, value string) {
	d.extensions.set(ext, value)
}

// finishLoad records whether the load that just ran produced any entries
func (d *Database) finishLoad() bool {
	d.loaded = d.codes.len() > 0 || d.extensions.len() > 0
	return d.loaded
}
