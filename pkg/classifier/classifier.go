//go:build linux || darwin

package classifier

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dircolors/pkg/colordb"
	"github.com/arthur-debert/dircolors/pkg/filesystem"
	"github.com/arthur-debert/dircolors/pkg/logging"
	"github.com/arthur-debert/dircolors/pkg/types"
)

const (
	escape = "\x1b["

	brokenLinkSuffix = " [broken link]"
	linkArrow        = " -> "
)

// Classifier colors file names using a Database
type Classifier struct {
	db *colordb.Database
	fs types.FS
}

// New creates a Classifier over db. Files are looked up through fsys, or
// the OS filesystem when fsys is nil.
func New(db *colordb.Database, fsys types.FS) *Classifier {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Classifier{db: db, fs: fsys}
}

// Database returns the database the classifier reads
func (c *Classifier) Database() *colordb.Database {
	return c.db
}

// FormatByMode colors text according to POSIX mode bits. Directories,
// special files, setuid/setgid and executables are colored by type;
// anything else by the extension of text. Text is returned unchanged when
// the database is unloaded or nothing matches.
func (c *Classifier) FormatByMode(text string, mode uint32) string {
	if !c.db.Loaded() {
		return text
	}
	if code, ok := codeForMode(mode); ok {
		return c.formatCode(text, code)
	}
	if ext := Extension(text); ext != "" {
		return c.formatExtension(text, ext)
	}
	return text
}

// FormatByStat colors text according to a stat result
func (c *Classifier) FormatByStat(text string, info fs.FileInfo) string {
	return c.FormatByMode(text, filesystem.ModeFromFileInfo(info))
}

// Format colors path after looking it up relative to dir.
//
// The final symlink is only followed when followSymlinks is set. With
// followSymlinks unset and showTarget set, a symlink is rendered as
// "<link> -> <target>", the target formatted by its own type without
// further dereferencing, or in the orphan color with " [broken link]" when
// it cannot be stat'ed. Lookup failures are rendered inline.
func (c *Classifier) Format(path string, dir types.DirRef, followSymlinks, showTarget bool) string {
	return c.format(path, path, dir, followSymlinks, showTarget)
}

// format displays text while looking up lookup; the two differ only for
// relative symlink targets
func (c *Classifier) format(text, lookup string, dir types.DirRef, followSymlinks, showTarget bool) string {
	if !c.db.Loaded() {
		return text
	}

	mode, err := c.fs.StatAt(dir, lookup, followSymlinks)
	if err != nil {
		log := logging.GetLogger("classifier")
		log.Debug().
			Err(err).
			Str("path", lookup).
			Str("dir", dir.String()).
			Msg("Stat failed")
		return text + " [Error stat-ing: " + osMessage(err) + "]"
	}

	if !followSymlinks && showTarget && isSymlink(mode) {
		return c.formatLink(text, lookup, dir)
	}
	return c.FormatByMode(text, mode)
}

func (c *Classifier) formatLink(text, lookup string, dir types.DirRef) string {
	link := c.formatCode(text, colordb.CodeLink)

	target, err := c.fs.ReadlinkAt(dir, lookup)
	if err != nil {
		return link + " [Error reading link: " + osMessage(err) + "]"
	}

	targetLookup := resolveTarget(lookup, target)
	if _, err := c.fs.StatAt(dir, targetLookup, false); err != nil {
		return link + linkArrow + c.formatCode(target, colordb.CodeOrphan) + brokenLinkSuffix
	}
	return link + linkArrow + c.format(target, targetLookup, dir, false, false)
}

// formatCode wraps text in the color for a type code
func (c *Classifier) formatCode(text, code string) string {
	value, _ := c.db.Code(code)
	return c.wrap(text, value)
}

// formatExtension wraps text in the color for ext; unmapped extensions
// leave text unchanged
func (c *Classifier) formatExtension(text, ext string) string {
	value, _ := c.db.Extension(ext)
	return c.wrap(text, value)
}

func (c *Classifier) wrap(text, value string) string {
	if value == "" {
		return text
	}
	return escape + value + "m" + text + escape + c.db.Reset() + "m"
}

// Extension returns the extension of the last element of name, including
// its dot. Leading dots do not start an extension, so ".bashrc" has none.
func Extension(name string) string {
	base := name[strings.LastIndexByte(name, '/')+1:]
	base = strings.TrimLeft(base, ".")
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return base[i:]
}

// resolveTarget returns where a symlink's target lives relative to the
// same base directory as the link itself
func resolveTarget(linkPath, target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	parent := filepath.Dir(linkPath)
	if parent == "." {
		return target
	}
	return filepath.Join(parent, target)
}

// osMessage extracts the operating system's description of err
func osMessage(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
