package colordb

import "strings"

// Two-letter type codes used as keys in LS_COLORS
const (
	CodeReset               = "rs"
	CodeDir                 = "di"
	CodeLink                = "ln"
	CodeMultiHardlink       = "mh"
	CodeFifo                = "pi"
	CodeSocket              = "so"
	CodeDoor                = "do"
	CodeBlockDevice         = "bd"
	CodeCharDevice          = "cd"
	CodeOrphan              = "or"
	CodeMissing             = "mi"
	CodeSetuid              = "su"
	CodeSetgid              = "sg"
	CodeCapability          = "ca"
	CodeStickyOtherWritable = "tw"
	CodeOtherWritable       = "ow"
	CodeSticky              = "st"
	CodeExec                = "ex"
)

// termKeyword is accepted in config files and ignored
const termKeyword = "TERM"

// longNames maps dircolors config keywords to their type codes
var longNames = map[string]string{
	"DIR":                   CodeDir,
	"LINK":                  CodeLink,
	"MULTIHARDLINK":         CodeMultiHardlink,
	"FIFO":                  CodeFifo,
	"SOCK":                  CodeSocket,
	"DOOR":                  CodeDoor,
	"BLK":                   CodeBlockDevice,
	"CHR":                   CodeCharDevice,
	"ORPHAN":                CodeOrphan,
	"MISSING":               CodeMissing,
	"SETUID":                CodeSetuid,
	"SETGID":                CodeSetgid,
	"CAPABILITY":            CodeCapability,
	"STICKY_OTHER_WRITABLE": CodeStickyOtherWritable,
	"OTHER_WRITABLE":        CodeOtherWritable,
	"STICKY":                CodeSticky,
	"EXEC":                  CodeExec,
	"RESET":                 CodeReset,
}

// CodeForKeyword returns the type code for a dircolors config keyword
// such as "DIR" or "STICKY_OTHER_WRITABLE". Keywords match case-insensitively.
func CodeForKeyword(keyword string) (string, bool) {
	code, ok := longNames[strings.ToUpper(keyword)]
	return code, ok
}
