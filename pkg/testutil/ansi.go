package testutil

// Wrap returns text wrapped in an SGR color and reset the way the
// classifier renders it. An empty color returns text unchanged.
func Wrap(text, color string) string {
	return WrapReset(text, color, "0")
}

// WrapReset is Wrap with an explicit reset attribute
func WrapReset(text, color, reset string) string {
	if color == "" {
		return text
	}
	return "\x1b[" + color + "m" + text + "\x1b[" + reset + "m"
}
