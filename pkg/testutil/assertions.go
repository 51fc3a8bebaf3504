package testutil

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
)

var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripANSI removes every SGR escape sequence from s
func StripANSI(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// AssertColored checks that actual is text wrapped in the given color
// with the default reset
func AssertColored(t *testing.T, actual, text, color string, msgAndArgs ...interface{}) {
	t.Helper()

	expected := Wrap(text, color)
	if actual != expected {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sExpected: %q\nActual: %q", msg, expected, actual)
	}
}

// AssertPlain checks that actual carries no escape sequences at all
func AssertPlain(t *testing.T, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	if sgrPattern.MatchString(actual) {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sExpected no escape sequences in %q", msg, actual)
	}
}

// AssertContains checks if a string contains a substring
func AssertContains(t *testing.T, str, substr string, msgAndArgs ...interface{}) {
	t.Helper()

	if !strings.Contains(str, substr) {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sString %q does not contain %q", msg, str, substr)
	}
}

// formatMessage formats the optional message and arguments
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	if len(msgAndArgs) == 1 {
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg + ": "
		}
		return fmt.Sprintf("%+v: ", msgAndArgs[0])
	}

	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
	}

	return fmt.Sprintf("%+v: ", msgAndArgs)
}
