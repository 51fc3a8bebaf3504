package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	colored := Wrap("link.png", "01;36") + " -> " + Wrap("image.png", "01;35")
	assert.Equal(t, "link.png -> image.png", StripANSI(colored))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestAssertColored(t *testing.T) {
	AssertColored(t, "\x1b[01;32mexecfile\x1b[0m", "execfile", "01;32")
	AssertColored(t, "normalfile", "normalfile", "")
}

func TestAssertPlain(t *testing.T) {
	AssertPlain(t, "normalfile")
	AssertPlain(t, "broken [Error stat-ing: no such file or directory]")
}

func TestAssertContains(t *testing.T) {
	AssertContains(t, "link -> target [broken link]", "[broken link]")
	AssertContains(t, "hello world", "world", "with message %d", 1)
}
