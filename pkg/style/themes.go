package style

import (
	"github.com/charmbracelet/lipgloss"
)

// ErrorColor uses AdaptiveColor for automatic light/dark mode switching
var ErrorColor = lipgloss.AdaptiveColor{
	Light: "#DC3545", // Red
	Dark:  "#FF6B7D",
}
