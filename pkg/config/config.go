package config

import (
	"strings"

	"github.com/arthur-debert/dircolors/pkg/errors"
)

// Color modes accepted by display.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective dircolors configuration
type Config struct {
	Database DatabaseConfig `koanf:"database" toml:"database" yaml:"database"`
	Display  DisplayConfig  `koanf:"display" toml:"display" yaml:"display"`
}

// DatabaseConfig selects where color definitions come from
type DatabaseConfig struct {
	Variable string `koanf:"variable" toml:"variable" yaml:"variable"`
	File     string `koanf:"file" toml:"file" yaml:"file"`
	Strict   bool   `koanf:"strict" toml:"strict" yaml:"strict"`
}

// DisplayConfig controls how names are rendered
type DisplayConfig struct {
	Color       string `koanf:"color" toml:"color" yaml:"color"`
	Dereference bool   `koanf:"dereference" toml:"dereference" yaml:"dereference"`
	Targets     bool   `koanf:"targets" toml:"targets" yaml:"targets"`
}

// ValidColorMode reports whether mode is one of auto, always or never
func ValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// Validate normalizes and checks cfg
func (c *Config) Validate() error {
	c.Display.Color = strings.ToLower(strings.TrimSpace(c.Display.Color))
	if !ValidColorMode(c.Display.Color) {
		return errors.Newf(errors.ErrConfigValid, "invalid color mode %q", c.Display.Color).
			WithDetail("key", "display.color").
			WithDetail("allowed", []string{ColorAuto, ColorAlways, ColorNever})
	}
	if c.Database.Variable == "" {
		return errors.New(errors.ErrConfigValid, "database variable must not be empty").
			WithDetail("key", "database.variable")
	}
	return nil
}
