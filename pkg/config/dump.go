package config

import (
	"github.com/arthur-debert/dircolors/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats for Marshal
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Marshal renders cfg as TOML or YAML
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch format {
	case FormatTOML, "":
		out, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as TOML")
		}
		return out, nil
	case FormatYAML, "yml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as YAML")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format).
			WithDetail("allowed", []string{FormatTOML, FormatYAML})
	}
}
