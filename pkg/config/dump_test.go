// pkg/config/dump_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test rendering the effective configuration

package config_test

import (
	"testing"

	"github.com/arthur-debert/dircolors/pkg/config"
	"github.com/arthur-debert/dircolors/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshal_TOML(t *testing.T) {
	cfg := config.Default()
	cfg.Database.File = "/etc/DIR_COLORS"

	out, err := config.Marshal(cfg, config.FormatTOML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[database]")
	assert.Contains(t, string(out), "[display]")

	var back config.Config
	require.NoError(t, toml.Unmarshal(out, &back))
	assert.Equal(t, *cfg, back)
}

func TestMarshal_YAML(t *testing.T) {
	cfg := config.Default()
	cfg.Display.Color = config.ColorNever

	out, err := config.Marshal(cfg, config.FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "color: never")

	var back config.Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, *cfg, back)
}

func TestMarshal_UnknownFormat(t *testing.T) {
	_, err := config.Marshal(config.Default(), "json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
