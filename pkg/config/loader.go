package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dircolors/pkg/errors"
	"github.com/arthur-debert/dircolors/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppDir is the directory name under the XDG config home
	AppDir = "dircolors"
	// EnvPrefix prefixes environment overrides, e.g. DIRCOLORS_DISPLAY_COLOR
	EnvPrefix = "DIRCOLORS_"
)

// userConfigNames are tried in order inside the config directory
var userConfigNames = []string{"config.toml", "config.yaml", "config.yml"}

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Default returns the built-in configuration, ignoring user files and the
// environment
func Default() *Config {
	cfg, err := load("")
	if err != nil {
		// the embedded defaults are part of the binary
		panic(err)
	}
	return cfg
}

// Load builds the effective configuration. When path is empty the first
// config.{toml,yaml,yml} found in the XDG config directory is used, if any;
// an explicit path must exist.
func Load(path string) (*Config, error) {
	log := logging.GetLogger("config")

	if path == "" {
		path = findUserConfig()
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}

	cfg, err := loadWithEnv(path)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Str("color", cfg.Display.Color).
		Str("database_file", cfg.Database.File).
		Msg("Configuration loaded")
	return cfg, nil
}

func load(path string) (*Config, error) {
	k, err := newKoanf(path)
	if err != nil {
		return nil, err
	}
	return unmarshal(k)
}

func loadWithEnv(path string) (*Config, error) {
	k, err := newKoanf(path)
	if err != nil {
		return nil, err
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	return unmarshal(k)
}

func newKoanf(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. User file
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
				WithDetail("path", path)
		}
	}
	return k, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parserFor picks the koanf parser from the file extension; anything that
// is not YAML is read as TOML
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// ConfigDir returns the dircolors directory under the XDG config home
func ConfigDir() string {
	// XDG_CONFIG_HOME is read directly so a changed environment is honored
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppDir)
	}
	return filepath.Join(xdg.ConfigHome, AppDir)
}

func findUserConfig() string {
	dir := ConfigDir()
	for _, name := range userConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
