// Package config handles configuration management for dircolors.
// It layers the embedded defaults, an optional user file (TOML or YAML)
// and DIRCOLORS_* environment variables, in that order.
package config
