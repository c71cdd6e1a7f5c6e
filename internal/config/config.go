// Package config provides configuration loading for the forge CLI.
package config

import "github.com/forgeframework/forge/internal/version"

// Config represents the forge CLI configuration.
// Loaded from ~/.forge/config.yaml; environment variables take precedence.
type Config struct {
	// ElixirVersion overrides the detected Elixir runtime version used when
	// stamping the generated project's tooling requirements.
	// Env: FORGE_ELIXIR_VERSION
	ElixirVersion string `mapstructure:"elixirVersion" yaml:"elixirVersion,omitempty"`

	// DefaultStyles selects the API styles applied when no style flag is
	// passed on the command line. Empty keeps the built-in graphql default.
	// Env: FORGE_DEFAULT_STYLES (comma-separated)
	DefaultStyles []string `mapstructure:"defaultStyles" yaml:"defaultStyles,omitempty"`

	// NoColor disables styled terminal output.
	// Env: FORGE_NO_COLOR
	NoColor bool `mapstructure:"noColor" yaml:"noColor,omitempty"`
}

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.ElixirVersion == "" {
		out.ElixirVersion = version.DefaultElixirVersion
	}
	return &out
}

// DefaultConfig returns a Config with all default values populated.
// Used by `forge config init` to generate the initial config file.
func DefaultConfig() *Config {
	return (&Config{}).WithDefaults()
}
