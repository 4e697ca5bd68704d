// Package config provides configuration management for ocmigrate using Viper.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// AppName is the application name used for config file naming.
const AppName = "ocmigrate"

// Baked-in defaults. Every value can be overridden via the optional
// ocmigrate.yaml config file or OCMIGRATE_* environment variables.
const (
	// DefaultModel is the main fallback model identifier.
	DefaultModel = "opencode/claude-sonnet-4-5"

	// DefaultSmallModel is the fast fallback model identifier.
	DefaultSmallModel = "opencode/claude-haiku-4-5"

	// DefaultSchema is the settings document schema reference.
	DefaultSchema = "https://opencode.ai/config.json"
)

// DefaultInstructions is the instruction-glob list written to the
// generated settings document.
var DefaultInstructions = []string{".opencode/rules/**/*.md"}

// Config represents the resolved tool configuration.
type Config struct {
	// Model is the main default model written to settings and used as
	// the fallback for source-ecosystem model identifiers.
	Model string `mapstructure:"model" yaml:"model"`

	// SmallModel is the fast default model, used for low-tier shorthand.
	SmallModel string `mapstructure:"small_model" yaml:"small_model"`

	// Schema is the $schema reference in the generated settings document.
	Schema string `mapstructure:"schema" yaml:"schema"`

	// Instructions is the instruction-glob list for the settings document.
	Instructions []string `mapstructure:"instructions" yaml:"instructions"`
}

// Init initializes Viper with defaults and search paths.
// Call this once at application startup before Load.
// projectRoot may be empty when no project has been resolved yet.
func Init(projectRoot string) {
	viper.SetConfigName(AppName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	if projectRoot != "" {
		viper.AddConfigPath(projectRoot)
	}
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	// Environment variable support
	viper.SetEnvPrefix("OCMIGRATE")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("model", DefaultModel)
	viper.SetDefault("small_model", DefaultSmallModel)
	viper.SetDefault("schema", DefaultSchema)
	viper.SetDefault("instructions", DefaultInstructions)
}

// Load reads the configuration file from the search paths.
// A missing config file is not an error; defaults are used.
func Load() (*Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// Default returns a Config holding only the baked-in defaults,
// bypassing Viper. Useful in tests and library use.
func Default() *Config {
	return &Config{
		Model:        DefaultModel,
		SmallModel:   DefaultSmallModel,
		Schema:       DefaultSchema,
		Instructions: append([]string(nil), DefaultInstructions...),
	}
}
