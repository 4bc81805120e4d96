// SPDX-License-Identifier: MPL-2.0

// Package config loads the attestid CLI configuration. Configuration lives
// in a TOML file under the platform config directory and every key can be
// overridden through ATTESTID_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, also used as the config directory name.
	AppName = "attestid"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "ATTESTID"
)

var (
	// ErrInvalidOutputFormat is returned when the output format is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel is returned when the log level is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidSchemes is returned when the repository scheme settings are inconsistent.
	ErrInvalidSchemes = errors.New("invalid scheme configuration")
	// ErrConfigExists is returned by Init when a config file is already present.
	ErrConfigExists = errors.New("config file already exists")
)

// Allow tests and the --config-dir flag to override the config directory.
var configDirOverride string

// Config is the top-level CLI configuration.
type Config struct {
	// Output selects the CLI output format: "text" or "json".
	Output string `mapstructure:"output" toml:"output"`
	// LogLevel sets the logger threshold: debug, info, warn or error.
	LogLevel string `mapstructure:"log_level" toml:"log_level"`
	// DefaultScheme is applied to repository links that carry no scheme.
	DefaultScheme string `mapstructure:"default_scheme" toml:"default_scheme"`
	// AllowedSchemes lists the schemes a repository link may use.
	AllowedSchemes []string `mapstructure:"allowed_schemes" toml:"allowed_schemes"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output:         "text",
		LogLevel:       "info",
		DefaultScheme:  "git",
		AllowedSchemes: []string{"git", "https", "ssh", "file"},
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q (expected text or json)", ErrInvalidOutputFormat, c.Output)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q (expected debug, info, warn or error)", ErrInvalidLogLevel, c.LogLevel)
	}

	if len(c.AllowedSchemes) == 0 {
		return fmt.Errorf("%w: allowed_schemes must not be empty", ErrInvalidSchemes)
	}
	if !slices.Contains(c.AllowedSchemes, c.DefaultScheme) {
		return fmt.Errorf("%w: default_scheme %q is not in allowed_schemes %q",
			ErrInvalidSchemes, c.DefaultScheme, c.AllowedSchemes)
	}
	return nil
}

// ConfigDir returns the attestid configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// SetConfigDirOverride points config loading at a custom directory.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// ConfigFilePath returns the full path of the config file.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load reads the configuration from file and environment. A missing config
// file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("output", defaults.Output)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("default_scheme", defaults.DefaultScheme)
	v.SetDefault("allowed_schemes", defaults.AllowedSchemes)

	cfgDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)
	v.AddConfigPath(cfgDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init writes the default configuration to the config file. It refuses to
// overwrite an existing file.
func Init() (string, error) {
	path, err := ConfigFilePath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}

// Render returns the TOML rendering of cfg, the same shape Init writes.
func Render(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}
