package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidSettleDelay indicates the settle delay is negative.
	ErrInvalidSettleDelay = errors.New("invalid settle delay")
)

// DefaultSettleDelay is the pause after a shortcut install, giving the
// shell time to index the new application identity before a notification
// is shown under it.
const DefaultSettleDelay = Duration(3 * time.Second)

// DefaultAppID is the identity used when neither the request nor the
// configuration names one.
const DefaultAppID = "Toastkit.CLI"

// FallbackConfig holds settings for the plain banner fallback.
type FallbackConfig struct {
	// Enabled sends a plain banner when the platform cannot show
	// notification documents at all.
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level is the logging level (debug, info, warn, error).
	Level string `yaml:"level,omitempty"`
	// JSON enables JSON-formatted logging.
	JSON bool `yaml:"json,omitempty"`
	// File is an optional log file path; empty logs to stderr.
	File string `yaml:"file,omitempty"`
}

// Config represents the toastkit configuration.
type Config struct {
	// AppID is the application identity used when a request does not
	// carry its own.
	AppID string `yaml:"app_id,omitempty"`
	// SettleDelay is the pause after installing or rewriting a shortcut.
	SettleDelay Duration `yaml:"settle_delay,omitempty"`
	// Fallback holds fallback banner settings.
	Fallback FallbackConfig `yaml:"fallback,omitempty"`
	// Logging holds log output settings.
	Logging LoggingConfig `yaml:"logging,omitempty"`

	// filePath is the path where this config was loaded from.
	filePath string `yaml:"-"`
}

// Default returns a new Config with default values.
func Default() *Config {
	paths := GetPaths()
	return &Config{
		AppID:       DefaultAppID,
		SettleDelay: DefaultSettleDelay,
		Fallback: FallbackConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		filePath: paths.ConfigFile,
	}
}

// Load loads the configuration from the default path.
func Load() (*Config, error) {
	paths := GetPaths()
	return LoadFrom(paths.ConfigFile)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	// #nosec G304 - path is the config file path (controlled, from user config directory)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for missing values
	if cfg.AppID == "" {
		cfg.AppID = DefaultAppID
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.SettleDelay < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSettleDelay, c.SettleDelay)
	}
	return nil
}

// Save writes the configuration to its file path.
func (c *Config) Save() error {
	if c.filePath == "" {
		return errors.New("config file path not set")
	}

	// Ensure the directory exists
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FilePath returns the path where this config was loaded from.
func (c *Config) FilePath() string {
	return c.filePath
}
