// Package config loads tool configuration for a scanned project.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigDir is the per-project directory holding blueprint configuration.
const ConfigDir = ".blueprint"

// Config is the tool configuration, read from .blueprint/config.json under
// the scanned project root.
type Config struct {
	Version int           `json:"version" mapstructure:"version"`
	Ignore  []string      `json:"ignore" mapstructure:"ignore"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig selects log output format and level.
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the configuration used when no config file exists.
// The ignore list defaults to empty: every glob-matched file is scanned.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Ignore:  []string{},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads configuration from .blueprint/config.json under root, falling
// back to defaults when the file is absent.
func Load(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ConfigDir))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Ignore == nil {
		cfg.Ignore = []string{}
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "human"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return &cfg, nil
}

// Save writes the configuration to .blueprint/config.json, creating the
// directory as needed.
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}
