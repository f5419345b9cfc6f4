// Package config loads the schemaext configuration file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the schemaext configuration, read from schemaext.yml
// in the working directory with environment-variable overrides.
type Config struct {
	Definitions string        `mapstructure:"definitions"`
	Format      string        `mapstructure:"format"`
	Output      OutputConfig  `mapstructure:"output"`
	Extract     ExtractConfig `mapstructure:"extract"`
}

// OutputConfig controls where rendered output is written.
type OutputConfig struct {
	File string `mapstructure:"file"`
}

// ExtractConfig holds the default extraction toggles.
type ExtractConfig struct {
	Include []string `mapstructure:"include"`
	Exclude []string `mapstructure:"exclude"`
	Depth   int      `mapstructure:"depth"`
}

// Load loads the configuration from schemaext.yml or schemaext.yaml.
// A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("format", "compact")
	v.SetDefault("extract.depth", 10)

	v.SetConfigName("schemaext")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(cfg *Config) error {
	if cfg.Extract.Depth < 0 {
		return fmt.Errorf("extract.depth must not be negative, got: %d", cfg.Extract.Depth)
	}
	return nil
}
