// Package config provides Viper-based configuration loading for Gravenhold.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameConfig holds simulation settings.
type GameConfig struct {
	// Seed drives all combat and loot randomness. A seed of 0 means a
	// time-based seed is generated at startup.
	Seed int64 `mapstructure:"seed"`
	// Verbosity is the presentation detail level: "normal" or "debug".
	Verbosity string `mapstructure:"verbosity"`
}

// TelemetryConfig holds tracing settings.
type TelemetryConfig struct {
	// Enabled turns OTLP trace export on or off.
	Enabled bool `mapstructure:"enabled"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Game      GameConfig      `mapstructure:"game"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}
	validVerbosity := map[string]bool{"normal": true, "debug": true}
	if !validVerbosity[c.Game.Verbosity] {
		errs = append(errs, fmt.Sprintf("game.verbosity must be one of [normal, debug], got %q", c.Game.Verbosity))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path (optional), applies
// environment variable overrides, and validates the result. An empty path
// loads defaults and environment overrides only.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with GRAVENHOLD_ prefix
	v.SetEnvPrefix("GRAVENHOLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.verbosity", "normal")

	v.SetDefault("telemetry.enabled", false)
}
