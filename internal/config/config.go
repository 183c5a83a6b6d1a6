// Package config provides YAML-based configuration loading for statnerf,
// with environment overrides and a live view of the stat score bound.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Config contains all statnerf settings.
type Config struct {
	Nerf    NerfConfig    `yaml:"nerf"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

// NerfConfig defines the stat reduction parameters.
type NerfConfig struct {
	MaxStatScore int   `yaml:"max_stat_score" env:"STATNERF_MAX_STAT_SCORE"`
	Seed         int64 `yaml:"seed" env:"STATNERF_SEED"` // 0 = random
}

// LogConfig defines logger output.
type LogConfig struct {
	Level     string `yaml:"level" env:"STATNERF_LOG_LEVEL"` // debug, info, warn, error, fatal
	Prefix    string `yaml:"prefix"`
	Timestamp bool   `yaml:"timestamp"`
}

// StorageConfig defines where the crop bank lives.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"STATNERF_DB"`
}

// Validate checks that the config can be used.
func (c Config) Validate() error {
	if c.Nerf.MaxStatScore < 0 {
		return fmt.Errorf("config: max_stat_score must be non-negative, got %d", c.Nerf.MaxStatScore)
	}
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("config: invalid log level %q", c.Log.Level)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path is empty")
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
