package config

import (
	_ "embed"
)

//go:embed defaults/statnerf.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Nerf: NerfConfig{
			MaxStatScore: 200,
			Seed:         0,
		},
		Log: LogConfig{
			Level:     "info",
			Prefix:    "statnerf",
			Timestamp: true,
		},
		Storage: StorageConfig{
			DBPath: "~/.statnerf/crops.db",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
