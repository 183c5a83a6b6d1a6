package core

// RuntimeConfig contains the settings resolved by the CLI before a run.
// Seed 0 means a fresh random seed is drawn at startup.
type RuntimeConfig struct {
	MaxStatScore int    // Bound on gain² + growth² + strength²
	Seed         int64  // RNG seed for reproducible nerfs
	DBPath       string // Crop bank location
	ScreenW      int    // Inspector width in characters
	ScreenH      int    // Inspector height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		MaxStatScore: 200,
		Seed:         0,
		DBPath:       "~/.statnerf/crops.db",
		ScreenW:      80,
		ScreenH:      24,
	}
}
