// Package core holds the plain data types shared by the reducer, the crop bank
// and the inspector. Nothing here depends on storage or the terminal.
package core

import "fmt"

// Stats is the caller-owned view of a crop's three stats.
// Implementations decide where the values live; the reducer only reads and
// writes them through these accessors.
type Stats interface {
	Gain() int
	SetGain(v int)
	Growth() int
	SetGrowth(v int)
	Strength() int
	SetStrength(v int)
}

// PlantStats is the in-memory Stats used by the CLI and the crop bank.
type PlantStats struct {
	GainValue     int `yaml:"gain"`
	GrowthValue   int `yaml:"growth"`
	StrengthValue int `yaml:"strength"`
}

// NewPlantStats creates a PlantStats with the given values.
func NewPlantStats(gain, growth, strength int) *PlantStats {
	return &PlantStats{
		GainValue:     gain,
		GrowthValue:   growth,
		StrengthValue: strength,
	}
}

// Gain returns the gain stat.
func (p *PlantStats) Gain() int { return p.GainValue }

// SetGain sets the gain stat.
func (p *PlantStats) SetGain(v int) { p.GainValue = v }

// Growth returns the growth stat.
func (p *PlantStats) Growth() int { return p.GrowthValue }

// SetGrowth sets the growth stat.
func (p *PlantStats) SetGrowth(v int) { p.GrowthValue = v }

// Strength returns the strength stat.
func (p *PlantStats) Strength() int { return p.StrengthValue }

// SetStrength sets the strength stat.
func (p *PlantStats) SetStrength(v int) { p.StrengthValue = v }

// String formats the stats the way they appear in logs and CLI output.
func (p *PlantStats) String() string {
	return fmt.Sprintf("{gain: %d; growth: %d; strength: %d}", p.GainValue, p.GrowthValue, p.StrengthValue)
}

// Snapshot copies the current values of any Stats into a PlantStats.
func Snapshot(s Stats) PlantStats {
	return PlantStats{
		GainValue:     s.Gain(),
		GrowthValue:   s.Growth(),
		StrengthValue: s.Strength(),
	}
}
