// Package nerf brings a crop's stat score back under a configured bound.
//
// The score of a crop is gain² + growth² + strength². When it exceeds the
// bound, a Nerfer lowers one stat at a time by 1, choosing uniformly among the
// stats still above the floor, until the score fits or nothing can be lowered.
package nerf

import "github.com/vovakirdan/statnerf/internal/core"

// Floor is the lowest value a stat can reach through a nerf.
const Floor = 1

// FieldID identifies one of the three stats.
type FieldID int

const (
	FieldGain FieldID = iota
	FieldGrowth
	FieldStrength
)

// String returns the stat name.
func (id FieldID) String() string {
	switch id {
	case FieldGain:
		return "gain"
	case FieldGrowth:
		return "growth"
	case FieldStrength:
		return "strength"
	default:
		return "unknown"
	}
}

// Field pairs a stat with its accessor and mutator.
type Field struct {
	ID  FieldID
	get func(core.Stats) int
	set func(core.Stats, int)
}

// Get reads the stat from s.
func (f Field) Get(s core.Stats) int { return f.get(s) }

// Set writes v into the stat on s.
func (f Field) Set(s core.Stats, v int) { f.set(s, v) }

// Name returns the stat name.
func (f Field) Name() string { return f.ID.String() }

// fields is indexed by FieldID and never modified.
var fields = [...]Field{
	FieldGain: {
		ID:  FieldGain,
		get: func(s core.Stats) int { return s.Gain() },
		set: func(s core.Stats, v int) { s.SetGain(v) },
	},
	FieldGrowth: {
		ID:  FieldGrowth,
		get: func(s core.Stats) int { return s.Growth() },
		set: func(s core.Stats, v int) { s.SetGrowth(v) },
	},
	FieldStrength: {
		ID:  FieldStrength,
		get: func(s core.Stats) int { return s.Strength() },
		set: func(s core.Stats, v int) { s.SetStrength(v) },
	},
}

// Fields returns the stat descriptors in FieldID order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields[:])
	return out
}

// FieldByID returns the descriptor for id.
func FieldByID(id FieldID) (Field, bool) {
	if id < 0 || int(id) >= len(fields) {
		return Field{}, false
	}
	return fields[id], true
}
