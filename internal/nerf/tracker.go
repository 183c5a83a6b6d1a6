package nerf

import (
	"errors"

	"github.com/vovakirdan/statnerf/internal/core"
)

// ErrNoReducibleFields is returned when a pick is attempted after every stat
// has reached the floor.
var ErrNoReducibleFields = errors.New("nerf: no stats are reducible")

// tracker remembers which stats can still be lowered during one Nerf call.
// A stat that drops out never comes back.
type tracker struct {
	eligible [len(fields)]bool
	size     int
}

func newTracker() *tracker {
	t := &tracker{size: len(fields)}
	for i := range t.eligible {
		t.eligible[i] = true
	}
	return t
}

// update drops every stat that is at or below the floor on s.
func (t *tracker) update(s core.Stats) {
	for i, f := range fields {
		if !t.eligible[i] {
			continue
		}
		if f.Get(s) <= Floor {
			t.eligible[i] = false
			t.size--
		}
	}
}

// pick returns one of the remaining stats, each with equal probability.
func (t *tracker) pick(rng Source) (Field, error) {
	if t.size == 0 {
		return Field{}, ErrNoReducibleFields
	}

	candidates := make([]FieldID, 0, len(fields))
	for i, ok := range t.eligible {
		if ok {
			candidates = append(candidates, FieldID(i))
		}
	}

	return fields[candidates[rng.Intn(len(candidates))]], nil
}

func (t *tracker) empty() bool {
	return t.size == 0
}
