package nerf

import (
	"math"
	"math/bits"

	"github.com/vovakirdan/statnerf/internal/core"
)

// Score returns gain² + growth² + strength².
// The sum saturates at math.MaxInt64, so any stat large enough to overflow
// still scores above every bound and never passes as within it.
func Score(s core.Stats) int64 {
	var sum int64
	for _, f := range fields {
		sum = addSquare(sum, f.Get(s))
	}
	return sum
}

// addSquare returns sum + v², clamped to math.MaxInt64. sum must be >= 0.
func addSquare(sum int64, v int) int64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	hi, lo := bits.Mul64(u, u)
	if hi != 0 || lo > math.MaxInt64 {
		return math.MaxInt64
	}
	total := uint64(sum) + lo
	if total > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(total)
}

// Slack returns how many single-point nerfs s can still absorb before every
// stat sits at the floor.
func Slack(s core.Stats) int {
	total := 0
	for _, f := range fields {
		if v := f.Get(s); v > Floor {
			total += v - Floor
		}
	}
	return total
}

// Reachable reports whether lowering every stat to the floor would bring s
// within maxScore. Stats already at or below the floor keep their value.
func Reachable(s core.Stats, maxScore int) bool {
	var sum int64
	for _, f := range fields {
		sum = addSquare(sum, min(f.Get(s), Floor))
	}
	return sum <= int64(maxScore)
}
