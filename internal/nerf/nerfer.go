package nerf

import "github.com/vovakirdan/statnerf/internal/core"

// MaxScorer supplies the current score bound. It is polled on every Nerf
// call, so the bound may change between calls.
type MaxScorer interface {
	MaxScore() int
}

// Fixed is a MaxScorer that always returns the same bound.
type Fixed int

// MaxScore returns the bound.
func (f Fixed) MaxScore() int { return int(f) }

// Result describes one Nerf call.
type Result struct {
	Before      core.PlantStats
	After       core.PlantStats
	ScoreBefore int64
	ScoreAfter  int64
	MaxScore    int
	Steps       []FieldID // Stats lowered by 1, in order
	Reached     bool      // False when the floor kept the score above MaxScore
}

// Changed reports whether any stat was lowered.
func (r Result) Changed() bool {
	return len(r.Steps) > 0
}

// Nerfer lowers crop stats until their score fits under the bound.
// A Nerfer holds no per-call state and may be shared between goroutines as
// long as each call works on its own Stats.
type Nerfer struct {
	bound    MaxScorer
	rng      Source
	reporter *Reporter
}

// New creates a Nerfer. reporter may be shared with other Nerfers so the
// unreachable diagnostic fires once per process.
func New(bound MaxScorer, rng Source, reporter *Reporter) *Nerfer {
	if reporter == nil {
		reporter = NewReporter(nil)
	}
	return &Nerfer{
		bound:    bound,
		rng:      rng,
		reporter: reporter,
	}
}

// Nerf lowers s in place until Score(s) <= the current bound, one point at a
// time, or until every stat sits at the floor. In the latter case the
// diagnostic is reported and s keeps the values reached so far.
func (n *Nerfer) Nerf(s core.Stats) Result {
	maxScore := n.bound.MaxScore()
	score := Score(s)

	res := Result{
		Before:      core.Snapshot(s),
		ScoreBefore: score,
		MaxScore:    maxScore,
	}

	if score <= int64(maxScore) {
		res.After = res.Before
		res.ScoreAfter = score
		res.Reached = true
		return res
	}

	t := newTracker()
	for score > int64(maxScore) {
		t.update(s)
		if t.empty() {
			n.reporter.ReportUnreachable(s, maxScore)
			break
		}

		f, err := t.pick(n.rng)
		if err != nil {
			panic(err)
		}
		f.Set(s, f.Get(s)-1)
		res.Steps = append(res.Steps, f.ID)

		score = Score(s)
	}

	res.After = core.Snapshot(s)
	res.ScoreAfter = score
	res.Reached = score <= int64(maxScore)
	return res
}

// MaxScore returns the bound the next Nerf call would use.
func (n *Nerfer) MaxScore() int {
	return n.bound.MaxScore()
}

// Reporter returns the reporter shared by this Nerfer.
func (n *Nerfer) Reporter() *Reporter {
	return n.reporter
}
