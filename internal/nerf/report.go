package nerf

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/statnerf/internal/core"
)

// Sink receives the formatted unreachable-bound diagnostic.
type Sink interface {
	Fatal(msg string)
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(msg string)

// Fatal calls f(msg).
func (f SinkFunc) Fatal(msg string) { f(msg) }

// LogSink writes diagnostics to a charmbracelet logger at fatal level
// without exiting the process.
type LogSink struct {
	Logger *log.Logger
}

// Fatal logs msg at log.FatalLevel.
func (s LogSink) Fatal(msg string) {
	if s.Logger == nil {
		return
	}
	s.Logger.Log(log.FatalLevel, msg)
}

// Reporter emits the unreachable-bound diagnostic at most once over its
// lifetime. Create one at startup and share it between Nerfers.
type Reporter struct {
	reported atomic.Bool
	sink     Sink
}

// NewReporter creates a Reporter writing to sink.
func NewReporter(sink Sink) *Reporter {
	return &Reporter{sink: sink}
}

// ReportUnreachable emits the diagnostic for s if nothing has been reported
// yet. Returns true for the one call that actually emitted.
func (r *Reporter) ReportUnreachable(s core.Stats, maxScore int) bool {
	if !r.reported.CompareAndSwap(false, true) {
		return false
	}
	if r.sink != nil {
		r.sink.Fatal(UnreachableMessage(s, maxScore))
	}
	return true
}

// Reported reports whether the diagnostic has fired.
func (r *Reporter) Reported() bool {
	return r.reported.Load()
}

// UnreachableMessage formats the diagnostic text for s.
func UnreachableMessage(s core.Stats, maxScore int) string {
	return fmt.Sprintf(
		"crop stats {gain: %d; growth: %d; strength: %d} have stat score %d that cannot be reduced into bounds [0; %d]",
		s.Gain(), s.Growth(), s.Strength(), Score(s), maxScore,
	)
}
