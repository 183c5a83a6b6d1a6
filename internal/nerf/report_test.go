package nerf

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/statnerf/internal/core"
)

func TestReporterConcurrentFirstWins(t *testing.T) {
	var mu sync.Mutex
	emitted := 0
	r := NewReporter(SinkFunc(func(string) {
		mu.Lock()
		emitted++
		mu.Unlock()
	}))

	var wg sync.WaitGroup
	wins := make(chan bool, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- r.ReportUnreachable(core.NewPlantStats(1, 1, 1), 0)
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for w := range wins {
		if w {
			winners++
		}
	}
	if winners != 1 || emitted != 1 {
		t.Errorf("winners = %d, emitted = %d; want 1, 1", winners, emitted)
	}
	if !r.Reported() {
		t.Error("Reported() = false after a report")
	}
}

func TestLogSinkWritesFatalLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	r := NewReporter(LogSink{Logger: logger})

	r.ReportUnreachable(core.NewPlantStats(2, 1, 1), 5)

	out := buf.String()
	if !strings.Contains(out, "FATA") {
		t.Errorf("log output %q missing fatal level", out)
	}
	if !strings.Contains(out, "stat score 6") || !strings.Contains(out, "[0; 5]") {
		t.Errorf("log output %q missing score or bound", out)
	}
}

func TestUnreachableMessage(t *testing.T) {
	got := UnreachableMessage(core.NewPlantStats(1, 2, 3), 4)
	want := "crop stats {gain: 1; growth: 2; strength: 3} have stat score 14 that cannot be reduced into bounds [0; 4]"
	if got != want {
		t.Errorf("UnreachableMessage() = %q, want %q", got, want)
	}
}
