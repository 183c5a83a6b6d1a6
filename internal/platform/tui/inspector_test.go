package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/statnerf/internal/config"
	"github.com/vovakirdan/statnerf/internal/core"
	"github.com/vovakirdan/statnerf/internal/farm"
	"github.com/vovakirdan/statnerf/internal/nerf"
	"github.com/vovakirdan/statnerf/internal/storage"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m InspectorModel, msgs ...tea.Msg) InspectorModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(InspectorModel)
		if !ok {
			t.Fatalf("Update() returned %T, want InspectorModel", next)
		}
	}
	return m
}

func newTestInspector(maxScore int, start core.PlantStats) InspectorModel {
	return NewInspectorModel(InspectorConfig{
		Nerfer: nerf.New(nerf.Fixed(maxScore), nerf.NewSource(1), nil),
		RNG:    nerf.NewSource(2),
		Start:  start,
		Width:  80,
		Height: 24,
	})
}

func TestInspectorAdjust(t *testing.T) {
	m := newTestInspector(200, *core.NewPlantStats(5, 5, 5))

	// Raise gain twice, move to growth, lower it once.
	m = press(t, m, keyRunes("+"), keyRunes("+"), keyRunes("j"), keyRunes("-"))

	if got := m.Stats(); got != *core.NewPlantStats(7, 4, 5) {
		t.Errorf("Stats() = %v, want {7 4 5}", &got)
	}
}

func TestInspectorAdjustStopsAtFloor(t *testing.T) {
	m := newTestInspector(200, *core.NewPlantStats(1, 5, 5))

	m = press(t, m, keyRunes("-"), keyRunes("-"))

	if got := m.Stats(); got.GainValue != nerf.Floor {
		t.Errorf("gain = %d, want %d", got.GainValue, nerf.Floor)
	}
}

func TestInspectorNerf(t *testing.T) {
	m := newTestInspector(27, *core.NewPlantStats(5, 5, 5))

	m = press(t, m, keyRunes("n"))

	got := m.Stats()
	if nerf.Score(&got) > 27 {
		t.Errorf("score after nerf = %d, want <= 27", nerf.Score(&got))
	}
	if m.last == nil || !m.last.Reached {
		t.Error("expected a reached nerf result")
	}
	if !strings.Contains(m.View(), "last nerf: 75") {
		t.Errorf("View() missing nerf summary:\n%s", m.View())
	}
}

func TestInspectorShowsReportedDiagnostic(t *testing.T) {
	m := newTestInspector(2, *core.NewPlantStats(3, 3, 3))

	if strings.Contains(m.View(), "already reported") {
		t.Fatal("View() shows a diagnostic before any nerf")
	}

	m = press(t, m, keyRunes("n"))

	if m.last == nil || m.last.Reached {
		t.Fatal("expected an unreachable nerf result")
	}
	if !strings.Contains(m.View(), "unreachable bound already reported") {
		t.Errorf("View() missing diagnostic note:\n%s", m.View())
	}
}

func TestInspectorScoreLineFollowsNerferBound(t *testing.T) {
	live := config.NewLive(config.DefaultConfig(), "")
	live.SetMaxScore(42)
	m := NewInspectorModel(InspectorConfig{
		Nerfer: nerf.New(live, nerf.NewSource(1), nil),
		Live:   live,
		Start:  *core.NewPlantStats(1, 1, 1),
		Width:  80,
		Height: 24,
	})

	want := RenderScoreLine(3, 42)
	if !strings.Contains(m.View(), want) {
		t.Errorf("View() missing %q:\n%s", want, m.View())
	}
}

func TestInspectorReroll(t *testing.T) {
	m := newTestInspector(200, *core.NewPlantStats(50, 50, 50))

	m = press(t, m, keyRunes("r"))

	got := m.Stats()
	for _, f := range nerf.Fields() {
		if v := f.Get(&got); v < 1 || v > rerollMax {
			t.Errorf("%s = %d after reroll, want [1, %d]", f.Name(), v, rerollMax)
		}
	}
}

func TestInspectorQuit(t *testing.T) {
	m := newTestInspector(200, *core.NewPlantStats(1, 1, 1))

	next, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if next.(InspectorModel).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestInspectorCropBank(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "crops.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.AddCrop("wheat", *core.NewPlantStats(9, 9, 9))
	if err != nil {
		t.Fatalf("AddCrop() failed: %v", err)
	}

	n := nerf.New(nerf.Fixed(100), nerf.NewSource(1), nil)
	m := NewInspectorModel(InspectorConfig{
		Nerfer: n,
		Farm:   farm.New(store, n, nil),
		Store:  store,
		Width:  120,
		Height: 30,
	})

	if !strings.Contains(m.View(), "wheat") {
		t.Errorf("View() missing banked crop:\n%s", m.View())
	}

	// Focus the bank, load the crop, then nerf it in place.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Stats(); got != *core.NewPlantStats(9, 9, 9) {
		t.Fatalf("loaded stats = %v, want {9 9 9}", &got)
	}

	m = press(t, m, keyRunes("s"))

	crop, err := store.Crop(id)
	if err != nil {
		t.Fatalf("Crop() failed: %v", err)
	}
	if nerf.Score(&crop.Stats) > 100 {
		t.Errorf("banked crop score = %d, want <= 100", nerf.Score(&crop.Stats))
	}
	if m.Stats() != crop.Stats {
		t.Errorf("editor shows %v, bank has %v", m.Stats(), crop.Stats)
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		value  int
		filled int
	}{
		{0, 0},
		{1, 2},
		{5, 10},
		{10, 20},
		{40, 20},
	}

	for _, tt := range tests {
		bar := RenderBar(tt.value)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("RenderBar(%d) filled %d cells, want %d", tt.value, got, tt.filled)
		}
		if got := len([]rune(bar)); got != barWidth {
			t.Errorf("RenderBar(%d) width = %d, want %d", tt.value, got, barWidth)
		}
	}
}

func TestRenderSteps(t *testing.T) {
	steps := []nerf.FieldID{nerf.FieldStrength, nerf.FieldGain, nerf.FieldStrength}
	if got := RenderSteps(steps); got != "gain -1, strength -2" {
		t.Errorf("RenderSteps() = %q", got)
	}
	if got := RenderSteps(nil); got != "no change" {
		t.Errorf("RenderSteps(nil) = %q", got)
	}
}
