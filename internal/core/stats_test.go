package core

import "testing"

func TestPlantStatsAccessors(t *testing.T) {
	p := NewPlantStats(3, 4, 5)

	p.SetGain(7)
	p.SetGrowth(8)
	p.SetStrength(9)

	if p.Gain() != 7 || p.Growth() != 8 || p.Strength() != 9 {
		t.Errorf("accessors returned %d/%d/%d, want 7/8/9", p.Gain(), p.Growth(), p.Strength())
	}
}

func TestSnapshotCopies(t *testing.T) {
	p := NewPlantStats(2, 3, 4)
	snap := Snapshot(p)

	p.SetGain(1)

	if snap.GainValue != 2 {
		t.Errorf("Snapshot() shares state with source: gain = %d, want 2", snap.GainValue)
	}
}

func TestPlantStatsString(t *testing.T) {
	p := NewPlantStats(1, 2, 3)
	want := "{gain: 1; growth: 2; strength: 3}"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
