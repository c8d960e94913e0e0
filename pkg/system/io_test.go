package system

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadSystemRoundTrip(t *testing.T) {
	sys := &System{
		ID:     "sys-roundtrip",
		Seed:   42,
		Length: 3,
		Series: map[IndicatorKind]*Series{
			KindStability:      {Kind: KindStability, Values: []float64{0.1, 0.2, 0.3}},
			KindEntropyBalance: {Kind: KindEntropyBalance, Values: []float64{0.9, 0.8, 0.7}},
		},
		Stats:       SystemStats{SeriesCount: 2, SampleCount: 6},
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	path := filepath.Join(t.TempDir(), "nested", "sys.json")
	if err := SaveSystem(path, sys); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}

	got, err := LoadSystem(path)
	if err != nil {
		t.Fatalf("LoadSystem: %v", err)
	}

	if got.ID != sys.ID || got.Seed != sys.Seed || got.Length != sys.Length {
		t.Errorf("metadata mismatch: got %+v", got)
	}
	if len(got.Series) != 2 {
		t.Fatalf("got %d series, want 2", len(got.Series))
	}
	if got.Series[KindStability].Values[2] != 0.3 {
		t.Errorf("stability[2] = %g, want 0.3", got.Series[KindStability].Values[2])
	}
	if !got.GeneratedAt.Equal(sys.GeneratedAt) {
		t.Errorf("GeneratedAt = %v, want %v", got.GeneratedAt, sys.GeneratedAt)
	}
}

func TestLoadSystemMissingFile(t *testing.T) {
	if _, err := LoadSystem(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSeriesStats(t *testing.T) {
	s := &Series{Kind: KindCoherence, Values: []float64{0.25, 0.5, 0.75}}
	if got := s.Mean(); got != 0.5 {
		t.Errorf("Mean() = %g, want 0.5", got)
	}
	if got := s.Max(); got != 0.75 {
		t.Errorf("Max() = %g, want 0.75", got)
	}
	if got := s.Min(); got != 0.25 {
		t.Errorf("Min() = %g, want 0.25", got)
	}

	empty := &Series{Kind: KindCoherence}
	if empty.Mean() != 0 || empty.Max() != 0 || empty.Min() != 0 {
		t.Error("empty series stats should all be 0")
	}
}

func TestKindsOrder(t *testing.T) {
	want := []IndicatorKind{KindStability, KindRegenerative, KindCoherence, KindEntropyBalance}
	got := Kinds()
	if len(got) != len(want) {
		t.Fatalf("Kinds() returned %d kinds, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Kinds()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
