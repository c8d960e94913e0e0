package synth

import (
	"context"
	"errors"
	"testing"

	"github.com/iels/iels/pkg/system"
)

func TestGenerateShape(t *testing.T) {
	g := &Generator{Seed: DefaultSeed, Length: 50}
	sys, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if sys.ID == "" {
		t.Error("expected a non-empty system ID")
	}
	if sys.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", sys.Seed, DefaultSeed)
	}
	if len(sys.Series) != 4 {
		t.Fatalf("got %d series, want 4", len(sys.Series))
	}

	for _, kind := range system.Kinds() {
		series, ok := sys.Series[kind]
		if !ok {
			t.Fatalf("missing series %s", kind)
		}
		if len(series.Values) != 50 {
			t.Errorf("%s: got %d samples, want 50", kind, len(series.Values))
		}
		for i, v := range series.Values {
			if v < 0 || v >= 1 {
				t.Errorf("%s[%d] = %g, want in [0, 1)", kind, i, v)
			}
		}
	}

	if sys.Stats.SeriesCount != 4 {
		t.Errorf("SeriesCount = %d, want 4", sys.Stats.SeriesCount)
	}
	if sys.Stats.SampleCount != 200 {
		t.Errorf("SampleCount = %d, want 200", sys.Stats.SampleCount)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := (&Generator{Seed: 42, Length: 200}).Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	b, err := (&Generator{Seed: 42, Length: 200}).Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, kind := range system.Kinds() {
		av := a.Series[kind].Values
		bv := b.Series[kind].Values
		for i := range av {
			if av[i] != bv[i] {
				t.Fatalf("%s[%d]: %v != %v for identical seeds", kind, i, av[i], bv[i])
			}
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a, _ := (&Generator{Seed: 1, Length: 100}).Generate(context.Background())
	b, _ := (&Generator{Seed: 2, Length: 100}).Generate(context.Background())

	same := true
	for i, v := range a.Series[system.KindStability].Values {
		if b.Series[system.KindStability].Values[i] != v {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical stability series")
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	for _, n := range []int{0, -1, -1000} {
		_, err := (&Generator{Seed: 42, Length: n}).Generate(context.Background())
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("length %d: err = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := (&Generator{Seed: 42, Length: 10}).Generate(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}
