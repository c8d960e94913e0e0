package system

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Epsilon is the floor applied before normalization. It guarantees a positive
// maximum even for all-zero or all-negative input, so the division is safe.
const Epsilon = 1e-15

// Normalize rescales values so the maximum is exactly 1.0. Every value is
// first floored at Epsilon, then divided by the floored maximum. The result
// lies in (0, 1]. The input slice is not modified.
func Normalize(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("normalize: empty series")
	}

	out := make([]float64, len(values))
	copy(out, values)
	for i, v := range out {
		if v < Epsilon {
			out[i] = Epsilon
		}
	}

	// Divide rather than multiply by the reciprocal: x/x is exactly 1.0 in
	// IEEE 754, which keeps Normalize idempotent on already-normalized input.
	max := floats.Max(out)
	for i := range out {
		out[i] /= max
	}
	return out, nil
}

// NormalizeSystem returns a copy of sys with every series normalized.
// The input system is left untouched.
func NormalizeSystem(sys *System) (*System, error) {
	if sys == nil {
		return nil, fmt.Errorf("normalize system: nil system")
	}

	norm := &System{
		ID:          sys.ID,
		Seed:        sys.Seed,
		Length:      sys.Length,
		Series:      make(map[IndicatorKind]*Series, len(sys.Series)),
		Stats:       sys.Stats,
		GeneratedAt: sys.GeneratedAt,
	}

	for kind, series := range sys.Series {
		values, err := Normalize(series.Values)
		if err != nil {
			return nil, fmt.Errorf("normalize %s series: %w", kind, err)
		}
		norm.Series[kind] = &Series{Kind: kind, Values: values}
	}

	return norm, nil
}
