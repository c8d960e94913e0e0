// Package system defines the core data model for IELS.
// These types are the shared vocabulary across all modules.
package system

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// IndicatorKind identifies one of the four informational indicators.
type IndicatorKind string

const (
	KindStability      IndicatorKind = "stability"
	KindRegenerative   IndicatorKind = "regenerative"
	KindCoherence      IndicatorKind = "coherence"
	KindEntropyBalance IndicatorKind = "entropy_balance"
)

// Kinds returns all indicator kinds in canonical report order.
func Kinds() []IndicatorKind {
	return []IndicatorKind{KindStability, KindRegenerative, KindCoherence, KindEntropyBalance}
}

// Label returns the human-readable indicator name.
func (k IndicatorKind) Label() string {
	switch k {
	case KindStability:
		return "Stability"
	case KindRegenerative:
		return "Regenerative Index"
	case KindCoherence:
		return "Coherence"
	case KindEntropyBalance:
		return "Entropy-Balance"
	default:
		return string(k)
	}
}

// Series is one indicator's ordered sample sequence.
type Series struct {
	Kind   IndicatorKind `json:"kind"`
	Values []float64     `json:"values"`
}

// Mean returns the arithmetic mean of the series, or 0 for an empty series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Max returns the maximum sample value, or 0 for an empty series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return floats.Max(s.Values)
}

// Min returns the minimum sample value, or 0 for an empty series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return floats.Min(s.Values)
}

// System represents one synthetic informational system: four indicator series
// produced from a single seed. Systems are immutable once generated.
type System struct {
	ID          string                    `json:"id"`
	Seed        uint64                    `json:"seed"`
	Length      int                       `json:"length"`
	Series      map[IndicatorKind]*Series `json:"series"`
	Stats       SystemStats               `json:"stats"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

// SystemStats holds summary statistics for a system.
type SystemStats struct {
	SeriesCount int `json:"series_count"`
	SampleCount int `json:"sample_count"` // samples across all series
	SynthesisMs int `json:"synthesis_ms"`
}
