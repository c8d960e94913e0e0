// Package scoring implements the IELS scoring engine. It reduces a synthetic
// system's indicator series to per-indicator means and combines them into a
// single Earth-likeness score via a weighted geometric mean.
package scoring

import "time"

// ScoreResult is the complete output of scoring a system.
// Immutable once computed.
type ScoreResult struct {
	SystemID    string            `json:"system_id"`
	Seed        uint64            `json:"seed"`
	Score       float64           `json:"score"` // in [0, 1]
	Band        string            `json:"band"`  // EARTHLIKE .. INERT
	Breakdown   []IndicatorResult `json:"breakdown"`
	SystemStats SystemStatsView   `json:"system_stats"`
	ScoredAt    time.Time         `json:"scored_at"`
}

// SystemStatsView is a read-only summary of the scored system for display purposes.
type SystemStatsView struct {
	SeriesCount int `json:"series_count"`
	SampleCount int `json:"sample_count"`
	SynthesisMs int `json:"synthesis_ms"`
}

// IndicatorResult is the output of a single indicator.
type IndicatorResult struct {
	Key     string  `json:"key"`     // machine key: "entropy_balance"
	Name    string  `json:"name"`    // human name: "Entropy-Balance"
	Mean    float64 `json:"mean"`    // mean of the normalized series, in (0, 1]
	Weight  float64 `json:"weight"`  // geometric-mean exponent share
	Samples int     `json:"samples"` // series length
}

// BandFromScore maps a score in [0, 1] to an interpretation band.
func BandFromScore(score float64) string {
	switch {
	case score >= 0.8:
		return "EARTHLIKE"
	case score >= 0.6:
		return "BALANCED"
	case score >= 0.4:
		return "DRIFTING"
	case score >= 0.2:
		return "UNSTABLE"
	default:
		return "INERT"
	}
}
