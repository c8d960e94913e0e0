package scoring

import "github.com/iels/iels/pkg/system"

// DefaultIndicators returns the standard set of indicators with default weights.
func DefaultIndicators() []Indicator {
	w := Defaults()
	return []Indicator{
		&MeanIndicator{Kind: system.KindStability, Weight: w.Stability},
		&MeanIndicator{Kind: system.KindRegenerative, Weight: w.Regenerative},
		&MeanIndicator{Kind: system.KindCoherence, Weight: w.Coherence},
		&MeanIndicator{Kind: system.KindEntropyBalance, Weight: w.EntropyBalance},
	}
}

// IndicatorsWithWeights builds the standard indicator set, overriding default
// weights with any entries in the overrides map (keyed by indicator key).
func IndicatorsWithWeights(overrides map[string]float64) []Indicator {
	indicators := DefaultIndicators()
	if len(overrides) == 0 {
		return indicators
	}
	for _, ind := range indicators {
		mi, ok := ind.(*MeanIndicator)
		if !ok {
			continue
		}
		if w, ok := overrides[mi.Key()]; ok {
			mi.Weight = w
		}
	}
	return indicators
}
