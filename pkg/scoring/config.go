package scoring

// DefaultWeights holds the default geometric-mean weights for all indicators.
// Equal weights reproduce the plain 4th-root combination.
type DefaultWeights struct {
	Stability      float64
	Regenerative   float64
	Coherence      float64
	EntropyBalance float64
}

// Defaults returns the default indicator weights.
func Defaults() DefaultWeights {
	return DefaultWeights{
		Stability:      1.0,
		Regenerative:   1.0,
		Coherence:      1.0,
		EntropyBalance: 1.0,
	}
}
