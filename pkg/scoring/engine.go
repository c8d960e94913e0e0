package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/iels/iels/pkg/system"
)

// Indicator is the interface that all scoring indicators implement.
type Indicator interface {
	// Key returns the machine-readable indicator identifier.
	Key() string
	// Name returns the human-readable indicator name.
	Name() string
	// Evaluate reduces the indicator's series to a single mean contribution.
	Evaluate(sys *system.System) (IndicatorResult, error)
}

// Engine runs all configured indicators against a system and produces a ScoreResult.
type Engine struct {
	indicators []Indicator
}

// NewEngine creates a scoring engine with the given indicators.
func NewEngine(indicators ...Indicator) *Engine {
	return &Engine{indicators: indicators}
}

// Score evaluates all indicators and combines their means into the final
// Earth-likeness score. With N equally weighted indicators this is the Nth
// root of the product of the means; a weight of zero excludes an indicator.
func (e *Engine) Score(sys *system.System) (*ScoreResult, error) {
	if sys == nil {
		return nil, fmt.Errorf("system is nil")
	}
	if len(e.indicators) == 0 {
		return nil, fmt.Errorf("no indicators configured")
	}

	result := &ScoreResult{
		SystemID: sys.ID,
		Seed:     sys.Seed,
		SystemStats: SystemStatsView{
			SeriesCount: sys.Stats.SeriesCount,
			SampleCount: sys.Stats.SampleCount,
			SynthesisMs: sys.Stats.SynthesisMs,
		},
		ScoredAt: time.Now().UTC(),
	}

	var totalWeight float64
	for _, ind := range e.indicators {
		ir, err := ind.Evaluate(sys)
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", ind.Key(), err)
		}
		result.Breakdown = append(result.Breakdown, ir)
		totalWeight += ir.Weight
	}
	if totalWeight <= 0 {
		return nil, fmt.Errorf("total indicator weight must be positive")
	}

	result.Score = CombineMeans(result.Breakdown, totalWeight)
	result.Band = BandFromScore(result.Score)

	return result, nil
}

// CombineMeans computes the weighted geometric mean of the indicator means:
// product of mean_i^(weight_i/totalWeight). Any zero mean yields zero.
func CombineMeans(breakdown []IndicatorResult, totalWeight float64) float64 {
	score := 1.0
	for _, ir := range breakdown {
		if ir.Weight == 0 {
			continue
		}
		if ir.Mean == 0 {
			return 0
		}
		score *= math.Pow(ir.Mean, ir.Weight/totalWeight)
	}

	// Clamp against floating-point drift; inputs are in (0, 1].
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}
