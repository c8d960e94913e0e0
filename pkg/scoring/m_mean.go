package scoring

import (
	"fmt"

	"github.com/iels/iels/pkg/system"
)

// MeanIndicator reduces one indicator series to the arithmetic mean of its
// normalized samples. Normalization guarantees the mean lies in (0, 1].
type MeanIndicator struct {
	Kind   system.IndicatorKind
	Weight float64 // geometric-mean exponent share
}

func (m *MeanIndicator) Key() string  { return string(m.Kind) }
func (m *MeanIndicator) Name() string { return m.Kind.Label() }

func (m *MeanIndicator) Evaluate(sys *system.System) (IndicatorResult, error) {
	series, ok := sys.Series[m.Kind]
	if !ok {
		return IndicatorResult{}, fmt.Errorf("system %s has no %s series", sys.ID, m.Kind)
	}

	values, err := system.Normalize(series.Values)
	if err != nil {
		return IndicatorResult{}, err
	}
	norm := system.Series{Kind: m.Kind, Values: values}

	return IndicatorResult{
		Key:     m.Key(),
		Name:    m.Name(),
		Mean:    norm.Mean(),
		Weight:  m.Weight,
		Samples: len(values),
	}, nil
}
