package risk

import (
	"math"

	"github.com/matzehuels/codegraph/pkg/errors"
)

// Metric names used by the hotspot view.
const (
	MetricChangeCount = "changeCount"
	MetricComplexity  = "complexity"
)

// Caps the hotspot view historically normalized against.
const (
	LegacyChangeCountCap = 20
	LegacyComplexityCap  = 30
)

// weightTolerance bounds how far explicit weights may sum from 1.
const weightTolerance = 1e-9

// Metric is one named input to the composite score.
type Metric struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Cap    float64 `json:"cap" yaml:"cap" toml:"cap"`
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight"`
}

// Policy is the set of metrics a classification combines. Leave every
// Weight at zero for equal weighting.
type Policy struct {
	Metrics []Metric `json:"metrics" yaml:"metrics" toml:"metrics"`
}

// LegacyHotspotPolicy returns the equal-weight changeCount/complexity policy
// with caps 20 and 30.
func LegacyHotspotPolicy() Policy {
	return Policy{Metrics: []Metric{
		{Name: MetricChangeCount, Cap: LegacyChangeCountCap},
		{Name: MetricComplexity, Cap: LegacyComplexityCap},
	}}
}

// Validate reports an INVALID_ARGUMENT error if the policy has no metrics,
// a metric has an empty or duplicate name, a cap is not a positive finite
// number, a weight is negative, or non-zero weights do not sum to 1.
func (p Policy) Validate() error {
	if len(p.Metrics) == 0 {
		return errors.InvalidArgument("risk policy needs at least one metric")
	}
	seen := make(map[string]bool, len(p.Metrics))
	var sum float64
	for _, m := range p.Metrics {
		if m.Name == "" {
			return errors.InvalidArgument("metric name must not be empty")
		}
		if seen[m.Name] {
			return errors.InvalidArgument("metric %q listed twice", m.Name)
		}
		seen[m.Name] = true
		if !(m.Cap > 0) || math.IsInf(m.Cap, 0) {
			return errors.InvalidArgument("metric %q: cap must be positive and finite, got %v", m.Name, m.Cap)
		}
		if !(m.Weight >= 0) || math.IsInf(m.Weight, 0) {
			return errors.InvalidArgument("metric %q: weight must be non-negative and finite, got %v", m.Name, m.Weight)
		}
		sum += m.Weight
	}
	if sum != 0 && math.Abs(sum-1) > weightTolerance {
		return errors.InvalidArgument("metric weights must sum to 1, got %v", sum)
	}
	return nil
}

// Names returns the metric names in policy order.
func (p Policy) Names() []string {
	names := make([]string, len(p.Metrics))
	for i, m := range p.Metrics {
		names[i] = m.Name
	}
	return names
}

func (p Policy) weights() []float64 {
	w := make([]float64, len(p.Metrics))
	var sum float64
	for i, m := range p.Metrics {
		w[i] = m.Weight
		sum += m.Weight
	}
	if sum == 0 {
		return nil
	}
	return w
}
