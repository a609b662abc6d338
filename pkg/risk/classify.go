package risk

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/matzehuels/codegraph/pkg/graph"
)

// Assessment is the classification of one node.
type Assessment struct {
	Score      float64            `json:"score" yaml:"score"`
	Category   Category           `json:"category" yaml:"category"`
	Normalized map[string]float64 `json:"normalized" yaml:"normalized"`
	Missing    []string           `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Partial reports whether any metric was substituted with 0.
func (a Assessment) Partial() bool { return len(a.Missing) > 0 }

// Normalize maps raw onto [0, 1] relative to limit. Negative values clamp
// to 0 and values at or above limit clamp to 1. NaN normalizes to 0.
func Normalize(raw, limit float64) float64 {
	if math.IsNaN(raw) || raw <= 0 {
		return 0
	}
	return math.Min(raw/limit, 1)
}

// Classify scores one set of raw metric values against p.
func Classify(p Policy, values map[string]float64) (Assessment, error) {
	if err := p.Validate(); err != nil {
		return Assessment{}, err
	}
	return classify(p, p.weights(), values), nil
}

func classify(p Policy, weights []float64, values map[string]float64) Assessment {
	a := Assessment{Normalized: make(map[string]float64, len(p.Metrics))}
	xs := make([]float64, len(p.Metrics))
	for i, m := range p.Metrics {
		raw, ok := values[m.Name]
		if !ok || math.IsNaN(raw) {
			a.Missing = append(a.Missing, m.Name)
		}
		xs[i] = Normalize(raw, m.Cap)
		a.Normalized[m.Name] = xs[i]
	}
	a.Score = stat.Mean(xs, weights)
	a.Category = CategoryFor(a.Score)
	return a
}

// ClassifyAll scores every entry of metrics, keyed by node ID.
func ClassifyAll(p Policy, metrics map[string]map[string]float64) (map[string]Assessment, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	w := p.weights()
	out := make(map[string]Assessment, len(metrics))
	for id, values := range metrics {
		out[id] = classify(p, w, values)
	}
	return out, nil
}

// ClassifyGraph scores every node of g using its numeric attributes named
// after the policy metrics.
func ClassifyGraph(g *graph.Graph, p Policy) (map[string]Assessment, error) {
	return ClassifyAll(p, Metrics(g, p.Names()...))
}

// Metrics extracts the numeric attributes named in keys from every node of
// g. Non-numeric attributes are left out.
func Metrics(g *graph.Graph, keys ...string) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, g.NodeCount())
	for _, n := range g.Nodes() {
		values := make(map[string]float64, len(keys))
		for _, k := range keys {
			if v, ok := n.Attrs.Number(k); ok {
				values[k] = v
			}
		}
		out[n.ID] = values
	}
	return out
}
