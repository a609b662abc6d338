// Package hotspot ranks files by change frequency and complexity.
package hotspot

import (
	"github.com/matzehuels/codegraph/pkg/risk"
)

// File carries the raw metrics of one file.
type File struct {
	Path        string  `json:"path" yaml:"path"`
	ChangeCount float64 `json:"changeCount" yaml:"changeCount"`
	Complexity  float64 `json:"complexity" yaml:"complexity"`
}

// Hotspot is a scored file.
type Hotspot struct {
	Path string `json:"path" yaml:"path"`
	risk.Assessment `yaml:",inline"`
}

// Rank scores files against policy and returns them by descending score,
// then path. An empty policy uses [risk.LegacyHotspotPolicy].
func Rank(files []File, policy risk.Policy) ([]Hotspot, error) {
	if len(policy.Metrics) == 0 {
		policy = risk.LegacyHotspotPolicy()
	}
	metrics := make(map[string]map[string]float64, len(files))
	for _, f := range files {
		metrics[f.Path] = map[string]float64{
			risk.MetricChangeCount: f.ChangeCount,
			risk.MetricComplexity:  f.Complexity,
		}
	}
	as, err := risk.ClassifyAll(policy, metrics)
	if err != nil {
		return nil, err
	}
	ranked := risk.Rank(as)
	out := make([]Hotspot, len(ranked))
	for i, r := range ranked {
		out[i] = Hotspot{Path: r.ID, Assessment: r.Assessment}
	}
	return out, nil
}
