package risk

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/graph"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Category
	}{
		{0, Low},
		{0.2499, Low},
		{0.24999999, Low},
		{0.25, Medium},
		{0.4999, Medium},
		{0.5, High},
		{0.7499, High},
		{0.75, Critical},
		{1, Critical},
	}
	for _, tt := range tests {
		if got := CategoryFor(tt.score); got != tt.want {
			t.Errorf("CategoryFor(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw, limit, want float64
	}{
		{10, 20, 0.5},
		{20, 20, 1},
		{45, 30, 1},
		{-3, 30, 0},
		{0, 30, 0},
		{math.NaN(), 30, 0},
		{math.Inf(1), 30, 1},
	}
	for _, tt := range tests {
		if got := Normalize(tt.raw, tt.limit); got != tt.want {
			t.Errorf("Normalize(%v, %v) = %v, want %v", tt.raw, tt.limit, got, tt.want)
		}
	}
}

func TestClassify_Boundaries(t *testing.T) {
	p := Policy{Metrics: []Metric{{Name: "m", Cap: 1}}}
	tests := []struct {
		raw  float64
		want Category
	}{
		{0.25, Medium},
		{0.2499, Low},
		{0.75, Critical},
		{0.5, High},
	}
	for _, tt := range tests {
		a, err := Classify(p, map[string]float64{"m": tt.raw})
		if err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
		if a.Category != tt.want {
			t.Errorf("Classify(m=%v).Category = %v, want %v", tt.raw, a.Category, tt.want)
		}
	}
}

func TestClassify_MissingMetricBias(t *testing.T) {
	p := Policy{Metrics: []Metric{{Name: "a", Cap: 10}, {Name: "b", Cap: 4}}}

	full, err := Classify(p, map[string]float64{"a": 10, "b": 4})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if full.Score != 1 || full.Category != Critical || full.Partial() {
		t.Errorf("full = %+v, want score 1 critical with nothing missing", full)
	}

	partial, _ := Classify(p, map[string]float64{"a": 10})
	if partial.Score != 0.5 || partial.Category != High {
		t.Errorf("partial = %+v, want score 0.5 high", partial)
	}
	if !slices.Equal(partial.Missing, []string{"b"}) {
		t.Errorf("Missing = %v, want [b]", partial.Missing)
	}
	if partial.Normalized["b"] != 0 {
		t.Errorf("Normalized[b] = %v, want 0", partial.Normalized["b"])
	}
}

func TestClassify_Weighted(t *testing.T) {
	p := Policy{Metrics: []Metric{
		{Name: "churn", Cap: 10, Weight: 0.75},
		{Name: "size", Cap: 100, Weight: 0.25},
	}}
	a, err := Classify(p, map[string]float64{"churn": 10, "size": 0})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if math.Abs(a.Score-0.75) > 1e-12 || a.Category != Critical {
		t.Errorf("Classify() = %+v, want score 0.75 critical", a)
	}
}

func TestClassify_LegacyPolicy(t *testing.T) {
	a, err := Classify(LegacyHotspotPolicy(), map[string]float64{
		MetricChangeCount: 10,
		MetricComplexity:  15,
	})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if a.Score != 0.5 || a.Category != High {
		t.Errorf("Classify() = %+v, want score 0.5 high", a)
	}
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		wantErr bool
	}{
		{"legacy", LegacyHotspotPolicy(), false},
		{"weights sum to one", Policy{Metrics: []Metric{{Name: "a", Cap: 1, Weight: 0.3}, {Name: "b", Cap: 1, Weight: 0.7}}}, false},
		{"float drift", Policy{Metrics: []Metric{{Name: "a", Cap: 1, Weight: 0.1}, {Name: "b", Cap: 1, Weight: 0.2}, {Name: "c", Cap: 1, Weight: 0.7}}}, false},
		{"no metrics", Policy{}, true},
		{"zero cap", Policy{Metrics: []Metric{{Name: "a", Cap: 0}}}, true},
		{"negative cap", Policy{Metrics: []Metric{{Name: "a", Cap: -5}}}, true},
		{"nan cap", Policy{Metrics: []Metric{{Name: "a", Cap: math.NaN()}}}, true},
		{"infinite cap", Policy{Metrics: []Metric{{Name: "a", Cap: math.Inf(1)}}}, true},
		{"empty name", Policy{Metrics: []Metric{{Cap: 1}}}, true},
		{"duplicate", Policy{Metrics: []Metric{{Name: "a", Cap: 1}, {Name: "a", Cap: 2}}}, true},
		{"negative weight", Policy{Metrics: []Metric{{Name: "a", Cap: 1, Weight: -0.5}, {Name: "b", Cap: 1, Weight: 1.5}}}, true},
		{"weights too small", Policy{Metrics: []Metric{{Name: "a", Cap: 1, Weight: 0.3}, {Name: "b", Cap: 1, Weight: 0.3}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("Validate() code = %v, want INVALID_ARGUMENT", errors.GetCode(err))
			}
		})
	}
}

func TestClassify_InvalidPolicy(t *testing.T) {
	bad := Policy{Metrics: []Metric{{Name: "a", Cap: 0}}}
	if _, err := Classify(bad, nil); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Classify() error = %v, want INVALID_ARGUMENT", err)
	}
	if _, err := ClassifyAll(bad, nil); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("ClassifyAll() error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestClassifyGraph(t *testing.T) {
	g := graph.New()
	_ = g.AddNode("hot.go", graph.Attributes{MetricChangeCount: 40, MetricComplexity: 30})
	_ = g.AddNode("cold.go", graph.Attributes{MetricChangeCount: 1, MetricComplexity: 3})
	_ = g.AddNode("odd.go", graph.Attributes{MetricChangeCount: "many", MetricComplexity: 30})

	got, err := ClassifyGraph(g, LegacyHotspotPolicy())
	if err != nil {
		t.Fatalf("ClassifyGraph() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(ClassifyGraph()) = %d, want 3", len(got))
	}
	if got["hot.go"].Category != Critical {
		t.Errorf("hot.go = %v, want critical", got["hot.go"].Category)
	}
	if got["cold.go"].Category != Low {
		t.Errorf("cold.go = %v, want low", got["cold.go"].Category)
	}
	odd := got["odd.go"]
	if odd.Category != High || !slices.Equal(odd.Missing, []string{MetricChangeCount}) {
		t.Errorf("odd.go = %+v, want high with changeCount missing", odd)
	}
}

func TestSummarizeAndRank(t *testing.T) {
	p := LegacyHotspotPolicy()
	as, _ := ClassifyAll(p, map[string]map[string]float64{
		"a": {MetricChangeCount: 20, MetricComplexity: 30},
		"b": {MetricChangeCount: 20},
		"c": {},
		"d": {MetricChangeCount: 20, MetricComplexity: 30},
	})

	s := Summarize(as)
	want := Summary{Low: 1, High: 1, Critical: 2, Total: 4, Partial: 2}
	if s != want {
		t.Errorf("Summarize() = %+v, want %+v", s, want)
	}
	if s.Count(Critical) != 2 {
		t.Errorf("Count(Critical) = %d, want 2", s.Count(Critical))
	}

	var ids []string
	for _, r := range Rank(as) {
		ids = append(ids, r.ID)
	}
	if !slices.Equal(ids, []string{"a", "d", "b", "c"}) {
		t.Errorf("Rank() ids = %v, want [a d b c]", ids)
	}
}

func TestCategoryText(t *testing.T) {
	for _, c := range Categories() {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", c, err)
		}
		var back Category
		if err := back.UnmarshalText(text); err != nil || back != c {
			t.Errorf("UnmarshalText(%q) = (%v, %v), want %v", text, back, err, c)
		}
	}
	if _, err := ParseCategory("severe"); err == nil {
		t.Error("ParseCategory(severe) should fail")
	}
	if got, _ := ParseCategory("CRITICAL"); got != Critical {
		t.Errorf("ParseCategory(CRITICAL) = %v, want critical", got)
	}
}
