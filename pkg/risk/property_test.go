package risk

import (
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_ScoreBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(t, "metrics")
		p := Policy{}
		values := make(map[string]float64)
		for i := range n {
			name := string(rune('a' + i))
			p.Metrics = append(p.Metrics, Metric{Name: name, Cap: rapid.Float64Range(0.001, 1e6).Draw(t, "cap")})
			if rapid.Bool().Draw(t, "present") {
				values[name] = rapid.Float64Range(-1e6, 1e7).Draw(t, "raw")
			}
		}

		a, err := Classify(p, values)
		if err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
		if a.Score < 0 || a.Score > 1 {
			t.Fatalf("Score = %v, want within [0, 1]", a.Score)
		}
		if a.Category != CategoryFor(a.Score) {
			t.Fatalf("Category = %v, want %v", a.Category, CategoryFor(a.Score))
		}
		if len(a.Missing) != n-len(values) {
			t.Fatalf("len(Missing) = %d, want %d", len(a.Missing), n-len(values))
		}
	})
}

func TestProperty_CategoryMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(0, 1).Draw(t, "x")
		y := rapid.Float64Range(0, 1).Draw(t, "y")
		if x > y {
			x, y = y, x
		}
		if CategoryFor(x) > CategoryFor(y) {
			t.Fatalf("CategoryFor(%v) = %v above CategoryFor(%v) = %v", x, CategoryFor(x), y, CategoryFor(y))
		}
	})
}
