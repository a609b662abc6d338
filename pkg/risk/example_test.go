package risk_test

import (
	"fmt"

	"github.com/matzehuels/codegraph/pkg/risk"
)

func ExampleClassify() {
	p := risk.LegacyHotspotPolicy()

	a, _ := risk.Classify(p, map[string]float64{"changeCount": 20, "complexity": 30})
	fmt.Printf("%.2f %s\n", a.Score, a.Category)

	b, _ := risk.Classify(p, map[string]float64{"changeCount": 20})
	fmt.Printf("%.2f %s missing=%v\n", b.Score, b.Category, b.Missing)
	// Output:
	// 1.00 critical
	// 0.50 high missing=[complexity]
}
