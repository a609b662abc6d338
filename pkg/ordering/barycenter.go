package ordering

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/matzehuels/codegraph/pkg/graph"
)

// barycenter runs alternating down and up sweeps and returns the levels with
// the fewest crossings seen, the input included.
func barycenter(g *graph.Graph, depths []int, levels map[int][]string, sweeps int) map[int][]string {
	if len(depths) < 2 {
		return levels
	}
	best := cloneLevels(levels)
	bestCrossings := countCrossings(g, depths, best)
	cur := cloneLevels(levels)

	for i := 0; i < sweeps && bestCrossings > 0; i++ {
		for j := 1; j < len(depths); j++ {
			reorder(g, cur[depths[j]], cur[depths[j-1]])
		}
		for j := len(depths) - 2; j >= 0; j-- {
			reorder(g, cur[depths[j]], cur[depths[j+1]])
		}
		if c := countCrossings(g, depths, cur); c < bestCrossings {
			best, bestCrossings = cloneLevels(cur), c
		}
	}
	return best
}

// reorder sorts level in place by the mean position of each node's
// neighbors in fixed. Nodes without such neighbors keep their own index.
func reorder(g *graph.Graph, level, fixed []string) {
	fixedPos := posMap(fixed)
	type keyed struct {
		id  string
		key float64
	}
	ks := make([]keyed, len(level))
	for i, id := range level {
		var xs []float64
		for _, n := range g.Neighbors(id, graph.Both) {
			if p, ok := fixedPos[n]; ok {
				xs = append(xs, float64(p))
			}
		}
		key := float64(i)
		if len(xs) > 0 {
			key = stat.Mean(xs, nil)
		}
		ks[i] = keyed{id, key}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int { return cmp.Compare(a.key, b.key) })
	for i, k := range ks {
		level[i] = k.id
	}
}

func cloneLevels(levels map[int][]string) map[int][]string {
	out := make(map[int][]string, len(levels))
	for d, ids := range levels {
		out[d] = slices.Clone(ids)
	}
	return out
}
