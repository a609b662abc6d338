package ordering

import (
	"slices"

	"github.com/matzehuels/codegraph/pkg/graph"
)

// Crossings returns the number of edge crossings between adjacent occupied
// depths of l. Edges are counted regardless of direction; edges within a
// level or spanning more than one level are ignored.
//
// Two edges (u1,v1) and (u2,v2) cross when pos(u1) < pos(u2) and
// pos(v1) > pos(v2). Each pair of levels costs O(E log V).
func Crossings(g *graph.Graph, l *Layout) int {
	return countCrossings(g, l.depths, l.levels)
}

func countCrossings(g *graph.Graph, depths []int, levels map[int][]string) int {
	total := 0
	for i := 0; i+1 < len(depths); i++ {
		if depths[i+1] != depths[i]+1 {
			continue
		}
		total += layerCrossings(g, levels[depths[i]], levels[depths[i+1]])
	}
	return total
}

// layerCrossings counts inversions of lower positions, with edges sorted by
// upper position, using a Fenwick tree.
func layerCrossings(g *graph.Graph, upper, lower []string) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}
	lowerPos := posMap(lower)

	type edge struct{ upper, lower int }
	var edges []edge
	for i, id := range upper {
		for _, n := range g.Neighbors(id, graph.Both) {
			if p, ok := lowerPos[n]; ok {
				edges = append(edges, edge{i, p})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}
	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, len(lower)+1)
	crossings, seen := 0, 0
	for _, e := range edges {
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += seen - lessOrEqual

		seen++
		for q := e.lower + 1; q < len(fenwick); q += q & (-q) {
			fenwick[q]++
		}
	}
	return crossings
}

func posMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}
