// Package cycles reports the cyclic structure that the layering engine
// tolerates silently.
//
// Layering never fails on a cycle: each node keeps the depth at which it was
// first discovered. This package is for callers that want to show the user
// where those cycles are. [Components] lists strongly connected clusters
// and [BackEdges] names the edges a depth-first walk closes a cycle with.
package cycles

import (
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/matzehuels/codegraph/pkg/graph"
)

// Components returns the strongly connected components of g that contain a
// cycle: those with more than one node, plus single nodes with a self-loop.
// Members are sorted and components are ordered by their first member.
// Dangling edges are ignored.
func Components(g *graph.Graph) [][]string {
	dg, ids := toGonum(g)

	var out [][]string
	for _, scc := range topo.TarjanSCC(dg) {
		if len(scc) == 1 && !selfLoop(g, ids[scc[0].ID()]) {
			continue
		}
		members := make([]string, len(scc))
		for i, n := range scc {
			members[i] = ids[n.ID()]
		}
		slices.Sort(members)
		out = append(out, members)
	}
	slices.SortFunc(out, func(a, b []string) int { return slices.Compare(a, b) })
	return out
}

// HasCycle reports whether g contains any cycle, self-loops included.
func HasCycle(g *graph.Graph) bool {
	return len(Components(g)) > 0
}

// toGonum copies the node and edge structure of g into a gonum directed
// graph. Self-loops are left out since simple graphs reject them; parallel
// edges collapse into one.
func toGonum(g *graph.Graph) (*simple.DirectedGraph, map[int64]string) {
	dg := simple.NewDirectedGraph()
	idx := make(map[string]int64, g.NodeCount())
	ids := make(map[int64]string, g.NodeCount())
	for _, id := range g.NodeIDs() {
		n := dg.NewNode()
		dg.AddNode(n)
		idx[id] = n.ID()
		ids[n.ID()] = id
	}
	for _, e := range g.Edges() {
		u, okU := idx[e.Source]
		v, okV := idx[e.Target]
		if !okU || !okV || u == v {
			continue
		}
		dg.SetEdge(dg.NewEdge(dg.Node(u), dg.Node(v)))
	}
	return dg, ids
}

func selfLoop(g *graph.Graph, id string) bool {
	return slices.Contains(g.Neighbors(id, graph.Out), id)
}

// BackEdges returns the edges that close a cycle during a depth-first walk
// of g, in discovery order. The walk starts from roots (unknown IDs are
// skipped), then from nodes without incoming edges, then from any node not
// yet visited, so every cycle contributes at least one edge. Parallel back
// edges are reported once.
func BackEdges(g *graph.Graph, roots ...string) []graph.EdgeKey {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	seen := make(map[graph.EdgeKey]bool)
	var back []graph.EdgeKey

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, next := range g.Neighbors(id, graph.Out) {
			switch color[next] {
			case white:
				dfs(next)
			case gray:
				k := graph.EdgeKey{Source: id, Target: next}
				if !seen[k] {
					seen[k] = true
					back = append(back, k)
				}
			}
		}
		color[id] = black
	}

	visit := func(id string) {
		if g.HasNode(id) && color[id] == white {
			dfs(id)
		}
	}
	for _, id := range roots {
		visit(id)
	}
	for _, id := range g.NodeIDs() {
		if g.InDegree(id) == 0 {
			visit(id)
		}
	}
	for _, id := range g.NodeIDs() {
		visit(id)
	}
	return back
}
