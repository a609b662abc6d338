package layering

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/matzehuels/codegraph/pkg/graph"
)

// genGraph draws a graph with n nodes named n0..n{n-1} and arbitrary edges,
// cycles and self-loops included. When acyclic is set, edges only run from
// lower to higher indices.
func genGraph(t *rapid.T, acyclic bool) (*graph.Graph, []string) {
	n := rapid.IntRange(1, 15).Draw(t, "n")
	ids := make([]string, n)
	g := graph.New()
	for i := range ids {
		ids[i] = fmt.Sprintf("n%d", i)
		_ = g.AddNode(ids[i], nil)
	}
	m := rapid.IntRange(0, 3*n).Draw(t, "m")
	for range m {
		s := rapid.IntRange(0, n-1).Draw(t, "src")
		d := rapid.IntRange(0, n-1).Draw(t, "dst")
		if acyclic {
			if s == d {
				continue
			}
			s, d = min(s, d), max(s, d)
		}
		g.AddEdge(ids[s], ids[d])
	}
	return g, ids
}

func genRoots(t *rapid.T, ids []string) []string {
	return rapid.SliceOfNDistinct(rapid.SampledFrom(ids), 1, 3, rapid.ID[string]).Draw(t, "roots")
}

// hopDistances relaxes every edge |V| times; it is independent of the BFS
// under test.
func hopDistances(g *graph.Graph, roots []string, dir graph.Direction) map[string]int {
	dist := make(map[string]int)
	for _, r := range roots {
		dist[r] = 0
	}
	for range g.NodeCount() {
		for _, e := range g.Edges() {
			from, to := e.Source, e.Target
			if dir == graph.In {
				from, to = to, from
			}
			d, ok := dist[from]
			if !ok {
				continue
			}
			if cur, seen := dist[to]; !seen || d+1 < cur {
				dist[to] = d + 1
			}
		}
	}
	return dist
}

func TestProperty_TerminatesWithOneDepthPerNode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, ids := genGraph(t, false)
		roots := genRoots(t, ids)
		dir := rapid.SampledFrom([]Direction{Forward, Backward, Both}).Draw(t, "dir")

		res, err := Assign(g, roots, dir)
		if err != nil {
			t.Fatalf("Assign() error = %v", err)
		}
		disc := res.Discovery()
		if len(disc) != res.Len() {
			t.Fatalf("len(Discovery()) = %d, Len() = %d", len(disc), res.Len())
		}
		seen := make(map[string]bool)
		for _, id := range disc {
			if seen[id] {
				t.Fatalf("node %s discovered twice", id)
			}
			seen[id] = true
		}
		for id, d := range res.Depths() {
			switch {
			case dir == Forward && d < 0, dir == Backward && d > 0:
				t.Fatalf("node %s has depth %d in %v mode", id, d, dir)
			}
		}
	})
}

func TestProperty_SingleDirectionDepthIsHopDistance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, ids := genGraph(t, true)
		roots := genRoots(t, ids)

		fwd, _ := Assign(g, roots, Forward)
		if want := hopDistances(g, roots, graph.Out); !maps.Equal(fwd.Depths(), want) {
			t.Fatalf("forward Depths() = %v, want %v", fwd.Depths(), want)
		}

		bwd, _ := Assign(g, roots, Backward)
		want := hopDistances(g, roots, graph.In)
		for id, d := range want {
			want[id] = -d
		}
		if !maps.Equal(bwd.Depths(), want) {
			t.Fatalf("backward Depths() = %v, want %v", bwd.Depths(), want)
		}
	})
}

func TestProperty_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, ids := genGraph(t, false)
		roots := genRoots(t, ids)
		dir := rapid.SampledFrom([]Direction{Forward, Backward, Both}).Draw(t, "dir")

		a, _ := Assign(g, roots, dir)
		b, _ := Assign(g, roots, dir)
		if !maps.Equal(a.Depths(), b.Depths()) || !slices.Equal(a.Discovery(), b.Discovery()) {
			t.Fatalf("repeated Assign() differs: %v/%v vs %v/%v",
				a.Depths(), a.Discovery(), b.Depths(), b.Discovery())
		}
	})
}

func TestProperty_BothIsClosestOfEitherDirection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, ids := genGraph(t, false)
		roots := genRoots(t, ids)

		both, _ := Assign(g, roots, Both)
		fwd, _ := Assign(g, roots, Forward)
		bwd, _ := Assign(g, roots, Backward)

		want := make(map[string]int)
		for id, d := range bwd.Depths() {
			want[id] = d
		}
		for id, d := range fwd.Depths() {
			if b, ok := want[id]; !ok || d <= -b {
				want[id] = d
			}
		}
		if got := both.Depths(); !maps.Equal(got, want) {
			t.Fatalf("Both depths = %v, want %v (forward %v, backward %v)",
				got, want, fwd.Depths(), bwd.Depths())
		}
	})
}
