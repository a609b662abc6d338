package ordering

import (
	"fmt"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/matzehuels/codegraph/pkg/graph"
	"github.com/matzehuels/codegraph/pkg/layering"
)

func genLayout(t *rapid.T) (*graph.Graph, *layering.Result) {
	n := rapid.IntRange(1, 20).Draw(t, "n")
	ids := make([]string, n)
	g := graph.New()
	for i := range ids {
		ids[i] = fmt.Sprintf("n%02d", i)
		_ = g.AddNode(ids[i], graph.Attributes{"score": rapid.IntRange(0, 5).Draw(t, "score")})
	}
	for range rapid.IntRange(0, 3*n).Draw(t, "m") {
		g.AddEdge(rapid.SampledFrom(ids).Draw(t, "src"), rapid.SampledFrom(ids).Draw(t, "dst"))
	}
	roots := rapid.SliceOfNDistinct(rapid.SampledFrom(ids), 1, 3, rapid.ID[string]).Draw(t, "roots")
	dir := rapid.SampledFrom([]layering.Direction{layering.Forward, layering.Backward, layering.Both}).Draw(t, "dir")
	res, err := layering.Assign(g, roots, dir)
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	return g, res
}

func genOptions(t *rapid.T, g *graph.Graph) []Option {
	var opts []Option
	switch rapid.IntRange(0, 2).Draw(t, "cmp") {
	case 1:
		opts = append(opts, WithComparator(ByID()))
	case 2:
		opts = append(opts, WithComparator(ByAttribute(g, "score")))
	}
	if sweeps := rapid.IntRange(0, 4).Draw(t, "sweeps"); sweeps > 0 {
		opts = append(opts, WithBarycenter(g, sweeps))
	}
	return opts
}

func TestProperty_LevelCompleteness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, res := genLayout(t)
		l := Pack(res, genOptions(t, g)...)

		if l.Len() != res.Len() {
			t.Fatalf("Len() = %d, want %d", l.Len(), res.Len())
		}
		orders := make(map[int][]int)
		for _, n := range l.Nodes() {
			if d, _ := res.Depth(n.ID); d != n.Depth {
				t.Fatalf("node %s packed at depth %d, layered at %d", n.ID, n.Depth, d)
			}
			orders[n.Depth] = append(orders[n.Depth], n.Order)
		}
		for d, got := range orders {
			slices.Sort(got)
			for i, o := range got {
				if o != i {
					t.Fatalf("depth %d orders = %v, want 0..%d", d, got, len(got)-1)
				}
			}
			if l.CountAt(d) != len(got) {
				t.Fatalf("CountAt(%d) = %d, want %d", d, l.CountAt(d), len(got))
			}
		}
	})
}

func TestProperty_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, res := genLayout(t)
		opts := genOptions(t, g)

		a, b := Pack(res, opts...), Pack(res, opts...)
		if !slices.Equal(a.Nodes(), b.Nodes()) {
			t.Fatalf("repeated Pack() differs: %v vs %v", a.Nodes(), b.Nodes())
		}
	})
}

func TestProperty_BarycenterNeverAddsCrossings(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, res := genLayout(t)
		sweeps := rapid.IntRange(1, 4).Draw(t, "sweeps")

		plain := Crossings(g, Pack(res))
		refined := Crossings(g, Pack(res, WithBarycenter(g, sweeps)))
		if refined > plain {
			t.Fatalf("barycenter raised crossings from %d to %d", plain, refined)
		}
	})
}
