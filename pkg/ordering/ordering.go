package ordering

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/codegraph/pkg/graph"
	"github.com/matzehuels/codegraph/pkg/layering"
)

// LayeredNode is the ordinal position of one node.
type LayeredNode struct {
	ID    string `json:"id" yaml:"id"`
	Depth int    `json:"depth" yaml:"depth"`
	Order int    `json:"order" yaml:"order"`
}

// Comparator orders two node IDs within a level. It follows the
// slices.SortFunc convention: negative if a sorts first, zero if equal.
type Comparator func(a, b string) int

// Option customizes a call to [Pack].
type Option func(*options)

type options struct {
	cmp    Comparator
	g      *graph.Graph
	sweeps int
}

// WithComparator sorts each level with cmp. Ties keep discovery order.
func WithComparator(cmp Comparator) Option { return func(o *options) { o.cmp = cmp } }

// WithBarycenter refines each level with up to sweeps rounds of barycenter
// sweeps over the edges of g. Zero or a nil graph disables refinement.
func WithBarycenter(g *graph.Graph, sweeps int) Option {
	return func(o *options) {
		o.g = g
		o.sweeps = sweeps
	}
}

// ByID orders nodes lexicographically by ID.
func ByID() Comparator { return strings.Compare }

// ByAttribute orders nodes by the attribute key of g: numeric values first,
// largest first, then string values in ascending order, then nodes that
// lack the attribute. Nodes with equal values compare equal.
func ByAttribute(g *graph.Graph, key string) Comparator {
	rank := func(id string) (class int, num float64, str string) {
		n, ok := g.Node(id)
		if !ok {
			return 2, 0, ""
		}
		if v, ok := n.Attrs.Number(key); ok {
			return 0, v, ""
		}
		if s, ok := n.Attrs.String(key); ok {
			return 1, 0, s
		}
		return 2, 0, ""
	}
	return func(a, b string) int {
		ca, na, sa := rank(a)
		cb, nb, sb := rank(b)
		switch {
		case ca != cb:
			return ca - cb
		case ca == 0 && na > nb:
			return -1
		case ca == 0 && na < nb:
			return 1
		case ca == 1:
			return strings.Compare(sa, sb)
		}
		return 0
	}
}

// Layout is the packed, immutable result of [Pack].
type Layout struct {
	levels map[int][]string
	depths []int
	pos    map[string]LayeredNode
}

// Pack groups the nodes of res by depth and assigns each an order within its
// level. See the package documentation for how the order is chosen.
func Pack(res *layering.Result, opts ...Option) *Layout {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	levels := make(map[int][]string)
	for _, id := range res.Discovery() {
		d, _ := res.Depth(id)
		levels[d] = append(levels[d], id)
	}
	if o.cmp != nil {
		for _, level := range levels {
			slices.SortStableFunc(level, o.cmp)
		}
	}
	depths := slices.Sorted(maps.Keys(levels))
	if o.g != nil && o.sweeps > 0 {
		levels = barycenter(o.g, depths, levels, o.sweeps)
	}
	return newLayout(depths, levels)
}

func newLayout(depths []int, levels map[int][]string) *Layout {
	l := &Layout{
		levels: levels,
		depths: depths,
		pos:    make(map[string]LayeredNode),
	}
	for d, ids := range levels {
		for i, id := range ids {
			l.pos[id] = LayeredNode{ID: id, Depth: d, Order: i}
		}
	}
	return l
}

// Nodes returns every positioned node sorted by depth, then order.
func (l *Layout) Nodes() []LayeredNode {
	out := make([]LayeredNode, 0, len(l.pos))
	for _, d := range l.depths {
		for _, id := range l.levels[d] {
			out = append(out, l.pos[id])
		}
	}
	return out
}

// Level returns the node IDs at depth d in order, or nil if d is empty.
func (l *Layout) Level(d int) []string { return slices.Clone(l.levels[d]) }

// Levels returns a copy of depth → ordered node IDs.
func (l *Layout) Levels() map[int][]string {
	out := make(map[int][]string, len(l.levels))
	for d, ids := range l.levels {
		out[d] = slices.Clone(ids)
	}
	return out
}

// CountAt returns the number of nodes at depth d.
func (l *Layout) CountAt(d int) int { return len(l.levels[d]) }

// Counts returns depth → node count.
func (l *Layout) Counts() map[int]int {
	out := make(map[int]int, len(l.levels))
	for d, ids := range l.levels {
		out[d] = len(ids)
	}
	return out
}

// Depths returns the occupied depths in ascending order.
func (l *Layout) Depths() []int { return slices.Clone(l.depths) }

// Position returns the placement of id.
func (l *Layout) Position(id string) (LayeredNode, bool) {
	n, ok := l.pos[id]
	return n, ok
}

// Len returns the number of positioned nodes.
func (l *Layout) Len() int { return len(l.pos) }
