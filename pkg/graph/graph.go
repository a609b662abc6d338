package graph

import (
	"fmt"
	"slices"

	"github.com/matzehuels/codegraph/pkg/errors"
)

// Direction selects which incident edges a neighbor query follows.
type Direction int

const (
	// Out follows outgoing edges (source → target).
	Out Direction = iota
	// In follows incoming edges (target ← source).
	In
	// Both follows outgoing and incoming edges.
	Both
)

// String returns "out", "in" or "both".
func (d Direction) String() string {
	switch d {
	case Out:
		return "out"
	case In:
		return "in"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DefaultWeight is the weight of an edge added without [WithWeight].
const DefaultWeight = 1.0

// Node is a vertex in the graph. Attrs is never nil for nodes returned by
// a Graph and must be treated as read-only.
type Node struct {
	ID    string
	Attrs Attributes
}

// Edge is a directed relationship. Kind is an opaque label such as "calls",
// "imports" or "blocks".
type Edge struct {
	Source string
	Target string
	Weight float64
	Kind   string
}

// Key returns the (source, target) pair identifying the edge's endpoints.
func (e Edge) Key() EdgeKey { return EdgeKey{Source: e.Source, Target: e.Target} }

// EdgeKey identifies an ordered node pair. Parallel edges share a key.
type EdgeKey struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// String formats the key as "source->target".
func (k EdgeKey) String() string { return k.Source + "->" + k.Target }

// CompareEdgeKeys orders keys by source, then target.
func CompareEdgeKeys(a, b EdgeKey) int {
	if a.Source != b.Source {
		if a.Source < b.Source {
			return -1
		}
		return 1
	}
	switch {
	case a.Target < b.Target:
		return -1
	case a.Target > b.Target:
		return 1
	}
	return 0
}

// EdgeOption customizes an edge passed to [Graph.AddEdge].
type EdgeOption func(*Edge)

// WithWeight sets the edge weight (default [DefaultWeight]).
func WithWeight(w float64) EdgeOption { return func(e *Edge) { e.Weight = w } }

// WithKind sets the edge kind label.
func WithKind(kind string) EdgeOption { return func(e *Edge) { e.Kind = kind } }

// Graph is a directed multigraph with insertion-ordered nodes and edges.
//
// The zero value is not usable - use New.
type Graph struct {
	nodes    map[string]*Node
	order    []string
	edges    []Edge
	outgoing map[string][]int // nodeID -> indices into edges
	incoming map[string][]int // nodeID -> indices into edges
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]int),
		incoming: make(map[string][]int),
	}
}

// AddNode adds a node or, if id already exists, replaces its attributes.
// Edges and the node's insertion position are preserved on replacement.
// The attribute map is copied. Returns an INVALID_ARGUMENT error if id is
// empty.
func (g *Graph) AddNode(id string, attrs Attributes) error {
	if id == "" {
		return errors.InvalidArgument("node id must not be empty")
	}
	if n, ok := g.nodes[id]; ok {
		n.Attrs = attrs.Clone()
		return nil
	}
	g.nodes[id] = &Node{ID: id, Attrs: attrs.Clone()}
	g.order = append(g.order, id)
	return nil
}

// AddEdge appends a directed edge. Endpoints are not validated: edges that
// reference unknown nodes are stored but ignored by traversals, so partial
// input never fails. Parallel edges are kept.
func (g *Graph) AddEdge(source, target string, opts ...EdgeOption) {
	e := Edge{Source: source, Target: target, Weight: DefaultWeight}
	for _, opt := range opts {
		opt(&e)
	}
	g.addEdge(e)
}

func (g *Graph) addEdge(e Edge) {
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.outgoing[e.Source] = append(g.outgoing[e.Source], idx)
	g.incoming[e.Target] = append(g.incoming[e.Target], idx)
}

// Neighbors returns the IDs adjacent to id in the given direction.
//
// The result follows the insertion order of the incident edges. Edges whose
// far endpoint is not a node of the graph are skipped, and parallel edges
// produce repeated IDs. Unknown ids yield an empty slice.
func (g *Graph) Neighbors(id string, dir Direction) []string {
	edges := g.IncidentEdges(id, dir)
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		if e.Source == id && (dir == Out || dir == Both) {
			out = append(out, e.Target)
			continue
		}
		out = append(out, e.Source)
	}
	return out
}

// IncidentEdges returns the edges touching id in the given direction, in
// insertion order, skipping edges with a missing endpoint. A self-loop is
// reported once for [Both].
func (g *Graph) IncidentEdges(id string, dir Direction) []Edge {
	if _, ok := g.nodes[id]; !ok {
		return []Edge{}
	}
	var idx []int
	switch dir {
	case Out:
		idx = g.outgoing[id]
	case In:
		idx = g.incoming[id]
	case Both:
		idx = mergeIndices(g.outgoing[id], g.incoming[id])
	}

	out := make([]Edge, 0, len(idx))
	for _, i := range idx {
		e := g.edges[i]
		if !g.HasNode(e.Source) || !g.HasNode(e.Target) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// mergeIndices merges two ascending index lists, dropping duplicates.
func mergeIndices(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]):
			out = append(out, a[i])
			i++
		case i == len(a) || b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// Node returns the node with the given ID and true, or a zero Node and false.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}
	return out
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order, including edges
// that reference missing nodes.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of stored edges, dangling ones included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutDegree returns the number of traversable outgoing edges of id.
func (g *Graph) OutDegree(id string) int { return len(g.IncidentEdges(id, Out)) }

// InDegree returns the number of traversable incoming edges of id.
func (g *Graph) InDegree(id string) int { return len(g.IncidentEdges(id, In)) }

// Clone returns a deep copy that shares no state with g.
func (g *Graph) Clone() *Graph {
	c := New()
	for _, id := range g.order {
		_ = c.AddNode(id, g.nodes[id].Attrs)
	}
	for _, e := range g.edges {
		c.addEdge(e)
	}
	return c
}

// FilterEdges returns a copy of g keeping every node but only the edges
// whose Kind is one of kinds. With no kinds it is equivalent to Clone.
func (g *Graph) FilterEdges(kinds ...string) *Graph {
	if len(kinds) == 0 {
		return g.Clone()
	}
	c := New()
	for _, id := range g.order {
		_ = c.AddNode(id, g.nodes[id].Attrs)
	}
	for _, e := range g.edges {
		if slices.Contains(kinds, e.Kind) {
			c.addEdge(e)
		}
	}
	return c
}
