// Package critical extracts the reachability closure around flagged nodes.
//
// Edges follow the blocker → blocked convention: an edge Y→X means Y must be
// resolved before X. For every flagged node, [Extract] walks incoming edges
// to collect its transitive blockers and outgoing edges to collect the
// nodes it transitively gates. The union of these walks, nodes and the
// edges traversed, is the result.
//
// This is a reachability computation, not a scheduling critical path: there
// are no durations and no notion of the longest chain.
package critical

import (
	"maps"
	"slices"

	"github.com/matzehuels/codegraph/pkg/graph"
)

// Predicate marks a node as flagged.
type Predicate func(graph.Node) bool

// AttrEquals flags nodes whose string attribute key equals value.
func AttrEquals(key, value string) Predicate {
	return func(n graph.Node) bool {
		s, ok := n.Attrs.String(key)
		return ok && s == value
	}
}

// Option customizes a call to [Extract].
type Option func(*options)

type options struct {
	kinds []string
}

// WithEdgeKinds restricts the walks to edges of the listed kinds.
func WithEdgeKinds(kinds ...string) Option {
	return func(o *options) { o.kinds = append(o.kinds, kinds...) }
}

// Result is the closure around the flagged nodes.
type Result struct {
	flagged  map[string]bool
	nodes    map[string]bool
	edges    map[graph.EdgeKey]bool
	blockers map[string]bool
	gated    map[string]bool
}

// Extract flags every node of g matching flagged and returns the closure.
func Extract(g *graph.Graph, flagged Predicate, opts ...Option) *Result {
	var ids []string
	for _, n := range g.Nodes() {
		if flagged(n) {
			ids = append(ids, n.ID)
		}
	}
	return ExtractIDs(g, ids, opts...)
}

// ExtractIDs flags the listed nodes. IDs that are not nodes of g are
// ignored.
func ExtractIDs(g *graph.Graph, ids []string, opts ...Option) *Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	r := &Result{
		flagged:  make(map[string]bool),
		nodes:    make(map[string]bool),
		edges:    make(map[graph.EdgeKey]bool),
		blockers: make(map[string]bool),
		gated:    make(map[string]bool),
	}
	for _, id := range ids {
		if !g.HasNode(id) || r.flagged[id] {
			continue
		}
		r.flagged[id] = true
		r.nodes[id] = true
		r.walk(g, id, graph.In, &o, r.blockers)
		r.walk(g, id, graph.Out, &o, r.gated)
	}
	return r
}

// walk collects everything reachable from start along dir into found. Each
// walk keeps its own visited set.
func (r *Result) walk(g *graph.Graph, start string, dir graph.Direction, o *options, found map[string]bool) {
	visited := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.IncidentEdges(id, dir) {
			if len(o.kinds) > 0 && !slices.Contains(o.kinds, e.Kind) {
				continue
			}
			r.edges[e.Key()] = true
			next := e.Target
			if dir == graph.In {
				next = e.Source
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			r.nodes[next] = true
			found[next] = true
			stack = append(stack, next)
		}
	}
}

// Nodes returns every node in the closure, sorted.
func (r *Result) Nodes() []string { return sortedKeys(r.nodes) }

// Edges returns every traversed edge, sorted by source then target.
// Parallel edges appear once.
func (r *Result) Edges() []graph.EdgeKey {
	return slices.SortedFunc(maps.Keys(r.edges), graph.CompareEdgeKeys)
}

// Flagged returns the flagged nodes that were present in the graph, sorted.
func (r *Result) Flagged() []string { return sortedKeys(r.flagged) }

// Blockers returns the nodes reached by walking incoming edges, sorted.
func (r *Result) Blockers() []string { return sortedKeys(r.blockers) }

// Gated returns the nodes reached by walking outgoing edges, sorted.
func (r *Result) Gated() []string { return sortedKeys(r.gated) }

// HasNode reports whether id is in the closure.
func (r *Result) HasNode(id string) bool { return r.nodes[id] }

// HasEdge reports whether an edge source→target was traversed.
func (r *Result) HasEdge(source, target string) bool {
	return r.edges[graph.EdgeKey{Source: source, Target: target}]
}

// IsFlagged reports whether id was flagged.
func (r *Result) IsFlagged(id string) bool { return r.flagged[id] }

// Empty reports whether nothing was flagged.
func (r *Result) Empty() bool { return len(r.nodes) == 0 }

func sortedKeys(m map[string]bool) []string { return slices.Sorted(maps.Keys(m)) }
