package layering

import (
	"maps"
	"slices"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/graph"
)

// Option customizes a call to [Assign].
type Option func(*options)

type options struct {
	maxDepth int
	kinds    []string
}

// WithMaxDepth stops the traversal once |depth| reaches n. Zero means
// unlimited; negative values are rejected by Assign.
func WithMaxDepth(n int) Option { return func(o *options) { o.maxDepth = n } }

// WithEdgeKinds restricts the traversal to edges whose Kind is listed.
func WithEdgeKinds(kinds ...string) Option {
	return func(o *options) { o.kinds = append(o.kinds, kinds...) }
}

func (o *options) follows(e graph.Edge) bool {
	return len(o.kinds) == 0 || slices.Contains(o.kinds, e.Kind)
}

// Result holds the depth of every node reached from the roots. It is
// immutable once returned by Assign.
type Result struct {
	direction Direction
	roots     []string
	depths    map[string]int
	discovery []string
}

// Assign computes a signed depth for every node reachable from roots.
//
// Roots absent from g are ignored and duplicates collapse, so a root set
// with no known node yields an empty Result rather than an error. An empty
// roots slice, an unknown direction or a negative WithMaxDepth returns an
// INVALID_ARGUMENT error.
//
// Time complexity is O(V + E).
func Assign(g *graph.Graph, roots []string, dir Direction, opts ...Option) (*Result, error) {
	if len(roots) == 0 {
		return nil, errors.InvalidArgument("root set must not be empty")
	}
	if !dir.Valid() {
		return nil, errors.InvalidArgument("unknown direction %d", int(dir))
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxDepth < 0 {
		return nil, errors.InvalidArgument("max depth must not be negative, got %d", o.maxDepth)
	}

	res := &Result{
		direction: dir,
		depths:    make(map[string]int),
	}
	for _, id := range roots {
		if !g.HasNode(id) {
			continue
		}
		if _, seen := res.depths[id]; seen {
			continue
		}
		res.visit(id, 0)
		res.roots = append(res.roots, id)
	}

	// Each expansion keeps its own walked set so a node claimed by one side
	// still passes the other side through. Depths stay first-wins.
	var fwd, bwd []string
	fwdSeen := make(map[string]bool)
	bwdSeen := make(map[string]bool)
	if dir == Forward || dir == Both {
		fwd = slices.Clone(res.roots)
	}
	if dir == Backward || dir == Both {
		bwd = slices.Clone(res.roots)
	}
	for _, id := range res.roots {
		fwdSeen[id] = true
		bwdSeen[id] = true
	}

	for hop := 1; len(fwd) > 0 || len(bwd) > 0; hop++ {
		if o.maxDepth > 0 && hop > o.maxDepth {
			break
		}
		fwd = res.expand(g, fwd, graph.Out, hop, fwdSeen, &o)
		bwd = res.expand(g, bwd, graph.In, -hop, bwdSeen, &o)
	}
	return res, nil
}

// expand walks the neighbors of frontier not yet in seen and returns them as
// the next frontier. Neighbors without a depth are visited at depth.
func (r *Result) expand(g *graph.Graph, frontier []string, dir graph.Direction, depth int, seen map[string]bool, o *options) []string {
	var next []string
	for _, id := range frontier {
		for _, e := range g.IncidentEdges(id, dir) {
			if !o.follows(e) {
				continue
			}
			n := e.Target
			if dir == graph.In {
				n = e.Source
			}
			if seen[n] {
				continue
			}
			seen[n] = true
			if _, ok := r.depths[n]; !ok {
				r.visit(n, depth)
			}
			next = append(next, n)
		}
	}
	return next
}

func (r *Result) visit(id string, depth int) {
	r.depths[id] = depth
	r.discovery = append(r.discovery, id)
}

// Direction returns the direction the result was computed with.
func (r *Result) Direction() Direction { return r.direction }

// Roots returns the roots that were present in the graph, in the order given.
func (r *Result) Roots() []string { return slices.Clone(r.roots) }

// Depth returns the depth of id and whether it was reached.
func (r *Result) Depth(id string) (int, bool) {
	d, ok := r.depths[id]
	return d, ok
}

// Depths returns a copy of the id → depth map.
func (r *Result) Depths() map[string]int { return maps.Clone(r.depths) }

// Discovery returns node IDs in the order they were first discovered:
// roots first, then each BFS round (forward before backward).
func (r *Result) Discovery() []string { return slices.Clone(r.discovery) }

// Len returns the number of reached nodes.
func (r *Result) Len() int { return len(r.depths) }

// MinDepth returns the smallest depth, or 0 for an empty result.
func (r *Result) MinDepth() int {
	lo := 0
	for _, d := range r.depths {
		lo = min(lo, d)
	}
	return lo
}

// MaxDepth returns the largest depth, or 0 for an empty result.
func (r *Result) MaxDepth() int {
	hi := 0
	for _, d := range r.depths {
		hi = max(hi, d)
	}
	return hi
}
