// Package callgraph adapts symbols and call relations to the layering
// engine.
package callgraph

import (
	"fmt"

	"github.com/matzehuels/codegraph/pkg/graph"
	"github.com/matzehuels/codegraph/pkg/layering"
	"github.com/matzehuels/codegraph/pkg/ordering"
)

// EdgeKind labels call edges.
const EdgeKind = "calls"

// Symbol is a function, method or type.
type Symbol struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// Call is one call site. Repeated calls between the same pair are kept as
// parallel edges.
type Call struct {
	Caller string `json:"caller" yaml:"caller"`
	Callee string `json:"callee" yaml:"callee"`
}

// Placed is a symbol with its layered position.
type Placed struct {
	Symbol
	Depth int `json:"depth" yaml:"depth"`
	Order int `json:"order" yaml:"order"`
	// Count is the number of symbols sharing Depth.
	Count int `json:"count" yaml:"count"`
}

// Build converts symbols and calls into a graph with caller → callee edges.
func Build(symbols []Symbol, calls []Call) (*graph.Graph, error) {
	g := graph.New()
	for _, s := range symbols {
		if err := g.AddNode(s.ID, graph.Attributes{"name": s.Name, "file": s.File, "kind": s.Kind}); err != nil {
			return nil, fmt.Errorf("symbol %q: %w", s.Name, err)
		}
	}
	for _, c := range calls {
		g.AddEdge(c.Caller, c.Callee, graph.WithKind(EdgeKind))
	}
	return g, nil
}

// Layout layers the call graph around focus. Forward shows callees,
// Backward shows callers and Both shows the two sides of focus.
func Layout(symbols []Symbol, calls []Call, focus string, dir layering.Direction, opts ...ordering.Option) ([]Placed, error) {
	g, err := Build(symbols, calls)
	if err != nil {
		return nil, err
	}
	res, err := layering.Assign(g, []string{focus}, dir)
	if err != nil {
		return nil, err
	}
	layout := ordering.Pack(res, opts...)

	byID := make(map[string]Symbol, len(symbols))
	for _, s := range symbols {
		byID[s.ID] = s
	}
	var out []Placed
	for _, n := range layout.Nodes() {
		out = append(out, Placed{
			Symbol: byID[n.ID],
			Depth:  n.Depth,
			Order:  n.Order,
			Count:  layout.CountAt(n.Depth),
		})
	}
	return out, nil
}
