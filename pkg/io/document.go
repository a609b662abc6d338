package io

import (
	"fmt"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/graph"
)

// Document is the serialized form of a graph.
type Document struct {
	Nodes []NodeDoc `json:"nodes" yaml:"nodes"`
	Edges []EdgeDoc `json:"edges" yaml:"edges"`
}

type NodeDoc struct {
	ID    string           `json:"id" yaml:"id"`
	Attrs graph.Attributes `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

type EdgeDoc struct {
	Source string   `json:"source" yaml:"source"`
	Target string   `json:"target" yaml:"target"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Kind   string   `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// FromGraph converts g into a Document. Weights equal to the default are
// left out.
func FromGraph(g *graph.Graph) Document {
	doc := Document{
		Nodes: make([]NodeDoc, 0, g.NodeCount()),
		Edges: make([]EdgeDoc, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		nd := NodeDoc{ID: n.ID}
		if len(n.Attrs) > 0 {
			nd.Attrs = n.Attrs
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	for _, e := range g.Edges() {
		ed := EdgeDoc{Source: e.Source, Target: e.Target, Kind: e.Kind}
		if e.Weight != graph.DefaultWeight {
			w := e.Weight
			ed.Weight = &w
		}
		doc.Edges = append(doc.Edges, ed)
	}
	return doc
}

// Graph builds a graph from the document. A node without an ID is an
// INVALID_ARGUMENT error; later duplicates overwrite earlier attributes.
func (d Document) Graph() (*graph.Graph, error) {
	g := graph.New()
	for i, n := range d.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		if err := g.AddNode(n.ID, n.Attrs); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}
	for _, e := range d.Edges {
		opts := []graph.EdgeOption{graph.WithKind(e.Kind)}
		if e.Weight != nil {
			opts = append(opts, graph.WithWeight(*e.Weight))
		}
		g.AddEdge(e.Source, e.Target, opts...)
	}
	return g, nil
}
