package io

import (
	"context"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/graph"
)

// ReadDOT parses Graphviz DOT source. Nodes keep the order graphviz reports
// them in; each node's outgoing edges follow it. Attributes are ignored.
func ReadDOT(ctx context.Context, data []byte) (*graph.Graph, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	cg, err := graphviz.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse dot")
	}
	defer cg.Close()

	g := graph.New()
	var nodes []*cgraph.Node
	for n, err := cg.FirstNode(); n != nil; n, err = cg.NextNode(n) {
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read dot nodes")
		}
		name, err := n.Name()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read dot node name")
		}
		if err := g.AddNode(name, nil); err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	for _, n := range nodes {
		source, err := n.Name()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read dot node name")
		}
		for e, err := cg.FirstOut(n); e != nil; e, err = cg.NextOut(e) {
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read dot edges")
			}
			head, err := e.Head()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read dot edge head")
			}
			target, err := head.Name()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read dot node name")
			}
			g.AddEdge(source, target)
		}
	}
	return g, nil
}
