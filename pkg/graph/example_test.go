package graph_test

import (
	"fmt"

	"github.com/matzehuels/codegraph/pkg/graph"
)

func ExampleGraph_Neighbors() {
	g := graph.New()
	_ = g.AddNode("main", graph.Attributes{"kind": "func"})
	_ = g.AddNode("parse", nil)
	_ = g.AddNode("render", nil)
	g.AddEdge("main", "parse", graph.WithKind("calls"))
	g.AddEdge("main", "render", graph.WithKind("calls"))
	g.AddEdge("main", "vendored", graph.WithKind("calls")) // dangling, skipped

	fmt.Println("callees:", g.Neighbors("main", graph.Out))
	fmt.Println("callers of parse:", g.Neighbors("parse", graph.In))
	fmt.Println("edges stored:", g.EdgeCount())
	// Output:
	// callees: [parse render]
	// callers of parse: [main]
	// edges stored: 3
}
