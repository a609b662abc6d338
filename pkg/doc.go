// Package pkg provides the libraries behind codegraph.
//
// # Overview
//
// codegraph places the nodes of a directed graph at signed distances from a
// set of roots and scores them by risk. The pkg directory is organized into
// three areas:
//
//  1. Engine: [graph], [layering], [ordering], [risk], [critical], [cycles]
//  2. Consumers: [adapters] for call graphs, file dependencies, hotspots and
//     work items, and [pipeline] chaining the engine into one report
//  3. Infrastructure: [io], [config], [errors], [observability], [buildinfo]
//
// # Architecture
//
//	JSON / YAML / DOT / SQLite file
//	         ↓
//	    [io] package (decode into a graph.Graph)
//	         ↓
//	    [layering] package (signed depth per reachable node)
//	         ↓
//	    [ordering] package (ordered levels, crossing reduction)
//	         ↓
//	    [risk] / [critical] / [cycles] packages
//	         ↓
//	    [pipeline] Report (text, JSON, YAML)
//
// # Quick Start
//
//	g := graph.New()
//	_ = g.AddNode("main", nil)
//	_ = g.AddNode("parse", graph.Attributes{"complexity": 24})
//	g.AddEdge("main", "parse")
//
//	res, _ := layering.Assign(g, []string{"main"}, layering.Forward)
//	layout := ordering.Pack(res, ordering.WithComparator(ordering.ByID()))
//	scores, _ := risk.ClassifyGraph(g, risk.LegacyHotspotPolicy())
//
// The engine packages never log, never touch the network or disk and return
// only INVALID_ARGUMENT errors.
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/graph
// [layering]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/layering
// [ordering]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/ordering
// [risk]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/risk
// [critical]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/critical
// [cycles]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/cycles
// [adapters]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/adapters
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/codegraph/pkg/buildinfo
package pkg
