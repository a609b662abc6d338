// Package graph provides the directed multigraph that every codegraph engine
// consumes.
//
// # Overview
//
// A [Graph] holds code entities ([Node]) and directed relationships ([Edge])
// between them. All domain meaning (symbol name, file path, work item status)
// lives in the node's [Attributes] and is opaque to the engine; identity is
// the only required field.
//
// The model is intentionally forgiving because it is fed by best-effort
// analysis data:
//
//   - Edges may reference nodes that were never added. They are kept in the
//     edge list but every traversal skips them.
//   - Parallel edges between the same ordered pair are preserved, since
//     weight aggregation depends on them (several call sites, for example).
//   - Adding a node twice overwrites its attributes but keeps its edges and
//     its original insertion position.
//
// # Determinism
//
// [Graph.Nodes] returns nodes in insertion order and [Graph.Neighbors]
// follows the insertion order of the incident edges. Downstream layering
// and packing rely on this to produce byte-identical output for identical
// input.
//
// # Usage
//
//	g := graph.New()
//	_ = g.AddNode("main", graph.Attributes{"kind": "func"})
//	_ = g.AddNode("parse", nil)
//	g.AddEdge("main", "parse", graph.WithKind("calls"))
//
//	callees := g.Neighbors("main", graph.Out) // ["parse"]
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Once built it can be shared
// read-only between goroutines; engines never mutate their input. Use
// [Graph.Clone] to hand out an independent snapshot.
package graph
