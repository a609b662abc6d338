// Package adapters groups the domain mappers that feed the engine.
//
// Each subpackage translates one kind of source data into a graph.Graph
// and translates engine output back into its own types. None of them holds
// traversal or scoring logic:
//
//   - callgraph: symbols and calls, layered around a focus symbol
//   - deps: files and imports, layered forward from entry points
//   - hotspot: per-file change and complexity metrics, ranked by risk
//   - workitems: items and their blockers, reduced to the critical closure
package adapters
