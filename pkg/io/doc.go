// Package io loads graphs from files and writes analysis output.
//
// # Formats
//
// JSON and YAML share one document shape:
//
//	{
//	  "nodes": [
//	    {"id": "main", "attrs": {"file": "main.go", "complexity": 12}},
//	    {"id": "parse"}
//	  ],
//	  "edges": [
//	    {"source": "main", "target": "parse", "kind": "calls"},
//	    {"source": "main", "target": "parse", "kind": "calls", "weight": 2}
//	  ]
//	}
//
// Only "id", "source" and "target" are required. Weight defaults to 1 and
// kind to the empty string. Edges may name nodes that are not listed; they
// are kept as dangling edges, which the engine skips during traversal.
//
// Graphviz DOT files contribute node names and edges only; DOT attributes
// are ignored. SQLite databases must hold two tables:
//
//	CREATE TABLE nodes (id TEXT PRIMARY KEY, attrs TEXT);          -- attrs is a JSON object or NULL
//	CREATE TABLE edges (source TEXT, target TEXT, weight REAL, kind TEXT);
//
// # Loading
//
// [ReadFile] picks the decoder from the file extension:
//
//	.json          JSON document
//	.yaml, .yml    YAML document
//	.dot, .gv      Graphviz DOT
//	.db, .sqlite   SQLite database
//
// An unknown extension fails with INVALID_FORMAT and a missing file with
// FILE_NOT_FOUND. Decoding failures are wrapped with the path.
//
// # Export
//
// [WriteJSON] and [WriteYAML] encode any value, typically a pipeline report
// or a [Document] built with [FromGraph]. Nodes and edges keep their
// insertion order, so a graph written and read back is identical.
package io
