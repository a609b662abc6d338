// Package deps adapts files and import relations to the layering engine.
package deps

import (
	"fmt"

	"github.com/matzehuels/codegraph/pkg/cycles"
	"github.com/matzehuels/codegraph/pkg/graph"
	"github.com/matzehuels/codegraph/pkg/layering"
	"github.com/matzehuels/codegraph/pkg/ordering"
)

// EdgeKind labels import edges.
const EdgeKind = "imports"

type File struct {
	Path     string `json:"path" yaml:"path"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

// Import records that From imports To.
type Import struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

type Placed struct {
	File
	Depth int `json:"depth" yaml:"depth"`
	Order int `json:"order" yaml:"order"`
	Count int `json:"count" yaml:"count"`
}

// Build converts files and imports into a graph with importer → imported
// edges. Imports of files that are not listed are kept as dangling edges.
func Build(files []File, imports []Import) (*graph.Graph, error) {
	g := graph.New()
	for _, f := range files {
		if err := g.AddNode(f.Path, graph.Attributes{"language": f.Language}); err != nil {
			return nil, fmt.Errorf("file: %w", err)
		}
	}
	for _, imp := range imports {
		g.AddEdge(imp.From, imp.To, graph.WithKind(EdgeKind))
	}
	return g, nil
}

// Layers places every file reachable from entries, one level per import hop.
// Files in a level are sorted by path.
func Layers(files []File, imports []Import, entries []string) ([]Placed, error) {
	g, err := Build(files, imports)
	if err != nil {
		return nil, err
	}
	res, err := layering.Assign(g, entries, layering.Forward)
	if err != nil {
		return nil, err
	}
	layout := ordering.Pack(res, ordering.WithComparator(ordering.ByID()))

	byPath := make(map[string]File, len(files))
	for _, f := range files {
		byPath[f.Path] = f
	}
	out := make([]Placed, 0, layout.Len())
	for _, n := range layout.Nodes() {
		out = append(out, Placed{File: byPath[n.ID], Depth: n.Depth, Order: n.Order, Count: layout.CountAt(n.Depth)})
	}
	return out, nil
}

// ImportCycles returns the groups of files that import each other.
func ImportCycles(files []File, imports []Import) ([][]string, error) {
	g, err := Build(files, imports)
	if err != nil {
		return nil, err
	}
	return cycles.Components(g), nil
}
