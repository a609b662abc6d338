// Package workitems adapts work items and their blockers to the critical
// path extractor.
package workitems

import (
	"fmt"

	"github.com/matzehuels/codegraph/pkg/critical"
	"github.com/matzehuels/codegraph/pkg/graph"
)

const (
	// EdgeKind labels blocker → item edges.
	EdgeKind = "blocks"
	// StatusBlocked is the status that flags an item.
	StatusBlocked = "blocked"
)

// Item is a unit of tracked work.
type Item struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Status    string   `json:"status" yaml:"status"`
	BlockedBy []string `json:"blockedBy,omitempty" yaml:"blockedBy,omitempty"`
}

// Build converts items into a graph with one blocker → item edge per
// BlockedBy entry.
func Build(items []Item) (*graph.Graph, error) {
	g := graph.New()
	for _, it := range items {
		if err := g.AddNode(it.ID, graph.Attributes{"title": it.Title, "status": it.Status}); err != nil {
			return nil, fmt.Errorf("work item %q: %w", it.Title, err)
		}
	}
	for _, it := range items {
		for _, b := range it.BlockedBy {
			g.AddEdge(b, it.ID, graph.WithKind(EdgeKind))
		}
	}
	return g, nil
}

// CriticalPath returns the closure around every blocked item.
func CriticalPath(items []Item) (*critical.Result, error) {
	g, err := Build(items)
	if err != nil {
		return nil, err
	}
	return critical.Extract(g, critical.AttrEquals("status", StatusBlocked), critical.WithEdgeKinds(EdgeKind)), nil
}
