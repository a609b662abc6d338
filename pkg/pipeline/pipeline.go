// Package pipeline runs the full analysis over a graph and assembles a
// report.
//
// This package chains the engine packages so the CLI and any other caller
// get identical behavior from one entry point.
//
// # Stages
//
//  1. Layering: depth per node from the roots ([layering.Assign])
//  2. Ordering: order within each depth ([ordering.Pack])
//  3. Risk: composite score and category per node ([risk.ClassifyGraph])
//  4. Critical: closure around flagged nodes ([critical.Extract]), only when
//     a flag is configured
//  5. Cycles: strongly connected clusters and back edges ([cycles]), only
//     when enabled
//
// Each stage is timed, logged at debug level and reported to the registered
// [observability.AnalysisHooks]. The context is checked between stages; the
// stages themselves are synchronous and bounded by O(V+E).
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	report, err := runner.Analyze(ctx, g, pipeline.Options{
//	    Direction: layering.Both,
//	    Roots:     []string{"main"},
//	})
//
// [Runner.AnalyzeFiles] loads and analyzes many files concurrently and
// returns the reports in input order.
package pipeline

import (
	"slices"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/graph"
	"github.com/matzehuels/codegraph/pkg/layering"
	"github.com/matzehuels/codegraph/pkg/ordering"
	"github.com/matzehuels/codegraph/pkg/risk"
)

// Stage names passed to hooks and logs.
const (
	StageLayering = "layering"
	StageOrdering = "ordering"
	StageRisk     = "risk"
	StageCritical = "critical"
	StageCycles   = "cycles"
)

// SortByID sorts levels by node ID instead of by an attribute.
const SortByID = "id"

// Options configures one analysis run.
type Options struct {
	// Layering
	Direction layering.Direction `json:"direction" yaml:"direction"`
	Roots     []string           `json:"roots,omitempty" yaml:"roots,omitempty"`
	MaxDepth  int                `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`
	EdgeKinds []string           `json:"edge_kinds,omitempty" yaml:"edge_kinds,omitempty"`

	// Ordering: SortBy is empty for discovery order, SortByID, or an
	// attribute key.
	SortBy string `json:"sort_by,omitempty" yaml:"sort_by,omitempty"`
	Sweeps int    `json:"sweeps,omitempty" yaml:"sweeps,omitempty"`

	// Risk. An empty policy uses risk.LegacyHotspotPolicy.
	Policy risk.Policy `json:"policy" yaml:"policy"`

	// Critical path. Nodes are flagged when attribute FlagAttr equals
	// FlagValue, or when listed in FlagIDs.
	FlagAttr      string   `json:"flag_attr,omitempty" yaml:"flag_attr,omitempty"`
	FlagValue     string   `json:"flag_value,omitempty" yaml:"flag_value,omitempty"`
	FlagIDs       []string `json:"flag_ids,omitempty" yaml:"flag_ids,omitempty"`
	BlockingKinds []string `json:"blocking_kinds,omitempty" yaml:"blocking_kinds,omitempty"`

	Cycles bool `json:"cycles,omitempty" yaml:"cycles,omitempty"`
}

// withDefaults returns a copy of o with the default policy filled in.
func (o Options) withDefaults() Options {
	if len(o.Policy.Metrics) == 0 {
		o.Policy = risk.LegacyHotspotPolicy()
	}
	return o
}

// Validate reports the first invalid option as an INVALID_ARGUMENT error.
func (o Options) Validate() error {
	if !o.Direction.Valid() {
		return errors.InvalidArgument("unknown direction %d", int(o.Direction))
	}
	if o.MaxDepth < 0 {
		return errors.InvalidArgument("max depth must not be negative, got %d", o.MaxDepth)
	}
	if o.Sweeps < 0 {
		return errors.InvalidArgument("sweeps must not be negative, got %d", o.Sweeps)
	}
	if o.FlagValue != "" && o.FlagAttr == "" {
		return errors.InvalidArgument("flag value %q given without a flag attribute", o.FlagValue)
	}
	if slices.Contains(o.Roots, "") {
		return errors.InvalidArgument("root IDs must not be empty")
	}
	if err := o.withDefaults().Policy.Validate(); err != nil {
		return err
	}
	return nil
}

// flagging reports whether the critical stage has anything to flag.
func (o Options) flagging() bool {
	return o.FlagAttr != "" || len(o.FlagIDs) > 0
}

func (o Options) comparator(g *graph.Graph) ordering.Comparator {
	switch o.SortBy {
	case "":
		return nil
	case SortByID:
		return ordering.ByID()
	default:
		return ordering.ByAttribute(g, o.SortBy)
	}
}

// DefaultRoots picks traversal roots for graphs analyzed without explicit
// ones: nodes without incoming edges for Forward and Both, nodes without
// outgoing edges for Backward. When every node sits on a cycle, the first
// node is used.
func DefaultRoots(g *graph.Graph, dir layering.Direction) []string {
	var roots []string
	for _, id := range g.NodeIDs() {
		if dir == layering.Backward {
			if g.OutDegree(id) == 0 {
				roots = append(roots, id)
			}
		} else if g.InDegree(id) == 0 {
			roots = append(roots, id)
		}
	}
	if len(roots) == 0 && g.NodeCount() > 0 {
		roots = g.NodeIDs()[:1]
	}
	return roots
}
