package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/codegraph/pkg/critical"
	"github.com/matzehuels/codegraph/pkg/cycles"
	"github.com/matzehuels/codegraph/pkg/graph"
	gio "github.com/matzehuels/codegraph/pkg/io"
	"github.com/matzehuels/codegraph/pkg/layering"
	"github.com/matzehuels/codegraph/pkg/observability"
	"github.com/matzehuels/codegraph/pkg/ordering"
	"github.com/matzehuels/codegraph/pkg/risk"
)

// Runner executes analyses. It keeps no results between calls, so one
// Runner can serve many goroutines with different options.
type Runner struct {
	Logger *log.Logger

	// Hooks receives stage events. Nil uses observability.Analysis().
	Hooks observability.AnalysisHooks

	// Concurrency bounds AnalyzeFiles. Zero uses GOMAXPROCS.
	Concurrency int
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

func (r *Runner) hooks() observability.AnalysisHooks {
	if r.Hooks != nil {
		return r.Hooks
	}
	return observability.Analysis()
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

// stage runs fn as a named stage: it checks ctx, reports to hooks, logs
// and records the duration in stats.
func (r *Runner) stage(ctx context.Context, name string, nodes int, stats *Stats, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h := r.hooks()
	h.OnStageStart(ctx, name, nodes)
	start := time.Now()
	err := fn()
	d := time.Since(start)
	h.OnStageComplete(ctx, name, d, err)
	stats.Durations[name] = d
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	r.logger().Debug("stage complete", "stage", name, "duration", d)
	return nil
}

// Analyze runs every configured stage over g. Invalid options fail with
// INVALID_ARGUMENT before any stage runs. An empty graph yields an empty
// report.
func (r *Runner) Analyze(ctx context.Context, g *graph.Graph, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	opts = opts.withDefaults()

	hash, err := GraphHash(g)
	if err != nil {
		return nil, fmt.Errorf("hash graph: %w", err)
	}
	rep := &Report{
		ID:        uuid.NewString(),
		GraphHash: hash,
		Stats: Stats{
			Nodes:         g.NodeCount(),
			Edges:         g.EdgeCount(),
			DanglingEdges: danglingEdges(g),
			Durations:     make(map[string]time.Duration),
		},
	}
	if rep.Stats.DanglingEdges > 0 {
		r.logger().Warn("graph has edges to missing nodes; they are skipped", "dangling", rep.Stats.DanglingEdges)
	}

	roots := opts.Roots
	if len(roots) == 0 {
		roots = DefaultRoots(g, opts.Direction)
		r.logger().Debug("no roots given, using defaults", "roots", len(roots))
	}
	if len(roots) == 0 {
		// Only an empty graph has no default roots.
		r.logger().Debug("graph is empty, skipping layering and ordering")
		rep.Roots = []string{}
		rep.Layout = []ordering.LayeredNode{}
		rep.Levels = map[int]int{}
	} else if err := r.layout(ctx, g, roots, opts, rep); err != nil {
		return nil, err
	}

	err = r.stage(ctx, StageRisk, g.NodeCount(), &rep.Stats, func() error {
		as, err := risk.ClassifyGraph(g, opts.Policy)
		if err != nil {
			return err
		}
		rep.Risk = risk.Rank(as)
		rep.RiskSummary = risk.Summarize(as)
		counts := make(map[string]int, 4)
		for _, c := range risk.Categories() {
			counts[c.String()] = rep.RiskSummary.Count(c)
		}
		r.hooks().OnRiskClassified(ctx, counts)
		if rep.RiskSummary.Partial > 0 {
			r.logger().Debug("nodes scored with missing metrics", "partial", rep.RiskSummary.Partial)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if opts.flagging() {
		err = r.stage(ctx, StageCritical, g.NodeCount(), &rep.Stats, func() error {
			var critOpts []critical.Option
			if len(opts.BlockingKinds) > 0 {
				critOpts = append(critOpts, critical.WithEdgeKinds(opts.BlockingKinds...))
			}
			flagged := make(map[string]bool, len(opts.FlagIDs))
			for _, id := range opts.FlagIDs {
				flagged[id] = true
			}
			match := critical.AttrEquals(opts.FlagAttr, opts.FlagValue)
			res := critical.Extract(g, func(n graph.Node) bool {
				return flagged[n.ID] || (opts.FlagAttr != "" && match(n))
			}, critOpts...)
			rep.Critical = newCriticalReport(res)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if opts.Cycles {
		err = r.stage(ctx, StageCycles, g.NodeCount(), &rep.Stats, func() error {
			rep.Cycles = &CycleReport{
				Components: cycles.Components(g),
				BackEdges:  cycles.BackEdges(g, rep.Roots...),
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	r.logger().Info("analysis complete",
		"nodes", rep.Stats.Nodes,
		"reached", rep.Stats.Reached,
		"levels", len(rep.Levels),
		"critical", rep.RiskSummary.Critical)
	return rep, nil
}

// layout runs the layering and ordering stages and fills the layout part of
// rep.
func (r *Runner) layout(ctx context.Context, g *graph.Graph, roots []string, opts Options, rep *Report) error {
	var layered *layering.Result
	err := r.stage(ctx, StageLayering, g.NodeCount(), &rep.Stats, func() error {
		var layerOpts []layering.Option
		if opts.MaxDepth > 0 {
			layerOpts = append(layerOpts, layering.WithMaxDepth(opts.MaxDepth))
		}
		if len(opts.EdgeKinds) > 0 {
			layerOpts = append(layerOpts, layering.WithEdgeKinds(opts.EdgeKinds...))
		}
		var err error
		layered, err = layering.Assign(g, roots, opts.Direction, layerOpts...)
		return err
	})
	if err != nil {
		return err
	}
	rep.Roots = layered.Roots()
	rep.Stats.Reached = layered.Len()
	rep.Stats.Unreached = g.NodeCount() - layered.Len()

	return r.stage(ctx, StageOrdering, layered.Len(), &rep.Stats, func() error {
		var packOpts []ordering.Option
		if cmp := opts.comparator(g); cmp != nil {
			packOpts = append(packOpts, ordering.WithComparator(cmp))
		}
		view := g
		if len(opts.EdgeKinds) > 0 {
			view = g.FilterEdges(opts.EdgeKinds...)
		}
		if opts.Sweeps > 0 {
			packOpts = append(packOpts, ordering.WithBarycenter(view, opts.Sweeps))
		}
		layout := ordering.Pack(layered, packOpts...)
		rep.Layout = layout.Nodes()
		rep.Levels = layout.Counts()
		rep.Crossings = ordering.Crossings(view, layout)
		return nil
	})
}

// AnalyzeFile loads path with io.ReadFile and analyzes it.
func (r *Runner) AnalyzeFile(ctx context.Context, path string, opts Options) (*Report, error) {
	g, err := r.load(ctx, path)
	if err != nil {
		return nil, err
	}
	rep, err := r.Analyze(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rep.Source = path
	return rep, nil
}

func (r *Runner) load(ctx context.Context, path string) (*graph.Graph, error) {
	h := r.hooks()
	h.OnLoadStart(ctx, path)
	start := time.Now()
	g, err := gio.ReadFile(ctx, path)
	if err != nil {
		h.OnLoadComplete(ctx, path, 0, 0, time.Since(start), err)
		return nil, err
	}
	d := time.Since(start)
	h.OnLoadComplete(ctx, path, g.NodeCount(), g.EdgeCount(), d, nil)
	r.logger().Debug("loaded graph", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount(), "duration", d)
	return g, nil
}

// AnalyzeFiles analyzes every path concurrently and returns the reports in
// the order of paths. The first failure cancels the remaining work.
func (r *Runner) AnalyzeFiles(ctx context.Context, paths []string, opts Options) ([]*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	limit := r.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	reports := make([]*Report, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, path := range paths {
		eg.Go(func() error {
			rep, err := r.AnalyzeFile(ctx, path, opts)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
