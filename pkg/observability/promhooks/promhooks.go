// Package promhooks records analysis events as Prometheus metrics.
//
// Metrics live in a private registry rather than the global default one.
// There is no HTTP endpoint: [Hooks.WriteTextfile] writes the registry in
// the text exposition format for the node_exporter textfile collector.
package promhooks

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/observability"
)

// Hooks implements observability.AnalysisHooks.
type Hooks struct {
	observability.NoopAnalysisHooks

	registry *prometheus.Registry

	LoadsTotal          *prometheus.CounterVec
	LoadDuration        prometheus.Histogram
	GraphNodes          prometheus.Histogram
	GraphEdges          prometheus.Histogram
	StageDuration       *prometheus.HistogramVec
	StagesTotal         *prometheus.CounterVec
	RiskNodesClassified *prometheus.CounterVec
}

var _ observability.AnalysisHooks = (*Hooks)(nil)

var sizeBuckets = []float64{10, 100, 1000, 10000, 100000}

// New creates hooks backed by a fresh registry.
func New() *Hooks {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Hooks{
		registry: reg,
		LoadsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "codegraph_loads_total",
			Help: "Graph files loaded, by outcome",
		}, []string{"status"}),
		LoadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "codegraph_load_duration_seconds",
			Help:    "Time spent reading and decoding a graph file",
			Buckets: prometheus.DefBuckets,
		}),
		GraphNodes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "codegraph_graph_nodes",
			Help:    "Number of nodes per loaded graph",
			Buckets: sizeBuckets,
		}),
		GraphEdges: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "codegraph_graph_edges",
			Help:    "Number of edges per loaded graph",
			Buckets: sizeBuckets,
		}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "codegraph_stage_duration_seconds",
			Help:    "Analysis stage duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"stage"}),
		StagesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "codegraph_stages_total",
			Help: "Analysis stages run, by outcome",
		}, []string{"stage", "status"}),
		RiskNodesClassified: f.NewCounterVec(prometheus.CounterOpts{
			Name: "codegraph_risk_nodes_classified_total",
			Help: "Nodes classified, by risk category",
		}, []string{"category"}),
	}
}

// Registry returns the registry holding the metrics.
func (h *Hooks) Registry() *prometheus.Registry { return h.registry }

func (h *Hooks) OnLoadComplete(_ context.Context, _ string, nodeCount, edgeCount int, d time.Duration, err error) {
	h.LoadsTotal.WithLabelValues(status(err)).Inc()
	if err != nil {
		return
	}
	h.LoadDuration.Observe(d.Seconds())
	h.GraphNodes.Observe(float64(nodeCount))
	h.GraphEdges.Observe(float64(edgeCount))
}

func (h *Hooks) OnStageComplete(_ context.Context, stage string, d time.Duration, err error) {
	h.StagesTotal.WithLabelValues(stage, status(err)).Inc()
	h.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (h *Hooks) OnRiskClassified(_ context.Context, counts map[string]int) {
	for category, n := range counts {
		h.RiskNodesClassified.WithLabelValues(category).Add(float64(n))
	}
}

// WriteTextfile atomically writes every metric to path in the Prometheus
// text format.
func (h *Hooks) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, h.registry); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write metrics to %s", path)
	}
	return nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
