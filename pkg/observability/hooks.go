// Package observability provides hooks for metrics and tracing.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about graph loading and analysis stages.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for analysis events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// The engine packages (layering, ordering, risk, critical) never call hooks;
// only the pipeline does, around each stage.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAnalysisHooks(promhooks.New())
//	    // ... run application
//	}
//
// The pipeline emits events:
//
//	observability.Analysis().OnStageStart(ctx, "layering", g.NodeCount())
//	// ... run the stage ...
//	observability.Analysis().OnStageComplete(ctx, "layering", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// AnalysisHooks receives events from the analysis pipeline.
type AnalysisHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, nodeCount, edgeCount int, duration time.Duration, err error)

	// Stage events
	OnStageStart(ctx context.Context, stage string, nodeCount int)
	OnStageComplete(ctx context.Context, stage string, duration time.Duration, err error)

	// OnRiskClassified reports how many nodes landed in each category.
	OnRiskClassified(ctx context.Context, counts map[string]int)
}

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnLoadStart(context.Context, string) {}
func (NoopAnalysisHooks) OnLoadComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopAnalysisHooks) OnStageStart(context.Context, string, int)                     {}
func (NoopAnalysisHooks) OnStageComplete(context.Context, string, time.Duration, error) {}
func (NoopAnalysisHooks) OnRiskClassified(context.Context, map[string]int)              {}

var (
	analysisHooks AnalysisHooks = NoopAnalysisHooks{}
	hooksMu       sync.RWMutex
)

// SetAnalysisHooks registers custom analysis hooks. Nil is ignored.
// This should be called once at application startup before any analysis.
func SetAnalysisHooks(h AnalysisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analysisHooks = h
	}
}

// Analysis returns the registered analysis hooks.
func Analysis() AnalysisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analysisHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	analysisHooks = NoopAnalysisHooks{}
}
