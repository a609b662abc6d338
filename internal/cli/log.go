// Package cli implements the codegraph command-line interface.
//
// Every analysis command loads a graph file, runs the pipeline and presents
// one part of the report. The CLI is built using cobra and logs with
// charmbracelet/log.
//
// # Commands
//
//   - layer: signed depth and level order per node
//   - risk: nodes ranked by composite risk score
//   - critical: blockers and dependents of flagged nodes
//   - cycles: strongly connected clusters and back edges
//   - analyze: the full report for one or more graphs
//   - completion: shell completion scripts
//
// # Configuration
//
// Settings come from a TOML file (--config), CODEGRAPH_* environment
// variables (a .env file is read first) and command flags, later sources
// winning.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so the pipeline logs with the same
// settings.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with timestamps
// formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Analyzed 3 graphs (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() if there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
