package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/codegraph/pkg/config"
	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/observability/promhooks"
	"github.com/matzehuels/codegraph/pkg/pipeline"
	"github.com/matzehuels/codegraph/pkg/risk"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used in help text and completions.
const appName = "codegraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// out receives command results; logs go to the logger's writer.
	out io.Writer

	// Global flags
	verbose     bool
	configPath  string
	format      string
	output      string
	metricsFile string
}

// New creates a new CLI instance that logs to w. Results go to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command results, which is mostly useful in tests.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig resolves .env, the config file and CODEGRAPH_* variables.
func (c *CLI) loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// analysisFlags are the per-command overrides of config settings. Only
// flags the user actually set replace config values.
type analysisFlags struct {
	direction     string
	roots         []string
	maxDepth      int
	edgeKinds     []string
	sortBy        string
	sweeps        int
	metrics       []string
	flagAttr      string
	flagValue     string
	flagIDs       []string
	blockingKinds []string
	cycles        bool
	concurrency   int
}

func (f *analysisFlags) bindLayering(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.direction, "direction", "d", "forward", "traversal direction: forward, backward, both")
	cmd.Flags().StringSliceVarP(&f.roots, "root", "r", nil, "root node ID (repeatable; default: nodes without incoming edges)")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "stop expanding beyond this many hops (0 = unlimited)")
	cmd.Flags().StringSliceVar(&f.edgeKinds, "edge-kind", nil, "only follow edges of this kind (repeatable)")
}

func (f *analysisFlags) bindOrdering(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sortBy, "sort-by", "", `order levels by "id" or a numeric attribute (default: discovery order)`)
	cmd.Flags().IntVar(&f.sweeps, "sweeps", 0, "barycenter sweeps to reduce edge crossings")
}

func (f *analysisFlags) bindRisk(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.metrics, "metric", "m", nil, "risk metric as name:cap[:weight] (repeatable; default: changeCount:20, complexity:30)")
}

func (f *analysisFlags) bindCritical(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.flagAttr, "flag-attr", "", "attribute that marks flagged nodes")
	cmd.Flags().StringVar(&f.flagValue, "flag-value", "", "value of --flag-attr that marks a node as flagged")
	cmd.Flags().StringSliceVar(&f.flagIDs, "flag-id", nil, "flag a node by ID (repeatable)")
	cmd.Flags().StringSliceVar(&f.blockingKinds, "blocking-kind", nil, "only walk edges of this kind for the critical path (repeatable)")
}

// apply copies every changed flag into cfg and validates the result.
func (f *analysisFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("direction") {
		cfg.Layering.Direction = f.direction
	}
	if changed("root") {
		cfg.Layering.Roots = f.roots
	}
	if changed("max-depth") {
		cfg.Layering.MaxDepth = f.maxDepth
	}
	if changed("edge-kind") {
		cfg.Layering.EdgeKinds = f.edgeKinds
	}
	if changed("sort-by") {
		cfg.Ordering.SortBy = f.sortBy
	}
	if changed("sweeps") {
		cfg.Ordering.Sweeps = f.sweeps
	}
	if changed("metric") {
		metrics, err := parseMetrics(f.metrics)
		if err != nil {
			return err
		}
		cfg.Risk.Metrics = metrics
	}
	if changed("flag-attr") {
		cfg.Critical.FlagAttr = f.flagAttr
	}
	if changed("flag-value") {
		cfg.Critical.FlagValue = f.flagValue
	}
	if changed("flag-id") {
		cfg.Critical.FlagIDs = f.flagIDs
	}
	if changed("blocking-kind") {
		cfg.Critical.BlockingKinds = f.blockingKinds
	}
	if changed("cycles") {
		cfg.Cycles = f.cycles
	}
	if changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	return cfg.Validate()
}

// parseMetrics parses name:cap[:weight] specs.
func parseMetrics(specs []string) ([]risk.Metric, error) {
	metrics := make([]risk.Metric, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "metric %q: want name:cap[:weight]", spec)
		}
		m := risk.Metric{Name: parts[0]}
		var err error
		if m.Cap, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "metric %q: invalid cap", spec)
		}
		if len(parts) == 3 {
			if m.Weight, err = strconv.ParseFloat(parts[2], 64); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "metric %q: invalid weight", spec)
			}
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}

// resolve loads the config, applies flags and converts to pipeline options.
func (c *CLI) resolve(cmd *cobra.Command, f *analysisFlags) (*config.Config, pipeline.Options, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, pipeline.Options{}, err
	}
	if err := f.apply(cmd, cfg); err != nil {
		return nil, pipeline.Options{}, err
	}
	opts, err := cfg.PipelineOptions()
	if err != nil {
		return nil, pipeline.Options{}, err
	}
	return cfg, opts, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. When --metrics-file is
// set, the runner records Prometheus metrics and the returned flush writes
// them out.
func (c *CLI) newRunner(ctx context.Context, concurrency int) (*pipeline.Runner, func() error) {
	runner := pipeline.NewRunner(loggerFromContext(ctx))
	runner.Concurrency = concurrency
	if c.metricsFile == "" {
		return runner, func() error { return nil }
	}
	hooks := promhooks.New()
	runner.Hooks = hooks
	return runner, func() error {
		if err := hooks.WriteTextfile(c.metricsFile); err != nil {
			return fmt.Errorf("write metrics %s: %w", c.metricsFile, err)
		}
		return nil
	}
}

// analyzeOne runs the pipeline over a single file and flushes metrics.
func (c *CLI) analyzeOne(ctx context.Context, path string, opts pipeline.Options) (*pipeline.Report, error) {
	runner, flush := c.newRunner(ctx, 1)
	rep, err := runner.AnalyzeFile(ctx, path, opts)
	if ferr := flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return nil, err
	}
	return rep, nil
}
