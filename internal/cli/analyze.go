package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codegraph/pkg/pipeline"
)

// analyzeCommand creates the analyze command for full reports.
func (c *CLI) analyzeCommand() *cobra.Command {
	var f analysisFlags

	cmd := &cobra.Command{
		Use:   "analyze [graph...]",
		Short: "Run every analysis and print the full report",
		Long: `Run layering, ordering, risk classification, the critical path (when a
flag is set) and cycle diagnostics (with --cycles) over one or more graphs.

Several graphs are analyzed concurrently; reports keep the order of the
arguments. The first failure cancels the rest.`,
		Example: `  codegraph analyze services/*.json --cycles -f json -o report.json
  codegraph analyze repo.db --flag-attr status --flag-value blocked --metrics-file codegraph.prom`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, opts, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			runner, flush := c.newRunner(ctx, cfg.Concurrency)
			reports, err := runner.AnalyzeFiles(ctx, args, opts)
			if ferr := flush(); err == nil {
				err = ferr
			}
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Analyzed %d graphs", len(reports)))

			return c.emit(reports, func(w io.Writer) {
				for i, rep := range reports {
					if i > 0 {
						printNewline(w)
					}
					printReport(w, rep)
				}
			})
		},
	}

	f.bindLayering(cmd)
	f.bindOrdering(cmd)
	f.bindRisk(cmd)
	f.bindCritical(cmd)
	cmd.Flags().BoolVar(&f.cycles, "cycles", false, "include cycle diagnostics")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "graphs analyzed at once (0 = number of CPUs)")
	return cmd
}

func printReport(w io.Writer, rep *pipeline.Report) {
	printTitle(w, rep.Source)
	printKeyValue(w, "id", rep.ID)
	printKeyValue(w, "hash", rep.GraphHash[:12])
	printStats(w, rep.Stats.Nodes, rep.Stats.Edges, rep.Stats.Unreached)
	if rep.Stats.DanglingEdges > 0 {
		printWarning(w, "%d edges point at missing nodes", rep.Stats.DanglingEdges)
	}
	printNewline(w)
	printLayers(w, rep)
	printNewline(w)
	printRisk(w, riskView{Source: rep.Source, Summary: rep.RiskSummary, Nodes: filterRanked(rep.Risk, 0, 10)})
	if rep.Critical != nil {
		printNewline(w)
		printCritical(w, rep.Critical)
	}
	if rep.Cycles != nil {
		printNewline(w)
		printCycles(w, rep.Cycles)
	}
}
