package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/pipeline"
)

// errCyclesFound fails `cycles --strict` on cyclic graphs.
var errCyclesFound = errors.New(errors.ErrCodeCyclesFound, "graph contains cycles")

// cyclesCommand creates the cycles command.
func (c *CLI) cyclesCommand() *cobra.Command {
	var (
		f      analysisFlags
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "cycles [graph]",
		Short: "List cyclic clusters and the edges that close them",
		Long: `List strongly connected clusters (self-loops included) and the back edges a
depth-first walk from the roots finds. Layering handles cycles on its own;
this command is a diagnostic.`,
		Example: `  codegraph cycles imports.json
  codegraph cycles imports.json --strict  # exit 1 when a cycle exists`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}
			opts.Cycles = true
			rep, err := c.analyzeOne(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			if err := c.emit(rep.Cycles, func(w io.Writer) { printCycles(w, rep.Cycles) }); err != nil {
				return err
			}
			if strict && len(rep.Cycles.Components) > 0 {
				return errCyclesFound
			}
			return nil
		},
	}

	f.bindLayering(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the graph has a cycle")
	return cmd
}

func printCycles(w io.Writer, r *pipeline.CycleReport) {
	printTitle(w, "Cycles")
	if len(r.Components) == 0 {
		printSuccess(w, "graph is acyclic")
		return
	}
	for _, comp := range r.Components {
		printKeyValue(w, "cluster", strings.Join(comp, ", "))
	}
	printNewline(w)
	printDetail(w, "back edges:")
	printEdges(w, r.BackEdges)
}
