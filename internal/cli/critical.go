package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/graph"
	"github.com/matzehuels/codegraph/pkg/pipeline"
)

// criticalCommand creates the critical command.
func (c *CLI) criticalCommand() *cobra.Command {
	var f analysisFlags

	cmd := &cobra.Command{
		Use:   "critical [graph]",
		Short: "Extract the blockers and dependents of flagged nodes",
		Long: `Flag nodes by attribute or ID and extract everything upstream of them
(their transitive blockers) and downstream (the work they gate), together
with the edges between those nodes.`,
		Example: `  codegraph critical items.json --flag-attr status --flag-value blocked
  codegraph critical items.json --flag-id ISSUE-42 --blocking-kind blocks`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}
			if opts.FlagAttr == "" && len(opts.FlagIDs) == 0 {
				return errors.InvalidArgument("nothing to flag: set --flag-attr or --flag-id")
			}
			rep, err := c.analyzeOne(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return c.emit(rep.Critical, func(w io.Writer) { printCritical(w, rep.Critical) })
		},
	}

	f.bindCritical(cmd)
	return cmd
}

func printCritical(w io.Writer, r *pipeline.CriticalReport) {
	printTitle(w, "Critical path")
	if len(r.Flagged) == 0 {
		printWarning(w, "no node matched the flag")
		return
	}
	printList(w, "flagged", r.Flagged)
	printList(w, "blockers", r.Blockers)
	printList(w, "gated", r.Gated)
	printNewline(w)
	printEdges(w, r.Edges)
}

func printEdges(w io.Writer, edges []graph.EdgeKey) {
	for _, e := range edges {
		printDetail(w, "%s %s %s", e.Source, iconArrow, e.Target)
	}
}
