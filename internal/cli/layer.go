package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codegraph/pkg/ordering"
	"github.com/matzehuels/codegraph/pkg/pipeline"
)

// layerView is the encoded output of the layer command.
type layerView struct {
	Source    string                 `json:"source" yaml:"source"`
	Roots     []string               `json:"roots" yaml:"roots"`
	Nodes     []ordering.LayeredNode `json:"nodes" yaml:"nodes"`
	Crossings int                    `json:"crossings" yaml:"crossings"`
	Unreached int                    `json:"unreached" yaml:"unreached"`
}

// layerCommand creates the layer command.
func (c *CLI) layerCommand() *cobra.Command {
	var f analysisFlags

	cmd := &cobra.Command{
		Use:   "layer [graph]",
		Short: "Assign each node a signed depth and an order within its level",
		Long: `Assign each node a signed depth from the roots and pack the nodes into
ordered levels.

Forward walks edges source to target and yields depths 0, 1, 2, ...; backward
walks them in reverse and yields 0, -1, -2, ...; both walks each way at once
and keeps the nearer side. Nodes the roots cannot reach are left out.`,
		Example: `  codegraph layer calls.json --root main --direction both --max-depth 3
  codegraph layer deps.dot --sort-by id --sweeps 4 -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}
			rep, err := c.analyzeOne(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			view := layerView{
				Source:    rep.Source,
				Roots:     rep.Roots,
				Nodes:     rep.Layout,
				Crossings: rep.Crossings,
				Unreached: rep.Stats.Unreached,
			}
			return c.emit(view, func(w io.Writer) { printLayers(w, rep) })
		},
	}

	f.bindLayering(cmd)
	f.bindOrdering(cmd)
	return cmd
}

func printLayers(w io.Writer, rep *pipeline.Report) {
	printTitle(w, "Levels")
	var (
		ids   []string
		depth int
	)
	for i, n := range rep.Layout {
		if i > 0 && n.Depth != depth {
			printLevel(w, depth, ids)
			ids = nil
		}
		depth = n.Depth
		ids = append(ids, n.ID)
	}
	if len(ids) > 0 {
		printLevel(w, depth, ids)
	}
	printNewline(w)
	printStats(w, rep.Stats.Nodes, rep.Stats.Edges, rep.Stats.Unreached)
	printDetail(w, "%d crossings between adjacent levels", rep.Crossings)
}
