package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codegraph/pkg/risk"
)

// riskView is the encoded output of the risk command.
type riskView struct {
	Source  string        `json:"source" yaml:"source"`
	Summary risk.Summary  `json:"summary" yaml:"summary"`
	Nodes   []risk.Ranked `json:"nodes" yaml:"nodes"`
}

// riskCommand creates the risk command.
func (c *CLI) riskCommand() *cobra.Command {
	var (
		f       analysisFlags
		top     int
		minimum string
	)

	cmd := &cobra.Command{
		Use:   "risk [graph]",
		Short: "Rank nodes by composite risk score",
		Long: `Score every node from numeric attributes and rank the nodes by score.

Each metric is divided by its cap and clamped to [0, 1]; the score is the
weighted mean of the normalized metrics. Missing metrics count as 0 and are
listed per node. Scores map to low (< 0.25), medium (< 0.5), high (< 0.75)
and critical.

Without --metric or a [risk] config section the hotspot metrics are used:
changeCount capped at 20 and complexity capped at 30.`,
		Example: `  codegraph risk files.json --top 10
  codegraph risk services.yaml -m churn:50:0.7 -m incidents:5:0.3 --min high`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}
			floor := risk.Low
			if minimum != "" {
				if floor, err = risk.ParseCategory(minimum); err != nil {
					return err
				}
			}
			rep, err := c.analyzeOne(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			view := riskView{
				Source:  rep.Source,
				Summary: rep.RiskSummary,
				Nodes:   filterRanked(rep.Risk, floor, top),
			}
			return c.emit(view, func(w io.Writer) { printRisk(w, view) })
		},
	}

	f.bindRisk(cmd)
	cmd.Flags().IntVarP(&top, "top", "n", 0, "show only the N riskiest nodes (0 = all)")
	cmd.Flags().StringVar(&minimum, "min", "", "hide nodes below this category: low, medium, high, critical")
	return cmd
}

// filterRanked keeps nodes at or above floor, at most top of them.
func filterRanked(ranked []risk.Ranked, floor risk.Category, top int) []risk.Ranked {
	out := make([]risk.Ranked, 0, len(ranked))
	for _, r := range ranked {
		if r.Category < floor {
			continue
		}
		out = append(out, r)
		if top > 0 && len(out) == top {
			break
		}
	}
	return out
}

func printRisk(w io.Writer, v riskView) {
	printTitle(w, "Risk")
	for i, r := range v.Nodes {
		line := fmt.Sprintf("%3d. %-32s %.3f  %s", i+1, r.ID, r.Score, renderCategory(r.Category))
		if r.Partial() {
			line += StyleDim.Render("  missing: " + strings.Join(r.Missing, ", "))
		}
		fmt.Fprintln(w, line)
	}
	printNewline(w)
	s := v.Summary
	printDetail(w, "%d critical · %d high · %d medium · %d low", s.Critical, s.High, s.Medium, s.Low)
	if s.Partial > 0 {
		printWarning(w, "%d of %d nodes scored with missing metrics", s.Partial, s.Total)
	}
}
