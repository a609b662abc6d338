package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codegraph/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Global flags:
//   - --verbose (-v): debug logging
//   - --config (-c): TOML settings file
//   - --format (-f): text, json or yaml
//   - --output (-o): write results to a file instead of stdout
//   - --metrics-file: write Prometheus metrics in textfile format
//
// The logger is attached to the command context before any subcommand runs
// and is available through loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "codegraph layers graphs by distance and ranks nodes by risk",
		Long: `codegraph assigns every node of a directed graph a signed depth from a set
of roots, packs the result into ordered levels, scores nodes by risk and
extracts the blockers and dependents of flagged nodes.

Graphs are read from JSON, YAML, DOT or SQLite files.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if c.verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			if err := validateFormat(c.format); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&c.configPath, "config", "c", "", "config file (TOML)")
	pf.StringVarP(&c.format, "format", "f", formatText, "output format: text, json, yaml")
	pf.StringVarP(&c.output, "output", "o", "", "output file (default: stdout)")
	pf.StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	root.AddCommand(c.layerCommand())
	root.AddCommand(c.riskCommand())
	root.AddCommand(c.criticalCommand())
	root.AddCommand(c.cyclesCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Execute runs the command tree with args and returns the first error.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
