package cli

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionGenerators maps each supported shell to its cobra script writer.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

// completionCommand creates the completion command.
func (c *CLI) completionCommand() *cobra.Command {
	shells := slices.Sorted(maps.Keys(completionGenerators))

	return &cobra.Command{
		Use:   "completion [" + strings.Join(shells, "|") + "]",
		Short: "Print a shell completion script",
		Long: `Print a completion script for the given shell to stdout.

The script completes subcommands, flags and graph file paths. Source it
once to try it out, or install it where your shell looks for completions:

  source <(codegraph completion bash)
  codegraph completion zsh > "${fpath[1]}/_codegraph"
  codegraph completion fish > ~/.config/fish/completions/codegraph.fish
  codegraph completion powershell >> $PROFILE`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root(), c.out)
		},
	}
}
