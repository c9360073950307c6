package cli

import (
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/csvgrid/pkg/pipeline"
	"github.com/matzehuels/csvgrid/pkg/render/sink"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for csvgrid, including its
command, flag and format names.

To load completions:

Bash:
  $ source <(csvgrid completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ csvgrid completion bash > /etc/bash_completion.d/csvgrid
  # macOS:
  $ csvgrid completion bash > $(brew --prefix)/etc/bash_completion.d/csvgrid

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ csvgrid completion zsh > "${fpath[1]}/_csvgrid"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ csvgrid completion fish | source

  # To load completions for each session, execute once:
  $ csvgrid completion fish > ~/.config/fish/completions/csvgrid.fish

PowerShell:
  PS> csvgrid completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> csvgrid completion powershell > csvgrid.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// registerGridFlagCompletions adds value completion for the grid flags a
// command defines.
func registerGridFlagCompletions(cmd *cobra.Command) {
	if cmd.Flags().Lookup("format") != nil {
		_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	}
	if cmd.Flags().Lookup("fill") != nil {
		_ = cmd.RegisterFlagCompletionFunc("fill", cobra.FixedCompletions(
			[]string{"rows", "columns"}, cobra.ShellCompDirectiveNoFileComp))
	}
	if cmd.Flags().Lookup("border") != nil {
		borders := make([]string, 0, len(sink.ValidBorders))
		for b := range sink.ValidBorders {
			borders = append(borders, string(b))
		}
		slices.Sort(borders)
		_ = cmd.RegisterFlagCompletionFunc("border", cobra.FixedCompletions(
			borders, cobra.ShellCompDirectiveNoFileComp))
	}
}

// completeFormats completes the last entry of a comma-separated format list.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	chosen := strings.Split(prefix, ",")

	var out []string
	for f := range pipeline.ValidFormats {
		if !slices.Contains(chosen, f) {
			out = append(out, prefix+f)
		}
	}
	slices.Sort(out)
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
