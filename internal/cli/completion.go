package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command. Besides commands and
// flags, the scripts complete --style with the registered generator styles.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Print a shell completion script",
		Long: `Completion prints a completion script for your shell. The script completes
subcommands, flags, and style names for 'mosaic generate --style' and
'mosaic preview --style'.

Try it in the current shell:
  bash        source <(mosaic completion bash)
  zsh         source <(mosaic completion zsh)
  fish        mosaic completion fish | source
  powershell  mosaic completion powershell | Out-String | Invoke-Expression

To keep it, write the script where your shell loads completions, e.g.
  mosaic completion bash > ~/.local/share/bash-completion/completions/mosaic
  mosaic completion zsh > "${fpath[1]}/_mosaic"
  mosaic completion fish > ~/.config/fish/completions/mosaic.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
