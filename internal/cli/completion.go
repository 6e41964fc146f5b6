package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for aksara-diagram.

To load completions:

Bash:
  $ source <(aksara-diagram completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ aksara-diagram completion bash > /etc/bash_completion.d/aksara-diagram
  # macOS:
  $ aksara-diagram completion bash > $(brew --prefix)/etc/bash_completion.d/aksara-diagram

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ aksara-diagram completion zsh > "${fpath[1]}/_aksara-diagram"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ aksara-diagram completion fish | source

  # To load completions for each session, execute once:
  $ aksara-diagram completion fish > ~/.config/fish/completions/aksara-diagram.fish

PowerShell:
  PS> aksara-diagram completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> aksara-diagram completion powershell > aksara-diagram.ps1
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
