package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command.
func (cli *CLI) newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for toastkit.

To load completions:

Bash:
  $ source <(toastkit completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ toastkit completion bash > /etc/bash_completion.d/toastkit
  # macOS:
  $ toastkit completion bash > $(brew --prefix)/etc/bash_completion.d/toastkit

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ toastkit completion zsh > "${fpath[1]}/_toastkit"
  # You may need to start a new shell for this to take effect.

Fish:
  $ toastkit completion fish | source
  # To load completions for each session, execute once:
  $ toastkit completion fish > ~/.config/fish/completions/toastkit.fish

PowerShell:
  PS> toastkit completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> toastkit completion powershell > toastkit.ps1
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
