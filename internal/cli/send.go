package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lennarthald/toastkit/internal/config"
	"github.com/lennarthald/toastkit/internal/logx"
	"github.com/lennarthald/toastkit/internal/notify"
)

// newSendCmd creates the send command.
func (cli *CLI) newSendCmd() *cobra.Command {
	var (
		iconPath string
		alert    bool
	)

	cmd := &cobra.Command{
		Use:   "send TITLE [MESSAGE...]",
		Short: "Send a plain desktop banner without waiting for an outcome",
		Long: `Send a plain fire-and-forget desktop banner.

Banners skip templates, audio cues, shortcut reconciliation and outcome
tracking entirely. They work on any desktop with a notification service
and the command returns as soon as the banner is handed off. Use 'show'
when the notification outcome matters.

Examples:
  toastkit send "Backup" "Finished without errors."
  toastkit send --alert "Disk almost full"
  toastkit send --icon warning.png "Deploy" "Rollback started."`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			message := strings.Join(args[1:], " ")

			// Banners requested explicitly are always delivered, even when
			// the fallback path is disabled for the show pipeline.
			sender := notify.New(config.FallbackConfig{Enabled: true})

			var err error
			if alert {
				err = sender.Alert(title, message, iconPath)
			} else {
				err = sender.Banner(title, message, iconPath)
			}
			if err != nil {
				return fmt.Errorf("failed to send banner: %w", err)
			}

			cli.Logger.Debug("banner sent", logx.String("title", title))
			return nil
		},
	}

	cmd.Flags().StringVar(&iconPath, "icon", "", "Path to an icon image")
	cmd.Flags().BoolVar(&alert, "alert", false, "Play the platform attention sound")

	return cmd
}
