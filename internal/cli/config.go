package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lennarthald/toastkit/internal/config"
)

// configPathOutput represents config path output for JSON.
type configPathOutput struct {
	ConfigFile   string `json:"config_file"`
	ConfigDir    string `json:"config_dir"`
	DataDir      string `json:"data_dir"`
	ShortcutDir  string `json:"shortcut_dir"`
	ConfigExists bool   `json:"config_exists"`
}

// validationResult represents validation output for JSON.
type validationResult struct {
	Valid            bool     `json:"valid"`
	AppID            string   `json:"app_id"`
	SettleDelay      string   `json:"settle_delay"`
	SettleDelayValid bool     `json:"settle_delay_valid"`
	LogLevel         string   `json:"log_level"`
	LogLevelValid    bool     `json:"log_level_valid"`
	FallbackEnabled  bool     `json:"fallback_enabled"`
	Errors           []string `json:"errors,omitempty"`
}

// newConfigCmd creates the config command group.
func (cli *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage toastkit configuration",
		Long: `Manage toastkit configuration files and settings.

Use 'toastkit config init' for interactive setup.
Use 'toastkit config path' to see configuration file locations.
Use 'toastkit config edit' to open the configuration in your editor.`,
	}

	cmd.AddCommand(
		cli.newConfigInitCmd(),
		cli.newConfigPathCmd(),
		cli.newConfigEditCmd(),
		cli.newConfigValidateCmd(),
	)

	return cmd
}

// newConfigInitCmd creates the config init command.
func (cli *CLI) newConfigInitCmd() *cobra.Command {
	var nonInteractive bool
	var appID string
	var settleDelay time.Duration
	var noFallback bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize toastkit configuration interactively",
		Long: `Initialize toastkit configuration with an interactive wizard.

This command sets the application identity notifications are shown
under, the settle delay applied after shortcut installs, and whether
plain banners stand in when toast notifications are unsupported.
You can also use flags for non-interactive setup.

Examples:
  # Interactive setup
  toastkit config init

  # Non-interactive setup
  toastkit config init --non-interactive --app-id "Contoso.Backup" --settle-delay 5s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			var err error

			// Check if config already exists
			configPath := cli.Config.FilePath()
			if _, statErr := os.Stat(configPath); statErr == nil && !nonInteractive {
				fmt.Fprintf(out, "Configuration already exists at %s.\n", configPath)
				fmt.Fprint(out, "Overwrite? [y/N]: ")
				var response string
				response, err = reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				response = strings.TrimSpace(strings.ToLower(response))
				if response != "y" && response != "yes" {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			// Get app identity
			if appID == "" && !nonInteractive {
				fmt.Fprintf(out, "Application identity (default: %s): ", config.DefaultAppID)
				appID, err = reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read application identity: %w", err)
				}
				appID = strings.TrimSpace(appID)
			}
			if appID == "" {
				appID = config.DefaultAppID
			}

			// Get settle delay
			if settleDelay == 0 && !nonInteractive {
				fmt.Fprintf(out, "Settle delay after shortcut installs (default: %s): ", config.DefaultSettleDelay)
				var raw string
				raw, err = reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read settle delay: %w", err)
				}
				raw = strings.TrimSpace(raw)
				if raw != "" {
					settleDelay, err = time.ParseDuration(raw)
					if err != nil {
						return fmt.Errorf("invalid settle delay: %w", err)
					}
				}
			}
			if settleDelay == 0 {
				settleDelay = config.DefaultSettleDelay.Std()
			}

			// Get fallback preference
			fallback := !noFallback
			if !noFallback && !nonInteractive {
				fmt.Fprint(out, "Send a plain banner when toasts are unsupported? [Y/n]: ")
				var response string
				response, err = reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				response = strings.TrimSpace(strings.ToLower(response))
				fallback = response != "n" && response != "no"
			}

			cfg := config.Default()
			cfg.AppID = appID
			cfg.SettleDelay = config.Duration(settleDelay)
			cfg.Fallback.Enabled = fallback

			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintf(out, "\nConfiguration created!\n")
			fmt.Fprintf(out, "  App identity: %s\n", appID)
			fmt.Fprintf(out, "  Settle delay: %s\n", settleDelay)
			fmt.Fprintf(out, "  Banner fallback: %t\n", fallback)
			fmt.Fprintf(out, "\nConfiguration saved to: %s\n", cfg.FilePath())
			fmt.Fprintf(out, "\nNext steps:\n")
			fmt.Fprintf(out, "  1. Run 'toastkit doctor' to verify the platform setup\n")
			fmt.Fprintf(out, "  2. Run 'toastkit show --sample' to try a notification\n")

			return nil
		},
	}

	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Run without prompts")
	cmd.Flags().StringVar(&appID, "app-id", "", "Application identity to show notifications under")
	cmd.Flags().DurationVar(&settleDelay, "settle-delay", 0, "Pause after shortcut installs")
	cmd.Flags().BoolVar(&noFallback, "no-fallback", false, "Disable the plain banner fallback")

	return cmd
}

// newConfigPathCmd creates the config path command.
func (cli *CLI) newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}

			paths := config.GetPaths()
			out := cmd.OutOrStdout()

			_, configErr := os.Stat(paths.ConfigFile)
			output := configPathOutput{
				ConfigFile:   paths.ConfigFile,
				ConfigDir:    paths.ConfigDir,
				DataDir:      paths.DataDir,
				ShortcutDir:  paths.ShortcutDir,
				ConfigExists: configErr == nil,
			}

			writer := NewOutputWriter(format, out)
			return writer.Write(output, func() {
				fmt.Fprintln(out, "Configuration paths:")
				fmt.Fprintf(out, "  Config file:   %s\n", paths.ConfigFile)
				fmt.Fprintf(out, "  Config dir:    %s\n", paths.ConfigDir)
				fmt.Fprintf(out, "  Data dir:      %s\n", paths.DataDir)
				fmt.Fprintf(out, "  Shortcut dir:  %s\n", paths.ShortcutDir)

				fmt.Fprintln(out, "\nStatus:")
				if output.ConfigExists {
					fmt.Fprintf(out, "  Config file exists\n")
				} else {
					fmt.Fprintf(out, "  Config file does not exist\n")
				}
			})
		},
	}
}

// newConfigEditCmd creates the config edit command.
func (cli *CLI) newConfigEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open configuration file in editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := os.Getenv("EDITOR")
			if editor == "" {
				editor = os.Getenv("VISUAL")
			}
			if editor == "" {
				// Try common editors
				for _, e := range []string{"vim", "vi", "nano", "notepad"} {
					if _, err := exec.LookPath(e); err == nil {
						editor = e
						break
					}
				}
			}
			if editor == "" {
				return fmt.Errorf("no editor found: set $EDITOR environment variable")
			}

			configPath := cli.Config.FilePath()

			// Ensure config file exists
			if _, err := os.Stat(configPath); os.IsNotExist(err) {
				// Create default config
				if err := cli.Config.Save(); err != nil {
					return fmt.Errorf("failed to create config file: %w", err)
				}
			}

			// #nosec G204 - editor is from $EDITOR env var (user-controlled but expected), configPath is from config file path (controlled)
			editorCmd := exec.Command(editor, configPath)
			editorCmd.Stdin = os.Stdin
			editorCmd.Stdout = os.Stdout
			editorCmd.Stderr = os.Stderr

			return editorCmd.Run()
		},
	}
}

// newConfigValidateCmd creates the config validate command.
func (cli *CLI) newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}

			// Try to load config
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			result := validationResult{
				Valid:            true,
				AppID:            cfg.AppID,
				SettleDelay:      cfg.SettleDelay.String(),
				SettleDelayValid: cfg.SettleDelay >= 0,
				LogLevel:         cfg.Logging.Level,
				LogLevelValid:    knownLogLevel(cfg.Logging.Level),
				FallbackEnabled:  cfg.Fallback.Enabled,
			}

			if cfg.AppID == "" {
				result.Valid = false
				result.Errors = append(result.Errors, "app_id must not be empty")
			}
			if !result.SettleDelayValid {
				result.Valid = false
				result.Errors = append(result.Errors, "settle_delay must not be negative")
			}
			if !result.LogLevelValid {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level))
			}

			out := cmd.OutOrStdout()
			writer := NewOutputWriter(format, out)
			writeErr := writer.Write(result, func() {
				fmt.Fprintln(out, "Configuration validation:")

				fmt.Fprintf(out, "\n  App identity: %s\n", result.AppID)
				if result.SettleDelayValid {
					fmt.Fprintf(out, "  Settle delay: %s\n", result.SettleDelay)
				} else {
					fmt.Fprintf(out, "  Settle delay: %s (invalid)\n", result.SettleDelay)
				}
				if result.LogLevelValid {
					fmt.Fprintf(out, "  Log level:    %s\n", result.LogLevel)
				} else {
					fmt.Fprintf(out, "  Log level:    %s (invalid)\n", result.LogLevel)
				}
				fmt.Fprintf(out, "  Banner fallback: %t\n", result.FallbackEnabled)

				fmt.Fprintln(out)
				if result.Valid {
					fmt.Fprintln(out, "Configuration is valid")
				} else {
					fmt.Fprintln(out, "Configuration has errors")
				}
			})

			if writeErr != nil {
				return writeErr
			}

			if !result.Valid {
				return fmt.Errorf("configuration has errors")
			}
			return nil
		},
	}
}

// knownLogLevel reports whether the level names one the logger accepts.
func knownLogLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
