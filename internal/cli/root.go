// Package cli provides the command-line interface for toastkit.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lennarthald/toastkit/internal/config"
	"github.com/lennarthald/toastkit/internal/logx"
)

// CLI holds the application state for the CLI.
type CLI struct {
	Config  *config.Config
	Logger  logx.Logger
	rootCmd *cobra.Command

	logFile io.Closer

	// Flags
	verboseFlag bool
	outputFlag  string
}

// New creates a new CLI instance.
func New() *CLI {
	cli := &CLI{}

	cli.rootCmd = &cobra.Command{
		Use:   "toastkit [command]",
		Short: "Toastkit - interactive desktop toast notifications",
		Long: `Toastkit shows interactive desktop toast notifications and reports how
each one settled: activated, dismissed by the user, timed out, hidden,
or blocked before it could appear.

Requests are plain JSON documents. A request may also declare a shortcut
that toastkit installs before the toast is shown, so the platform
attributes the notification to the declared application identity.

Run 'toastkit show --print-sample' to get a request document to start
from, or 'toastkit show --sample' to try one immediately.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.initialize(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	cli.rootCmd.PersistentFlags().BoolVarP(&cli.verboseFlag, "verbose", "v", false, "Enable verbose output")
	cli.rootCmd.PersistentFlags().StringVarP(&cli.outputFlag, "output", "o", "text", "Output format (text, json)")

	// Add commands
	cli.addCommands()

	return cli
}

// addCommands adds all subcommands to the root command.
func (cli *CLI) addCommands() {
	cli.rootCmd.AddCommand(
		cli.newVersionCmd(),
		cli.newShowCmd(),
		cli.newSendCmd(),
		cli.newConfigCmd(),
		cli.newDoctorCmd(),
		cli.newCompletionCmd(),
	)
}

// initialize loads configuration and sets up logging.
func (cli *CLI) initialize(cmd *cobra.Command) error {
	// Skip initialization for commands that must work without a readable
	// configuration.
	if skipsConfig(cmd.Name()) {
		return nil
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// The repair commands must still run so they can report or fix
		// what is broken; they continue on defaults.
		if !toleratesBrokenConfig(cmd.Name()) {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = config.Default()
	}
	cli.Config = cfg

	// Check environment variable for an application identity override
	if envAppID := os.Getenv("TOASTKIT_APP_ID"); envAppID != "" {
		cli.Config.AppID = envAppID
	}

	return cli.setupLogging()
}

// skipsConfig reports whether a command runs before configuration exists.
func skipsConfig(name string) bool {
	switch name {
	case "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	default:
		return false
	}
}

// toleratesBrokenConfig reports whether a command still runs when the
// configuration cannot be loaded.
func toleratesBrokenConfig(name string) bool {
	switch name {
	case "init", "path", "edit", "validate", "doctor":
		return true
	default:
		return false
	}
}

// setupLogging builds the logger described by the configuration. The
// verbose flag forces debug level over the configured one.
func (cli *CLI) setupLogging() error {
	level := cli.Config.Logging.Level
	if cli.verboseFlag {
		level = "debug"
	}

	var out io.Writer = os.Stderr
	if cli.Config.Logging.File != "" {
		f, err := os.OpenFile(cli.Config.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		cli.logFile = f
		out = f
	}

	cli.Logger = logx.New(out, level, cli.Config.Logging.JSON)
	return nil
}

// Execute runs the CLI.
func (cli *CLI) Execute(ctx context.Context) error {
	err := cli.rootCmd.ExecuteContext(ctx)

	if cli.logFile != nil {
		cli.logFile.Close()
	}

	return err
}
