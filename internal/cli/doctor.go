package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lennarthald/toastkit/internal/config"
	"github.com/lennarthald/toastkit/internal/notifier"
	"github.com/lennarthald/toastkit/internal/shortcut"
	"github.com/lennarthald/toastkit/internal/toast"
	"github.com/lennarthald/toastkit/internal/types"
)

// CheckResult represents the result of a diagnostic check.
type CheckResult struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
	Fix     string      `json:"fix,omitempty"`
}

// CheckStatus represents the status of a diagnostic check.
type CheckStatus int

const (
	// CheckOK indicates the check passed.
	CheckOK CheckStatus = iota
	// CheckWarning indicates a non-critical issue.
	CheckWarning
	// CheckError indicates a critical failure.
	CheckError
	// CheckSkipped indicates the check was skipped.
	CheckSkipped
)

// String returns the status name.
func (s CheckStatus) String() string {
	switch s {
	case CheckOK:
		return "OK"
	case CheckWarning:
		return "WARN"
	case CheckError:
		return "ERROR"
	case CheckSkipped:
		return "SKIP"
	default:
		return "UNKNOWN"
	}
}

// Icon returns the status icon for display.
func (s CheckStatus) Icon() string {
	switch s {
	case CheckOK:
		return "[OK]"
	case CheckWarning:
		return "[!!]"
	case CheckError:
		return "[XX]"
	case CheckSkipped:
		return "[--]"
	default:
		return "[??]"
	}
}

// MarshalJSON implements json.Marshaler.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// DoctorOutput represents the doctor command output for JSON.
type DoctorOutput struct {
	Checks      []CheckResult `json:"checks"`
	HasErrors   bool          `json:"has_errors"`
	HasWarnings bool          `json:"has_warnings"`
}

// newDoctorCmd creates the doctor command.
func (cli *CLI) newDoctorCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues",
		Long: `Run diagnostic checks to identify and troubleshoot common issues.

The doctor command checks:
  - Configuration file validity
  - Platform notification capabilities and template family
  - Notification permission for the application identity
  - Shortcut store availability
  - Shortcut directory
  - Installed shortcut for the configured app id
  - Banner fallback configuration

Use --verbose for more detailed output.

Examples:
  # Run diagnostics
  toastkit doctor

  # Run with verbose output and suggested fixes
  toastkit doctor --verbose

  # Output as JSON
  toastkit doctor -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			results := cli.runDiagnostics(ctx)

			hasErrors := false
			hasWarnings := false
			for _, r := range results {
				if r.Status == CheckError {
					hasErrors = true
				}
				if r.Status == CheckWarning {
					hasWarnings = true
				}
			}

			output := DoctorOutput{
				Checks:      results,
				HasErrors:   hasErrors,
				HasWarnings: hasWarnings,
			}

			out := cmd.OutOrStdout()
			writer := NewOutputWriter(format, out)
			writeErr := writer.Write(output, func() {
				fmt.Fprintln(out, "Toastkit Diagnostics")
				fmt.Fprintln(out, "====================")
				fmt.Fprintln(out)

				for _, r := range results {
					fmt.Fprintf(out, "%s %s", r.Status.Icon(), r.Name)
					if r.Message != "" {
						fmt.Fprintf(out, ": %s", r.Message)
					}
					fmt.Fprintln(out)

					if (r.Status == CheckError || r.Status == CheckWarning) && r.Fix != "" && verbose {
						fmt.Fprintf(out, "      -> %s\n", r.Fix)
					}
				}

				fmt.Fprintln(out)
				if hasErrors {
					fmt.Fprintln(out, "Some checks failed. Run with --verbose for suggested fixes.")
				} else if hasWarnings {
					fmt.Fprintln(out, "All critical checks passed with some warnings.")
				} else {
					fmt.Fprintln(out, "All checks passed!")
				}
			})

			if writeErr != nil {
				return writeErr
			}

			if hasErrors {
				return fmt.Errorf("diagnostics failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Show detailed output and suggested fixes")

	return cmd
}

func (cli *CLI) runDiagnostics(ctx context.Context) []CheckResult {
	var results []CheckResult

	// Check 1: Configuration file
	results = append(results, cli.checkConfigFile())

	// Check 2: Platform capabilities
	results = append(results, checkPlatform(notifier.Detect()))

	// Check 3: Notification permission for the app identity
	setting, err := notifier.New(cli.Logger).Setting(ctx, cli.Config.AppID)
	results = append(results, checkPermission(cli.Config.AppID, setting, err))

	// Check 4: Shortcut store
	results = append(results, checkShortcutStore(shortcut.NewStore()))

	// Check 5: Shortcut directory
	results = append(results, checkShortcutDir(config.GetPaths().ShortcutDir))

	// Check 6: Shortcut for the configured app id
	results = append(results, checkAppShortcut(ctx, shortcut.NewStore(), config.GetPaths().ShortcutDir, cli.Config.AppID))

	// Check 7: Banner fallback
	results = append(results, checkFallback(cli.Config.Fallback))

	return results
}

func (cli *CLI) checkConfigFile() CheckResult {
	paths := config.GetPaths()

	if _, err := os.Stat(paths.ConfigFile); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Configuration file",
			Status:  CheckWarning,
			Message: "not found, using defaults",
			Fix:     "Run 'toastkit config init' to create one",
		}
	}

	// Try to load and validate
	cfg, err := config.Load()
	if err != nil {
		return CheckResult{
			Name:    "Configuration file",
			Status:  CheckError,
			Message: fmt.Sprintf("invalid: %v", err),
			Fix:     "Run 'toastkit config validate' to see detailed errors",
		}
	}

	return CheckResult{
		Name:    "Configuration file",
		Status:  CheckOK,
		Message: fmt.Sprintf("found (app id '%s')", cfg.AppID),
	}
}

// checkPlatform reports whether this system can show toast notifications
// and which template family it gets.
func checkPlatform(caps notifier.Capabilities) CheckResult {
	if !caps.Toasts {
		return CheckResult{
			Name:    "Platform notifications",
			Status:  CheckError,
			Message: "not supported on this system",
			Fix:     "Toast notifications need a desktop notification service; 'toastkit send' banners may still work",
		}
	}

	family := "legacy templates"
	if caps.Family() == toast.FamilyGeneric {
		family = "generic templates"
	}

	return CheckResult{
		Name:    "Platform notifications",
		Status:  CheckOK,
		Message: fmt.Sprintf("supported (%s)", family),
	}
}

// checkPermission classifies the probed platform notification setting for
// the application identity.
func checkPermission(appID string, setting types.PermissionSetting, err error) CheckResult {
	if err != nil {
		if errors.Is(err, notifier.ErrUnavailable) {
			return CheckResult{
				Name:    "Notification permission",
				Status:  CheckSkipped,
				Message: "no platform notifier on this system",
			}
		}
		return CheckResult{
			Name:    "Notification permission",
			Status:  CheckError,
			Message: fmt.Sprintf("query failed: %v", err),
			Fix:     "Check that the desktop notification service is running",
		}
	}

	switch setting {
	case types.SettingEnabled:
		return CheckResult{
			Name:    "Notification permission",
			Status:  CheckOK,
			Message: fmt.Sprintf("enabled for '%s'", appID),
		}
	case types.SettingUnknown:
		return CheckResult{
			Name:    "Notification permission",
			Status:  CheckWarning,
			Message: "platform reported an unrecognized setting",
		}
	default:
		return CheckResult{
			Name:    "Notification permission",
			Status:  CheckWarning,
			Message: fmt.Sprintf("blocked for '%s': %s", appID, setting),
			Fix:     "Enable notifications for the application in the system settings",
		}
	}
}

func checkShortcutStore(store shortcut.Store) CheckResult {
	if err := store.IsAvailable(); err != nil {
		return CheckResult{
			Name:    "Shortcut store",
			Status:  CheckError,
			Message: fmt.Sprintf("unavailable: %v", err),
			Fix:     "Requests without a Shortcut block still work; shortcut requests will report Failed",
		}
	}

	// Determine store type
	var storeType string
	switch store.(type) {
	case *shortcut.FileStore:
		storeType = "file records (test mode)"
	default:
		storeType = "shell link store"
	}

	return CheckResult{
		Name:    "Shortcut store",
		Status:  CheckOK,
		Message: storeType,
	}
}

func checkShortcutDir(dir string) CheckResult {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:    "Shortcut directory",
				Status:  CheckWarning,
				Message: fmt.Sprintf("%s does not exist", dir),
				Fix:     "The directory is created on the first shortcut install; set TOASTKIT_SHORTCUT_DIR to relocate it",
			}
		}
		return CheckResult{
			Name:    "Shortcut directory",
			Status:  CheckError,
			Message: fmt.Sprintf("cannot access %s: %v", dir, err),
		}
	}

	if !info.IsDir() {
		return CheckResult{
			Name:    "Shortcut directory",
			Status:  CheckError,
			Message: fmt.Sprintf("%s is not a directory", dir),
			Fix:     "Remove the file or set TOASTKIT_SHORTCUT_DIR to a different location",
		}
	}

	return CheckResult{
		Name:    "Shortcut directory",
		Status:  CheckOK,
		Message: dir,
	}
}

// checkAppShortcut scans the shortcut directory for an entry carrying the
// configured app id. The platform resolves the toast sender through that
// shortcut, so without one toasts show up unattributed or not at all.
func checkAppShortcut(ctx context.Context, store shortcut.Store, dir, appID string) CheckResult {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{
				Name:    "Application shortcut",
				Status:  CheckSkipped,
				Message: "shortcut directory does not exist yet",
			}
		}
		return CheckResult{
			Name:    "Application shortcut",
			Status:  CheckError,
			Message: fmt.Sprintf("cannot list %s: %v", dir, err),
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Foreign files in a shared Start Menu folder are expected; only
		// entries the store can decode count.
		rec, err := store.Read(ctx, filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		if rec.AppID == appID {
			return CheckResult{
				Name:    "Application shortcut",
				Status:  CheckOK,
				Message: fmt.Sprintf("found (%s)", entry.Name()),
			}
		}
	}

	return CheckResult{
		Name:    "Application shortcut",
		Status:  CheckWarning,
		Message: fmt.Sprintf("no shortcut installed for '%s'", appID),
		Fix:     "Declare a Shortcut block in a show request; the first delivery installs it",
	}
}

func checkFallback(cfg config.FallbackConfig) CheckResult {
	if !cfg.Enabled {
		return CheckResult{
			Name:    "Banner fallback",
			Status:  CheckOK,
			Message: "disabled ('show' reports Unavailable without a banner)",
		}
	}

	return CheckResult{
		Name:    "Banner fallback",
		Status:  CheckOK,
		Message: "enabled (plain banner when toasts are unsupported)",
	}
}
