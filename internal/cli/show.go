package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lennarthald/toastkit/internal/request"
	"github.com/lennarthald/toastkit/internal/toaster"
	"github.com/lennarthald/toastkit/internal/types"
	"github.com/lennarthald/toastkit/internal/utils"
)

// showOutput represents the show outcome for JSON.
type showOutput struct {
	Result types.Result `json:"result"`
}

// showFlags collects the flag form of a request.
type showFlags struct {
	title       string
	bodyLines   []string
	logoPath    string
	audio       string
	rawXML      string
	appID       string
	maxDuration time.Duration
}

// newShowCmd creates the show command.
func (cli *CLI) newShowCmd() *cobra.Command {
	var (
		filePath    string
		useSample   bool
		printSample bool
		flags       showFlags
	)

	cmd := &cobra.Command{
		Use:   "show [REQUEST_JSON|-]",
		Short: "Show a toast notification and report how it settled",
		Long: `Show a toast notification and print its outcome on standard output.

The request is a JSON document passed as the argument, read from a file
with --file, or read from standard input when the argument is '-'.
Simple notifications can skip JSON entirely and use the flag form.
--app-id applies to every source and outranks the AppId inside the
document.

The command blocks until the notification settles and prints exactly one
outcome name: Activated, UserCanceled, TimedOut, ApplicationHidden,
Failed, Invalid, Unavailable, or one of the Disabled* values when the
platform blocks notifications for the application identity. A malformed
request document prints Invalid; only faults outside that set (a broken
shortcut store, cancellation) exit nonzero.

Examples:
  # Show a notification from a JSON document
  toastkit show '{"ToastTitle": "Done", "ToastBody": "Backup finished."}'

  # Read the request from a file or standard input
  toastkit show --file request.json
  cat request.json | toastkit show -

  # Flag form for simple notifications
  toastkit show --title "Done" --body "Backup finished." --audio IM

  # Show the built-in sample notification
  toastkit show --sample

  # Print the sample request document to start from
  toastkit show --print-sample`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}

			if printSample {
				return writeSampleRequest(cmd.OutOrStdout())
			}

			req, ok, err := resolveRequest(cmd, args, filePath, useSample, flags)
			if err != nil {
				return err
			}
			if !ok {
				// The request document could not be used; that is an
				// outcome, not a command failure.
				return cli.writeResult(cmd, format, types.ResultInvalid)
			}
			if flags.appID != "" {
				// The flag outranks the AppId inside the document.
				req.AppID = flags.appID
			}

			mgr := toaster.New(cli.Config, cli.Logger)

			stop := startSpinner(awaitMessage(req))
			result, err := mgr.Show(cmd.Context(), req)
			stop()
			if err != nil {
				return err
			}

			return cli.writeResult(cmd, format, result)
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read the request document from a file")
	cmd.Flags().BoolVar(&useSample, "sample", false, "Show the built-in sample notification")
	cmd.Flags().BoolVar(&printSample, "print-sample", false, "Print the sample request document and exit")
	cmd.Flags().StringVar(&flags.title, "title", "", "Notification title")
	cmd.Flags().StringArrayVar(&flags.bodyLines, "body", nil, "Body line (repeat for a second line)")
	cmd.Flags().StringVar(&flags.logoPath, "logo", "", "Path to a logo image")
	cmd.Flags().StringVar(&flags.audio, "audio", "", "Audio cue (Default, Silent, IM, Mail, Reminder, SMS, Looping*)")
	cmd.Flags().StringVar(&flags.rawXML, "xml", "", "Raw notification document, bypassing composition")
	cmd.Flags().StringVar(&flags.appID, "app-id", "", "Application identity to show the notification under")
	cmd.Flags().DurationVar(&flags.maxDuration, "max-duration", 0, "Remove the notification after this duration")

	return cmd
}

// writeResult prints the outcome in the requested format.
func (cli *CLI) writeResult(cmd *cobra.Command, format OutputFormat, result types.Result) error {
	writer := NewOutputWriter(format, cmd.OutOrStdout())
	return writer.Write(showOutput{Result: result}, func() {
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
	})
}

// resolveRequest picks the request source: the sample, a file, the
// positional document ('-' for standard input) or the flag form, in that
// order. Sources are exclusive. A source that yields a document which
// cannot be decoded or validated reports ok=false rather than an error,
// so the caller can fold it into the Invalid outcome; flag mistakes are
// command errors and fail fast.
func resolveRequest(cmd *cobra.Command, args []string, filePath string, useSample bool, flags showFlags) (*request.Request, bool, error) {
	sources := 0
	if useSample {
		sources++
	}
	if filePath != "" {
		sources++
	}
	if len(args) > 0 {
		sources++
	}
	if sources > 1 {
		return nil, false, fmt.Errorf("at most one request source may be given (document, --file, --sample)")
	}
	if sources == 1 && flagRequestGiven(flags) {
		return nil, false, fmt.Errorf("request flags cannot be combined with a request document")
	}

	switch {
	case useSample:
		return request.Sample(), true, nil

	case filePath != "":
		// #nosec G304 - the file path is given on the command line
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read request file: %w", err)
		}
		return decodeRequest(data)

	case len(args) > 0:
		data := []byte(args[0])
		if args[0] == "-" {
			data, _ = io.ReadAll(cmd.InOrStdin())
		}
		return decodeRequest(data)

	case flagRequestGiven(flags):
		req := flagRequest(flags)
		if err := req.Validate(); err != nil {
			return nil, false, err
		}
		return req, true, nil

	default:
		return nil, false, fmt.Errorf("no request given; pass a JSON document, --file, --sample or request flags")
	}
}

func decodeRequest(data []byte) (*request.Request, bool, error) {
	req, err := request.FromJSON(data)
	if err != nil {
		return nil, false, nil
	}
	return req, true, nil
}

// flagRequestGiven reports whether any request flag is set.
func flagRequestGiven(f showFlags) bool {
	return f.title != "" || len(f.bodyLines) > 0 || f.logoPath != "" ||
		f.audio != "" || f.rawXML != "" || f.maxDuration != 0
}

// flagRequest converts the flag form into a request document.
func flagRequest(f showFlags) *request.Request {
	return &request.Request{
		ToastTitle:        f.title,
		ToastBodyList:     f.bodyLines,
		ToastLogoFilePath: f.logoPath,
		ToastAudio:        f.audio,
		ToastXML:          f.rawXML,
		AppID:             f.appID,
		MaximumDuration:   request.Duration(f.maxDuration),
	}
}

// awaitMessage describes the wait on the spinner.
func awaitMessage(req *request.Request) string {
	if d := req.MaximumDuration.Std(); d > 0 {
		return fmt.Sprintf("waiting for the notification to settle (up to %s)", utils.FormatDuration(d))
	}
	return "waiting for the notification to settle"
}

// writeSampleRequest prints the built-in sample request as indented JSON.
func writeSampleRequest(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(request.Sample())
}
