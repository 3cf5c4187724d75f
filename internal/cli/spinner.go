package cli

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

const (
	// spinnerSetUnicode is the braille dots charset.
	spinnerSetUnicode = 14
	// spinnerSetASCII is the plain | / - \ charset.
	spinnerSetASCII = 9
)

// interactive reports whether stdout is attached to a terminal.
func interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// startSpinner shows an indeterminate spinner on stderr while a toast
// waits for interaction. Outside a terminal it does nothing. The
// returned stop function is always safe to call.
func startSpinner(message string) func() {
	if !interactive() {
		return func() {}
	}

	charset := spinnerSetUnicode
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TOASTKIT_ASCII") == "1" {
		charset = spinnerSetASCII
	}

	s := spinner.New(spinner.CharSets[charset], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " " + message
	s.Start()

	return s.Stop
}
