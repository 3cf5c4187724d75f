package powershell

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// mockRunner records the script it was asked to run and hands back a
// scripted command.
type mockRunner struct {
	script string
	cmd    *mockCommand
}

func (r *mockRunner) LookPath() (string, error) {
	return `C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`, nil
}

func (r *mockRunner) Script(_ context.Context, script string) Command {
	r.script = script
	return r.cmd
}

// mockCommand writes canned output into the configured writers.
type mockCommand struct {
	stdout io.Writer
	stderr io.Writer

	stdoutData string
	stderrData string
	startErr   error
	waitErr    error
}

func (c *mockCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *mockCommand) SetStderr(w io.Writer) { c.stderr = w }

func (c *mockCommand) StdoutPipe() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(c.stdoutData)), nil
}

func (c *mockCommand) Start() error {
	if c.startErr != nil {
		return c.startErr
	}
	if c.stdout != nil {
		_, _ = io.WriteString(c.stdout, c.stdoutData)
	}
	if c.stderr != nil {
		_, _ = io.WriteString(c.stderr, c.stderrData)
	}
	return nil
}

func (c *mockCommand) Wait() error      { return c.waitErr }
func (c *mockCommand) Process() Process { return nil }

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *mockCommand
		want     string
		wantErr  bool
		errPiece string
	}{
		{
			name: "trims output",
			cmd:  &mockCommand{stdoutData: "  Enabled\r\n"},
			want: "Enabled",
		},
		{
			name: "empty output",
			cmd:  &mockCommand{},
			want: "",
		},
		{
			name:     "start failure",
			cmd:      &mockCommand{startErr: errors.New("executable not found")},
			wantErr:  true,
			errPiece: "failed to start powershell",
		},
		{
			name:     "wait failure folds stderr",
			cmd:      &mockCommand{waitErr: errors.New("exit status 1"), stderrData: "Access is denied.\n"},
			wantErr:  true,
			errPiece: "Access is denied.",
		},
		{
			name:     "wait failure without stderr",
			cmd:      &mockCommand{waitErr: errors.New("exit status 1")},
			wantErr:  true,
			errPiece: "powershell failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mockRunner{cmd: tt.cmd}
			got, err := Run(context.Background(), runner, "Write-Output test")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Run() expected error, got %q", got)
				}
				if !strings.Contains(err.Error(), tt.errPiece) {
					t.Errorf("Run() error = %v, want it to mention %q", err, tt.errPiece)
				}
				return
			}
			if err != nil {
				t.Fatalf("Run() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Run() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunPassesScriptThrough(t *testing.T) {
	runner := &mockRunner{cmd: &mockCommand{}}
	script := "[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('app')"

	if _, err := Run(context.Background(), runner, script); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if runner.script != script {
		t.Errorf("runner received script %q, want %q", runner.script, script)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "''"},
		{"plain", "Toastkit.CLI", "'Toastkit.CLI'"},
		{"embedded quote", "it's done", "'it''s done'"},
		{"dollar stays literal", "$env:TEMP", "'$env:TEMP'"},
		{"backtick stays literal", "a`b", "'a`b'"},
		{"path with spaces", `C:\Program Files\app.exe`, `'C:\Program Files\app.exe'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.input); got != tt.want {
				t.Errorf("Quote(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRealRunnerProcessNilBeforeStart(t *testing.T) {
	runner := NewCommandRunner()
	cmd := runner.Script(context.Background(), "Write-Output hi")
	if p := cmd.Process(); p != nil {
		t.Errorf("Process() before Start = %v, want nil", p)
	}
}
