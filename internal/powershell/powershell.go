// Package powershell runs PowerShell snippets through an injectable
// command seam, so script-driven behavior can be exercised in tests
// without a Windows host.
package powershell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// hostExecutable is the PowerShell host looked up on PATH.
const hostExecutable = "powershell"

// CommandRunner is an interface for launching the PowerShell host.
// This allows mocking in tests without actually executing binaries.
type CommandRunner interface {
	// LookPath finds the PowerShell host in PATH
	LookPath() (string, error)
	// Script creates a command that runs the given script
	Script(ctx context.Context, script string) Command
}

// Command represents a single PowerShell invocation.
type Command interface {
	// SetStdout sets the stdout writer
	SetStdout(stdout io.Writer)
	// SetStderr sets the stderr writer
	SetStderr(stderr io.Writer)
	// StdoutPipe returns a pipe for reading stdout
	StdoutPipe() (io.ReadCloser, error)
	// Start starts the command
	Start() error
	// Wait waits for the command to complete
	Wait() error
	// Process returns the underlying process
	Process() Process
}

// Process represents a running PowerShell host.
type Process interface {
	// Signal sends a signal to the process
	Signal(sig os.Signal) error
}

// realCommandRunner is the real implementation using os/exec.
type realCommandRunner struct{}

// NewCommandRunner creates a new real command runner.
func NewCommandRunner() CommandRunner {
	return &realCommandRunner{}
}

func (r *realCommandRunner) LookPath() (string, error) {
	return exec.LookPath(hostExecutable)
}

func (r *realCommandRunner) Script(ctx context.Context, script string) Command {
	cmd := exec.CommandContext(ctx, hostExecutable,
		"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass",
		"-Command", script)
	return &realCommand{cmd: cmd}
}

// realCommand wraps exec.Cmd to implement the Command interface.
type realCommand struct {
	cmd *exec.Cmd
}

func (c *realCommand) SetStdout(stdout io.Writer) {
	c.cmd.Stdout = stdout
}

func (c *realCommand) SetStderr(stderr io.Writer) {
	c.cmd.Stderr = stderr
}

func (c *realCommand) StdoutPipe() (io.ReadCloser, error) {
	return c.cmd.StdoutPipe()
}

func (c *realCommand) Start() error {
	return c.cmd.Start()
}

func (c *realCommand) Wait() error {
	return c.cmd.Wait()
}

func (c *realCommand) Process() Process {
	if c.cmd.Process == nil {
		return nil
	}
	return &realProcess{proc: c.cmd.Process}
}

// realProcess wraps os.Process to implement the Process interface.
type realProcess struct {
	proc *os.Process
}

func (p *realProcess) Signal(sig os.Signal) error {
	return p.proc.Signal(sig)
}

// Run executes the script and returns its trimmed standard output. Stderr
// is captured and folded into the error on failure.
func Run(ctx context.Context, runner CommandRunner, script string) (string, error) {
	cmd := runner.Script(ctx, script)

	var stdout, stderr bytes.Buffer
	cmd.SetStdout(&stdout)
	cmd.SetStderr(&stderr)

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start powershell: %w", err)
	}
	if err := cmd.Wait(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("powershell failed: %w: %s", err, msg)
		}
		return "", fmt.Errorf("powershell failed: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Quote wraps a value in a single-quoted PowerShell string literal. Inside
// single quotes the only character needing escape is the quote itself,
// written twice.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
