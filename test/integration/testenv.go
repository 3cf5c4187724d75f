//go:build integration

// Package integration provides end-to-end tests for the toastkit binary.
package integration

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestEnv is one isolated toastkit home: private config, data and
// shortcut directories, with the file-backed shortcut store forced on so
// no test ever touches the real Start Menu.
type TestEnv struct {
	ConfigDir   string
	DataDir     string
	ShortcutDir string
}

// NewTestEnv creates an isolated environment rooted in a temp directory.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	root := t.TempDir()
	env := &TestEnv{
		ConfigDir:   filepath.Join(root, "config"),
		DataDir:     filepath.Join(root, "data"),
		ShortcutDir: filepath.Join(root, "shortcuts"),
	}

	for _, dir := range []string{env.ConfigDir, env.DataDir, env.ShortcutDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	return env
}

// WriteConfig places a configuration file into the environment.
func (e *TestEnv) WriteConfig(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(e.ConfigDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

// Run executes the toastkit binary against this environment.
func (e *TestEnv) Run(ctx context.Context, t *testing.T, args ...string) (string, string, error) {
	return e.RunInput(ctx, t, "", args...)
}

// RunInput is Run with data piped to standard input.
func (e *TestEnv) RunInput(ctx context.Context, t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	binaryPath := ToastkitBinaryPath(t)
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"TOASTKIT_CONFIG_DIR="+e.ConfigDir,
		"TOASTKIT_DATA_DIR="+e.DataDir,
		"TOASTKIT_SHORTCUT_DIR="+e.ShortcutDir,
		"TOASTKIT_TEST_SHORTCUT_STORE=1",
		"NO_COLOR=1",
	)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// ToastkitBinaryPath returns the path to the toastkit binary.
func ToastkitBinaryPath(t *testing.T) string {
	t.Helper()

	// Check if TOASTKIT_BINARY is set
	if path := os.Getenv("TOASTKIT_BINARY"); path != "" {
		return path
	}

	// Try to find it relative to the test directory
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get caller information")
	}

	// Go up from test/integration to project root
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))
	binaryPath := filepath.Join(projectRoot, "bin", "toastkit")

	if runtime.GOOS == "windows" {
		binaryPath += ".exe"
	}

	// Check if binary exists
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Fatalf("toastkit binary not found at %s - run 'go build -o bin/toastkit ./cmd/toastkit' first", binaryPath)
	}

	return binaryPath
}

// resultNames is the closed set of outcomes the show command can print.
var resultNames = map[string]bool{
	"Invalid":                true,
	"Unavailable":            true,
	"Failed":                 true,
	"Activated":              true,
	"ApplicationHidden":      true,
	"UserCanceled":           true,
	"TimedOut":               true,
	"DisabledForApplication": true,
	"DisabledForUser":        true,
	"DisabledByGroupPolicy":  true,
	"DisabledByManifest":     true,
}
