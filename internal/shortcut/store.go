package shortcut

import (
	"context"
	"errors"
	"os"
	"runtime"

	"github.com/lennarthald/toastkit/internal/powershell"
)

var (
	// ErrShortcutNotFound is returned when no shortcut exists at the path.
	ErrShortcutNotFound = errors.New("shortcut not found")
	// ErrShortcutRead is returned when a shortcut cannot be inspected.
	ErrShortcutRead = errors.New("failed to read shortcut")
	// ErrShortcutWrite is returned when a shortcut cannot be written.
	ErrShortcutWrite = errors.New("failed to write shortcut")
	// ErrStoreUnavailable is returned when no shortcut store is available.
	ErrStoreUnavailable = errors.New("shortcut store is not available")
)

// TestStoreEnvVar is the environment variable that, when set, forces the
// portable file-based store regardless of platform. This keeps tests from
// touching the real shell.
const TestStoreEnvVar = "TOASTKIT_TEST_SHORTCUT_STORE"

// Store reads and writes shortcuts at explicit paths.
type Store interface {
	// IsAvailable checks if the store can operate on this system.
	IsAvailable() error
	// Read returns the full property set of the shortcut at path.
	Read(ctx context.Context, path string) (Record, error)
	// Write replaces the shortcut at path with the given record.
	Write(ctx context.Context, path string, rec Record) error
}

// NewStore returns the default store for the current platform. Windows
// shortcuts go through the shell; everywhere else the record is kept as a
// plain file so the reconciliation semantics stay identical.
func NewStore() Store {
	if os.Getenv(TestStoreEnvVar) != "" {
		return NewFileStore()
	}
	if runtime.GOOS == "windows" {
		return NewScriptStore(powershell.NewCommandRunner())
	}
	return NewFileStore()
}
