package shortcut

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore keeps the shortcut record as a YAML file at the shortcut path
// itself. It backs the non-Windows platforms and every test.
type FileStore struct {
	mu sync.Mutex
}

// NewFileStore creates a new file-based shortcut store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

func (f *FileStore) IsAvailable() error {
	return nil
}

func (f *FileStore) Read(ctx context.Context, path string) (Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	// #nosec G304 - path is derived from the configured shortcut directory
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, ErrShortcutNotFound
		}
		return Record{}, fmt.Errorf("%w: %v", ErrShortcutRead, err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrShortcutRead, err)
	}

	return rec, nil
}

func (f *FileStore) Write(ctx context.Context, path string, rec Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrShortcutWrite, err)
	}

	// Ensure directory exists with secure permissions
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: %v", ErrShortcutWrite, err)
	}

	// The shortcut is replaced whole, never patched in place.
	_ = os.Remove(path)

	// #nosec G304 - path is derived from the configured shortcut directory
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrShortcutWrite, err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrShortcutWrite, err)
	}

	return nil
}
