package shortcut

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lennarthald/toastkit/internal/powershell"
)

// ScriptStore manipulates real shell links through the PowerShell host.
type ScriptStore struct {
	runner powershell.CommandRunner
}

// NewScriptStore creates a store backed by the given runner.
func NewScriptStore(runner powershell.CommandRunner) *ScriptStore {
	return &ScriptStore{runner: runner}
}

func (s *ScriptStore) IsAvailable() error {
	if _, err := s.runner.LookPath(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// linkProps mirrors the JSON printed by the read script.
type linkProps struct {
	TargetPath    string `json:"target_path"`
	Arguments     string `json:"arguments"`
	Comment       string `json:"comment"`
	WorkingFolder string `json:"working_folder"`
	WindowState   int    `json:"window_state"`
	IconPath      string `json:"icon_path"`
	AppID         string `json:"app_id"`
	ActivatorID   string `json:"activator_id"`
}

func (s *ScriptStore) Read(ctx context.Context, path string) (Record, error) {
	out, err := powershell.Run(ctx, s.runner, BuildReadScript(path))
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrShortcutRead, err)
	}
	if out == missingMarker {
		return Record{}, ErrShortcutNotFound
	}

	var props linkProps
	if err := json.Unmarshal([]byte(out), &props); err != nil {
		return Record{}, fmt.Errorf("%w: unexpected script output: %v", ErrShortcutRead, err)
	}

	return Record{
		FileName:      linkBase(path),
		TargetPath:    props.TargetPath,
		Arguments:     props.Arguments,
		Comment:       props.Comment,
		WorkingFolder: props.WorkingFolder,
		WindowState:   WindowState(props.WindowState),
		IconPath:      props.IconPath,
		AppID:         props.AppID,
		ActivatorID:   props.ActivatorID,
	}, nil
}

func (s *ScriptStore) Write(ctx context.Context, path string, rec Record) error {
	if _, err := powershell.Run(ctx, s.runner, BuildWriteScript(path, rec)); err != nil {
		return fmt.Errorf("%w: %v", ErrShortcutWrite, err)
	}
	return nil
}

// linkBase returns the last path element. Shell link paths are Windows
// paths even when this code runs elsewhere, so both separators count.
func linkBase(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}
