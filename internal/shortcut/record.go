// Package shortcut manages the Start Menu entry that gives an application
// a durable notification identity, and reconciles it against the desired
// state before anything is shown.
package shortcut

import (
	"fmt"
	"strings"
)

// WindowState is the launch window style stored in a shortcut. The values
// are the shell's own window style codes.
type WindowState int

const (
	WindowNormal    WindowState = 1
	WindowMaximized WindowState = 3
	WindowMinimized WindowState = 7
)

// String returns the canonical window state name.
func (w WindowState) String() string {
	switch w {
	case WindowMaximized:
		return "Maximized"
	case WindowMinimized:
		return "Minimized"
	default:
		return "Normal"
	}
}

// ParseWindowState resolves a case-insensitive window state name. The
// empty string resolves to WindowNormal.
func ParseWindowState(s string) (WindowState, error) {
	switch strings.ToLower(s) {
	case "", "normal":
		return WindowNormal, nil
	case "maximized":
		return WindowMaximized, nil
	case "minimized":
		return WindowMinimized, nil
	default:
		return WindowNormal, fmt.Errorf("unknown window state: %q", s)
	}
}

// Record is the full property set of a shortcut. Two records are compared
// property by property; there is no notion of a partial match.
type Record struct {
	FileName      string      `yaml:"file_name"`
	TargetPath    string      `yaml:"target_path"`
	Arguments     string      `yaml:"arguments"`
	Comment       string      `yaml:"comment"`
	WorkingFolder string      `yaml:"working_folder"`
	WindowState   WindowState `yaml:"window_state"`
	IconPath      string      `yaml:"icon_path"`
	AppID         string      `yaml:"app_id"`
	ActivatorID   string      `yaml:"activator_id"`
}

// Equivalent reports whether every property matches exactly, case
// included. Anything short of a full match means the shortcut gets
// rewritten whole.
func (r Record) Equivalent(other Record) bool {
	return r == other
}
