// Package config provides configuration management for toastkit.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName is the application name used for directories.
	AppName = "toastkit"
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "config.yaml"
)

// Paths holds all the application paths.
type Paths struct {
	// ConfigDir is the directory for configuration files.
	ConfigDir string
	// DataDir is the directory for application data.
	DataDir string
	// ShortcutDir is the directory where notification shortcuts are
	// installed.
	ShortcutDir string
	// ConfigFile is the full path to the config file.
	ConfigFile string
}

// GetPaths returns the application paths for the current platform.
func GetPaths() *Paths {
	configDir := getConfigDir()
	return &Paths{
		ConfigDir:   configDir,
		DataDir:     getDataDir(),
		ShortcutDir: getShortcutDir(),
		ConfigFile:  filepath.Join(configDir, ConfigFileName),
	}
}

// getConfigDir returns the platform-specific config directory.
func getConfigDir() string {
	// Allow override via environment variable
	if dir := os.Getenv("TOASTKIT_CONFIG_DIR"); dir != "" {
		return dir
	}

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\toastkit
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
		if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
			return filepath.Join(userProfile, "AppData", "Roaming", AppName)
		}
	case "darwin":
		// macOS: respect XDG if set, prefer an existing ~/.config dir,
		// otherwise use Application Support
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, AppName)
		}
		if home := os.Getenv("HOME"); home != "" {
			xdgPath := filepath.Join(home, ".config", AppName)
			if info, err := os.Stat(xdgPath); err == nil && info.IsDir() {
				return xdgPath
			}
			return filepath.Join(home, "Library", "Application Support", AppName)
		}
	default:
		// Linux/BSD: $XDG_CONFIG_HOME/toastkit or ~/.config/toastkit
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, AppName)
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", AppName)
		}
	}

	// Last resort: hidden directory in the working directory
	return filepath.Join(".", "."+AppName)
}

// getDataDir returns the platform-specific data directory.
func getDataDir() string {
	// Allow override via environment variable
	if dir := os.Getenv("TOASTKIT_DATA_DIR"); dir != "" {
		return dir
	}

	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, AppName)
		}
		if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
			return filepath.Join(userProfile, "AppData", "Local", AppName)
		}
	case "darwin":
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, AppName)
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, "Library", "Application Support", AppName)
		}
	default:
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, AppName)
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".local", "share", AppName)
		}
	}

	return filepath.Join(".", "."+AppName, "data")
}

// getShortcutDir returns the directory where notification shortcuts are
// installed. Windows only associates an application identity with a
// notification when a shortcut carrying that identity exists under the
// Start Menu, so the per-user programs folder is the only location that
// works there.
func getShortcutDir() string {
	// Allow override via environment variable
	if dir := os.Getenv("TOASTKIT_SHORTCUT_DIR"); dir != "" {
		return dir
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs")
		}
		if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
			return filepath.Join(userProfile, "AppData", "Roaming", "Microsoft", "Windows", "Start Menu", "Programs")
		}
	}

	return filepath.Join(getDataDir(), "shortcuts")
}

// EnsureDirs creates the config and data directories if they don't exist.
func (p *Paths) EnsureDirs() error {
	dirs := []string{p.ConfigDir, p.DataDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	return nil
}
