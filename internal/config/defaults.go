package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDir returns the per-user directory for frc-deploy state.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".frc-deploy")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "frc-deploy")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "frc-deploy")
	default:
		if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
			return filepath.Join(xdg, "frc-deploy")
		}
		return filepath.Join(home, ".local", "state", "frc-deploy")
	}
}

// HistoryFile returns the path of the deploy history log.
func HistoryFile() string {
	return filepath.Join(ConfigDir(), "history.log")
}
