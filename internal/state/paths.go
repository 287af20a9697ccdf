package state

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppID scopes the data directory.
const AppID = "org.sparklet.windot"

// FileName is the state file's name inside the data directory.
const FileName = "state.json"

// DefaultDataDir returns the per-user application data directory:
// $XDG_DATA_HOME/org.sparklet.windot when set, ~/.local/share/... on
// Unix-likes, and the platform's roaming config directory elsewhere.
func DefaultDataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppID), nil
	}

	switch runtime.GOOS {
	case "windows", "darwin", "ios", "plan9":
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppID), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", AppID), nil
	}
}

// PathIn returns the state file path inside dir.
func PathIn(dir string) string {
	return filepath.Join(dir, FileName)
}
