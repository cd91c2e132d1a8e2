package config

import (
	"os"
	"path/filepath"
)

// DataPath returns the root directory for taskman data.
// It uses $TASKMAN_PATH if set, otherwise defaults to ~/.taskman.
func DataPath() string {
	if v := os.Getenv("TASKMAN_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".taskman")
	}
	return filepath.Join(home, ".taskman")
}

// ConfigPath returns the path to the taskman config file.
func ConfigPath() string {
	return filepath.Join(DataPath(), "config.jsonc")
}

// DotenvPath returns the path to the taskman .env file.
func DotenvPath() string {
	return filepath.Join(DataPath(), ".env")
}

// LogPath returns the default log file path.
func LogPath() string {
	return filepath.Join(DataPath(), "taskman.log")
}
