package domain

import (
	"path/filepath"
)

// File and directory names.
const (
	AppName             = "deskfolio"
	ConfigFileName      = "config.toml"
	LocalConfigFileName = ".deskfolio.toml"
	LogFileName         = "deskfolio.log"
)

// GlobalConfigDir returns the global config directory under configHome
// (e.g. ~/.config/deskfolio).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// StateDir returns the state directory under stateHome
// (e.g. ~/.local/state/deskfolio).
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppName)
}

// LogPath returns the path to the log file.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", LogFileName)
}

// LocalConfigPath returns the path of the per-directory config file.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// LogScope returns the scope column written to logs for a task.
// Format: task-<id>, or desktop when no task is involved.
func LogScope(id TaskID) string {
	if id == "" {
		return "desktop"
	}
	return "task-" + string(id)
}
