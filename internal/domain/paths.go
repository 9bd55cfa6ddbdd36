package domain

import "path/filepath"

// File and directory names used across the tool.
const (
	AppName           = "termhere"
	ConfigFileName    = "config.toml"
	ProjectConfigName = ".termhere.toml"
	HistoryFileName   = "history.json"
	LogFileName       = "termhere.log"
)

// GlobalConfigPath returns the global config file path under the given
// config home (e.g., ~/.config).
func GlobalConfigPath(configHome string) string {
	return filepath.Join(configHome, AppName, ConfigFileName)
}

// ProjectConfigPath returns the project config file path for a directory.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigName)
}

// HistoryPath returns the history file path under the given data home
// (e.g., ~/.local/share).
func HistoryPath(dataHome string) string {
	return filepath.Join(dataHome, AppName, HistoryFileName)
}

// HistoryLockPath returns the lock file guarding the history file.
func HistoryLockPath(dataHome string) string {
	return HistoryPath(dataHome) + ".lock"
}

// LogPath returns the log file path under the given state home
// (e.g., ~/.local/state).
func LogPath(stateHome string) string {
	return filepath.Join(stateHome, AppName, LogFileName)
}
