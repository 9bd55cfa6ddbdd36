package domain

import (
	"context"
	"time"
)

// LaunchResult is the single outcome of a launch. Err is nil on success
// and a *LaunchError on failure.
type LaunchResult struct {
	Err error
}

// Launcher spawns a built command through the platform shell.
type Launcher interface {
	// Launch starts the command without blocking and returns a buffered
	// channel that receives exactly one result when the shell exits.
	Launch(ctx context.Context, cmd BuiltCommand) <-chan LaunchResult
}

// HistoryRepository persists recently opened folders.
type HistoryRepository interface {
	// Touch records that path was opened at now, creating or refreshing
	// its entry. limit caps the number of entries kept.
	Touch(path string, now time.Time, limit int) error

	// List returns entries ordered most recently opened first.
	List() ([]HistoryEntry, error)

	// Clear removes all entries.
	Clear() error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration for a target folder:
	// defaults, then the global file, then the nearest project file.
	Load(targetDir string) (*Config, error)
}

// ConfigManager manages configuration files on disk.
type ConfigManager interface {
	// GlobalInfo returns info about the global config file.
	GlobalInfo() ConfigInfo

	// ProjectInfo returns info about the nearest project config file
	// for dir.
	ProjectInfo(dir string) ConfigInfo

	// InitGlobal writes the starter global config file. Returns
	// ErrConfigExists if the file is already there.
	InitGlobal(cfg *Config) (path string, err error)

	// InitProject writes a starter .termhere.toml into dir. Returns
	// ErrConfigExists if the file is already there.
	InitProject(dir string, cfg *Config) (path string, err error)
}

// ConfigInfo describes one config file source.
type ConfigInfo struct {
	Path    string // Location of the file
	Content string // Raw file content when it exists
	Exists  bool
}

// RepoResolver resolves the enclosing git repository root.
type RepoResolver interface {
	// Resolve returns the worktree root containing dir, or
	// ErrNotInRepository when dir is outside any repository.
	Resolve(dir string) (string, error)
}

// TerminalProber reports which terminal emulators are installed.
type TerminalProber interface {
	// Probe checks the known terminals for the given platform.
	Probe(platform string) []ProbeResult
}

// ProbeResult is one installed-terminal check.
// Fields are ordered to minimize memory padding.
type ProbeResult struct {
	Name      string // Binary or application name
	Path      string // Resolved location when found
	Available bool
}

// Notifier surfaces outcomes to the user.
type Notifier interface {
	// Success reports a successful launch.
	Success(msg string)

	// Info reports a neutral message.
	Info(msg string)

	// Error reports a failure. Every failure path goes through here.
	Error(msg string)
}

// Logger writes diagnostic log entries.
type Logger interface {
	Debug(category, format string, args ...any)
	Info(category, format string, args ...any)
	Warn(category, format string, args ...any)
	Error(category, format string, args ...any)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
