// Package logging provides the file logger behind the domain.Logger port.
// Entries are appended to a single log file under the user state directory
// ($XDG_STATE_HOME/termhere/termhere.log, ~/.local/state fallback).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/termhere/termhere/internal/domain"
)

// LevelNone is the config value that disables logging entirely.
const LevelNone = "none"

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes formatted log lines to an append-only file. It is
// best-effort: when the file cannot be opened or written, entries are
// dropped so logging can never break the launch path.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file  *os.File
	path  string
	mu    sync.Mutex
	level slog.Level
}

// New creates a new Logger appending to the file at path.
// If path is empty, logging is disabled (returns a no-op logger).
func New(path string, level slog.Level) *Logger {
	return &Logger{
		path:  path,
		level: level,
	}
}

// NewFromConfig creates a Logger honoring the [log] section: the configured
// level filters entries and "none" disables the logger.
func NewFromConfig(cfg *domain.Config) *Logger {
	if cfg.Log.Level == LevelNone {
		return New("", slog.LevelError)
	}
	return New(DefaultLogPath(), ParseLevel(cfg.Log.Level))
}

// DefaultLogPath returns the log file location:
// $XDG_STATE_HOME/termhere/termhere.log, with ~/.local/state as fallback.
func DefaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.LogPath(stateHome)
}

// ParseLevel parses a log level string into slog.Level. Unrecognized values
// fall back to the default level, warn.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ensureFile opens or returns the log file.
func (l *Logger) ensureFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file, nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry.
// Format: [2026-01-30 09:32:51] [INFO] [launch] message
func formatLog(t time.Time, level slog.Level, category, msg string) string {
	return fmt.Sprintf("[%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes one entry, dropping it when logging is disabled, the entry is
// below the configured level, or the file cannot be opened.
func (l *Logger) log(level slog.Level, category, format string, args ...any) {
	if l.path == "" {
		return // Logging disabled
	}

	if level < l.level {
		return // Skip if below minimum level
	}

	entry := formatLog(time.Now(), level, category, fmt.Sprintf(format, args...))

	if f, err := l.ensureFile(); err == nil {
		_, _ = io.WriteString(f, entry)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(category, format string, args ...any) {
	l.log(slog.LevelDebug, category, format, args...)
}

// Info logs an info message.
func (l *Logger) Info(category, format string, args ...any) {
	l.log(slog.LevelInfo, category, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, format string, args ...any) {
	l.log(slog.LevelWarn, category, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(category, format string, args ...any) {
	l.log(slog.LevelError, category, format, args...)
}
