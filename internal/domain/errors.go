package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrLaunchFailed        = errors.New("terminal launch failed")
	ErrFolderNotFound      = errors.New("folder does not exist")
	ErrNotADirectory       = errors.New("path is not a directory")
	ErrNotInRepository     = errors.New("not inside a git repository")
	ErrConfigExists        = errors.New("config file already exists")
	ErrHistoryDisabled     = errors.New("history recording is disabled")
)

// UnsupportedPlatformError reports a platform identifier outside the three
// recognized values. It carries the offending identifier verbatim.
type UnsupportedPlatformError struct {
	Platform string
}

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %q", e.Platform)
}

// Unwrap makes errors.Is(err, ErrUnsupportedPlatform) work.
func (e *UnsupportedPlatformError) Unwrap() error {
	return ErrUnsupportedPlatform
}

// LaunchError reports a failed terminal launch: the process could not be
// spawned, or the shell exited with a failure. Stderr holds any captured
// standard-error text for diagnostics.
type LaunchError struct {
	Message string
	Stderr  string
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return fmt.Sprintf("terminal launch failed: %s: %s", e.Message, s)
	}
	return fmt.Sprintf("terminal launch failed: %s", e.Message)
}

// Unwrap makes errors.Is(err, ErrLaunchFailed) work.
func (e *LaunchError) Unwrap() error {
	return ErrLaunchFailed
}
