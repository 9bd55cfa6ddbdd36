// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/termhere/termhere/internal/domain"
)

// defaultGracePeriod is how long a launch without --wait may report an
// early failure. Default terminal commands (start, open, gnome-terminal)
// detach within this window; a custom binary still running past it is
// treated as a successfully opened terminal.
const defaultGracePeriod = 3 * time.Second

// OpenFolderInput contains the parameters for opening a terminal at a folder.
// Fields are ordered to minimize memory padding.
type OpenFolderInput struct {
	Path   string // Target folder (empty = current directory)
	Binary string // One-shot override of the configured terminal binary
	Args   string // One-shot override of the configured argument template
	Repo   bool   // Open at the enclosing git repository root
	DryRun bool   // Build the command without launching it
	Wait   bool   // Wait for the spawned command to finish
}

// OpenFolderOutput contains the result of opening a terminal.
type OpenFolderOutput struct {
	Command  domain.BuiltCommand // The built shell command
	Folder   string              // Absolute folder the terminal opens into
	Launched bool                // False for dry runs
}

// OpenFolder is the use case for opening a terminal at a folder.
type OpenFolder struct {
	config   domain.ConfigLoader
	launcher domain.Launcher
	history  domain.HistoryRepository
	repos    domain.RepoResolver
	notifier domain.Notifier
	logger   domain.Logger
	clock    domain.Clock

	platform string
	grace    time.Duration
}

// NewOpenFolder creates a new OpenFolder use case. platform is the
// runtime.GOOS identifier of the machine the terminal opens on.
func NewOpenFolder(
	config domain.ConfigLoader,
	launcher domain.Launcher,
	history domain.HistoryRepository,
	repos domain.RepoResolver,
	notifier domain.Notifier,
	logger domain.Logger,
	clock domain.Clock,
	platform string,
) *OpenFolder {
	return &OpenFolder{
		config:   config,
		launcher: launcher,
		history:  history,
		repos:    repos,
		notifier: notifier,
		logger:   logger,
		clock:    clock,
		platform: platform,
		grace:    defaultGracePeriod,
	}
}

// SetGracePeriod overrides the detach grace period for testing purposes.
func (uc *OpenFolder) SetGracePeriod(d time.Duration) {
	uc.grace = d
}

// Execute builds the terminal command for the target folder and launches it.
// Failures are logged and returned; the caller surfaces the returned error
// to the user exactly once.
func (uc *OpenFolder) Execute(ctx context.Context, in OpenFolderInput) (*OpenFolderOutput, error) {
	folder, err := uc.resolveFolder(in)
	if err != nil {
		uc.logger.Error("open", "resolve folder: %v", err)
		return nil, err
	}

	cfg, err := uc.config.Load(folder)
	if err != nil {
		uc.logger.Error("config", "load: %v", err)
		return nil, fmt.Errorf("load config: %w", err)
	}

	pref := cfg.TerminalPreference()
	if in.Binary != "" {
		pref.Binary = in.Binary
	}
	if in.Args != "" {
		pref.Args = in.Args
	}

	cmd, err := domain.BuildCommand(pref, folder, uc.platform)
	if err != nil {
		uc.logger.Error("build", "%v", err)
		return nil, err
	}
	uc.logger.Debug("build", "built command: %s", cmd)

	out := &OpenFolderOutput{Command: cmd, Folder: folder}
	if in.DryRun {
		return out, nil
	}

	if err := uc.launch(ctx, cmd, in.Wait || cfg.Terminal.Wait); err != nil {
		uc.logger.Error("launch", "%s: %v", cmd, err)
		return nil, err
	}
	out.Launched = true

	uc.recordHistory(cfg, folder)
	uc.logger.Info("launch", "opened terminal at %s", folder)
	uc.notifier.Success("Opened terminal at " + folder)

	return out, nil
}

// resolveFolder normalizes the target to an absolute existing directory,
// optionally replaced by its enclosing git repository root.
func (uc *OpenFolder) resolveFolder(in OpenFolderInput) (string, error) {
	path := in.Path
	if path == "" {
		path = "."
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve folder: %w", err)
	}

	fi, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrFolderNotFound, abs)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%w: %s", domain.ErrNotADirectory, abs)
	}

	if in.Repo {
		return uc.repos.Resolve(abs)
	}
	return abs, nil
}

// launch starts the command and applies the reporting policy: with wait the
// real outcome decides; otherwise only a failure arriving within the grace
// period counts, and silence means the terminal detached fine.
func (uc *OpenFolder) launch(ctx context.Context, cmd domain.BuiltCommand, wait bool) error {
	results := uc.launcher.Launch(ctx, cmd)

	if wait {
		return (<-results).Err
	}

	select {
	case res := <-results:
		return res.Err
	case <-time.After(uc.grace):
		return nil
	}
}

// recordHistory notes the opened folder. A history failure must not break
// a successful open; it is logged and otherwise ignored.
func (uc *OpenFolder) recordHistory(cfg *domain.Config, folder string) {
	if !cfg.History.Enabled {
		return
	}
	if err := uc.history.Touch(folder, uc.clock.Now(), cfg.HistoryLimit()); err != nil {
		uc.logger.Warn("history", "record %s: %v", folder, err)
	}
}
