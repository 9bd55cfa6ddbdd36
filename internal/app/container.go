// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"runtime"

	"github.com/termhere/termhere/internal/domain"
	"github.com/termhere/termhere/internal/infra/config"
	"github.com/termhere/termhere/internal/infra/detect"
	"github.com/termhere/termhere/internal/infra/gitroot"
	"github.com/termhere/termhere/internal/infra/history"
	"github.com/termhere/termhere/internal/infra/launcher"
	"github.com/termhere/termhere/internal/infra/logging"
	"github.com/termhere/termhere/internal/infra/notify"
	"github.com/termhere/termhere/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Launcher      domain.Launcher
	History       domain.HistoryRepository
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Repos         domain.RepoResolver
	Prober        domain.TerminalProber
	Notifier      domain.Notifier
	Logger        domain.Logger
	Clock         domain.Clock

	// Platform is the runtime.GOOS identifier commands are built for.
	Platform string
}

// New creates a new Container wired to the real environment.
func New() *Container {
	configLoader := config.NewLoader()

	// The log level comes from the effective config for the current
	// directory; a broken config falls back to the defaults.
	cfg, err := configLoader.Load(".")
	if err != nil {
		cfg = domain.NewDefaultConfig()
	}

	return &Container{
		Launcher:      launcher.NewClient(),
		History:       history.New(history.DefaultPath()),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(),
		Repos:         gitroot.NewResolver(),
		Prober:        detect.NewProber(),
		Notifier:      notify.NewCLI(os.Stdout, os.Stderr),
		Logger:        logging.NewFromConfig(cfg),
		Clock:         domain.RealClock{},
		Platform:      runtime.GOOS,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	launcher domain.Launcher,
	history domain.HistoryRepository,
	configLoader domain.ConfigLoader,
	configManager domain.ConfigManager,
	repos domain.RepoResolver,
	prober domain.TerminalProber,
	notifier domain.Notifier,
	logger domain.Logger,
	clock domain.Clock,
	platform string,
) *Container {
	return &Container{
		Launcher:      launcher,
		History:       history,
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		Repos:         repos,
		Prober:        prober,
		Notifier:      notifier,
		Logger:        logger,
		Clock:         clock,
		Platform:      platform,
	}
}

// UseCase factory methods

// OpenFolderUseCase returns a new OpenFolder use case.
func (c *Container) OpenFolderUseCase() *usecase.OpenFolder {
	return usecase.NewOpenFolder(c.ConfigLoader, c.Launcher, c.History, c.Repos, c.Notifier, c.Logger, c.Clock, c.Platform)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader, c.ConfigManager)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ListHistoryUseCase returns a new ListHistory use case.
func (c *Container) ListHistoryUseCase() *usecase.ListHistory {
	return usecase.NewListHistory(c.History)
}

// ClearHistoryUseCase returns a new ClearHistory use case.
func (c *Container) ClearHistoryUseCase() *usecase.ClearHistory {
	return usecase.NewClearHistory(c.History)
}

// DoctorUseCase returns a new Doctor use case.
func (c *Container) DoctorUseCase() *usecase.Doctor {
	return usecase.NewDoctor(c.ConfigLoader, c.Prober, c.Platform)
}
