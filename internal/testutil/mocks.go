// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/termhere/termhere/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockLauncher is a test double for domain.Launcher.
// Fields are ordered to minimize memory padding.
type MockLauncher struct {
	// Launched records every command handed to Launch, in order.
	Launched []domain.BuiltCommand

	// Result is delivered for every launch. The zero value reports success.
	Result domain.LaunchResult

	// Delay postpones the result delivery, simulating a terminal that
	// stays open for a while before the shell exits.
	Delay time.Duration

	// NoResult suppresses delivery entirely, simulating a terminal that
	// keeps running past any grace period.
	NoResult bool
}

// NewMockLauncher creates a new MockLauncher reporting success.
func NewMockLauncher() *MockLauncher {
	return &MockLauncher{}
}

// Launch records the command and returns a channel fed per configuration.
func (m *MockLauncher) Launch(_ context.Context, cmd domain.BuiltCommand) <-chan domain.LaunchResult {
	m.Launched = append(m.Launched, cmd)

	results := make(chan domain.LaunchResult, 1)
	if m.NoResult {
		return results
	}

	if m.Delay > 0 {
		go func(res domain.LaunchResult, d time.Duration) {
			time.Sleep(d)
			results <- res
			close(results)
		}(m.Result, m.Delay)
		return results
	}

	results <- m.Result
	close(results)
	return results
}

// MockHistoryRepository is a test double for domain.HistoryRepository.
// Fields are ordered to minimize memory padding.
type MockHistoryRepository struct {
	TouchErr error
	ListErr  error
	ClearErr error

	Entries []domain.HistoryEntry

	TouchedPath  string
	TouchedAt    time.Time
	TouchedLimit int
	TouchCalled  bool
	ClearCalled  bool
}

// NewMockHistoryRepository creates a new MockHistoryRepository.
func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{}
}

// Touch records the call and applies it to Entries.
func (m *MockHistoryRepository) Touch(path string, now time.Time, limit int) error {
	m.TouchCalled = true
	m.TouchedPath = path
	m.TouchedAt = now
	m.TouchedLimit = limit
	if m.TouchErr != nil {
		return m.TouchErr
	}
	m.Entries = domain.TouchHistory(m.Entries, path, now, limit)
	return nil
}

// List returns the configured entries.
func (m *MockHistoryRepository) List() ([]domain.HistoryEntry, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Entries, nil
}

// Clear removes all entries.
func (m *MockHistoryRepository) Clear() error {
	m.ClearCalled = true
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Entries = nil
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config    *domain.Config
	LoadErr   error
	LoadedDir string
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load(targetDir string) (*domain.Config, error) {
	m.LoadedDir = targetDir
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitGlobalErr  error
	InitProjectErr error

	GlobalConfigInfo  domain.ConfigInfo
	ProjectConfigInfo domain.ConfigInfo

	InitProjectDir    string
	InitGlobalCalled  bool
	InitProjectCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GlobalInfo returns the configured global config info.
func (m *MockConfigManager) GlobalInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// ProjectInfo returns the configured project config info.
func (m *MockConfigManager) ProjectInfo(_ string) domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// InitGlobal records the call.
func (m *MockConfigManager) InitGlobal(_ *domain.Config) (string, error) {
	m.InitGlobalCalled = true
	if m.InitGlobalErr != nil {
		return "", m.InitGlobalErr
	}
	return m.GlobalConfigInfo.Path, nil
}

// InitProject records the call.
func (m *MockConfigManager) InitProject(dir string, _ *domain.Config) (string, error) {
	m.InitProjectCalled = true
	m.InitProjectDir = dir
	if m.InitProjectErr != nil {
		return "", m.InitProjectErr
	}
	return m.ProjectConfigInfo.Path, nil
}

// MockRepoResolver is a test double for domain.RepoResolver.
type MockRepoResolver struct {
	Err         error
	Root        string
	ResolvedDir string
}

// NewMockRepoResolver creates a new MockRepoResolver.
func NewMockRepoResolver() *MockRepoResolver {
	return &MockRepoResolver{}
}

// Resolve returns the configured root.
func (m *MockRepoResolver) Resolve(dir string) (string, error) {
	m.ResolvedDir = dir
	if m.Err != nil {
		return "", m.Err
	}
	return m.Root, nil
}

// MockProber is a test double for domain.TerminalProber.
type MockProber struct {
	Results        []domain.ProbeResult
	ProbedPlatform string
}

// NewMockProber creates a new MockProber.
func NewMockProber() *MockProber {
	return &MockProber{}
}

// Probe returns the configured results.
func (m *MockProber) Probe(platform string) []domain.ProbeResult {
	m.ProbedPlatform = platform
	return m.Results
}

// MockNotifier is a test double for domain.Notifier.
type MockNotifier struct {
	Successes []string
	Infos     []string
	Errors    []string
}

// NewMockNotifier creates a new MockNotifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Success records a success notification.
func (m *MockNotifier) Success(msg string) {
	m.Successes = append(m.Successes, msg)
}

// Info records an info notification.
func (m *MockNotifier) Info(msg string) {
	m.Infos = append(m.Infos, msg)
}

// Error records an error notification.
func (m *MockNotifier) Error(msg string) {
	m.Errors = append(m.Errors, msg)
}

// MockLogger is a test double for domain.Logger recording formatted entries
// as "category: message" strings.
type MockLogger struct {
	Debugs []string
	Infos  []string
	Warns  []string
	Errors []string
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func logEntry(category, format string, args ...any) string {
	return category + ": " + fmt.Sprintf(format, args...)
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, format string, args ...any) {
	m.Debugs = append(m.Debugs, logEntry(category, format, args...))
}

// Info records an info entry.
func (m *MockLogger) Info(category, format string, args ...any) {
	m.Infos = append(m.Infos, logEntry(category, format, args...))
}

// Warn records a warning entry.
func (m *MockLogger) Warn(category, format string, args ...any) {
	m.Warns = append(m.Warns, logEntry(category, format, args...))
}

// Error records an error entry.
func (m *MockLogger) Error(category, format string, args ...any) {
	m.Errors = append(m.Errors, logEntry(category, format, args...))
}
