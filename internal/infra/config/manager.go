package config

import (
	"os"
	"path/filepath"

	"github.com/termhere/termhere/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files on disk.
type Manager struct {
	globalPath string // Path to the global config file
}

// NewManager creates a new Manager using the default global config location.
func NewManager() *Manager {
	return &Manager{
		globalPath: DefaultGlobalConfigPath(),
	}
}

// NewManagerWithGlobalPath creates a new Manager with a custom global config
// file path. This is useful for testing.
func NewManagerWithGlobalPath(path string) *Manager {
	return &Manager{
		globalPath: path,
	}
}

// GlobalInfo returns information about the global config file.
func (m *Manager) GlobalInfo() domain.ConfigInfo {
	if m.globalPath == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(m.globalPath)
}

// ProjectInfo returns information about the nearest project config file
// for dir. When none exists up the tree, the reported path is where one
// would be created in dir itself.
func (m *Manager) ProjectInfo(dir string) domain.ConfigInfo {
	if path, ok := FindProjectConfig(dir); ok {
		return getConfigInfo(path)
	}
	return domain.ConfigInfo{
		Path:   domain.ProjectConfigPath(dir),
		Exists: false,
	}
}

// InitGlobal creates the global config file with the starter template.
func (m *Manager) InitGlobal(cfg *domain.Config) (string, error) {
	if m.globalPath == "" {
		return "", os.ErrNotExist
	}

	if err := os.MkdirAll(filepath.Dir(m.globalPath), 0o700); err != nil {
		return "", err
	}

	return m.globalPath, initConfig(m.globalPath, cfg)
}

// InitProject creates a .termhere.toml in dir with the starter template.
func (m *Manager) InitProject(dir string, cfg *domain.Config) (string, error) {
	path := domain.ProjectConfigPath(dir)
	return path, initConfig(path, cfg)
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// initConfig creates a config file with the starter template.
func initConfig(path string, cfg *domain.Config) error {
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	content := domain.RenderConfigTemplate(cfg)

	return os.WriteFile(path, []byte(content), 0o600)
}
