// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/termhere/termhere/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	globalPath string // Path to the global config file
}

// NewLoader creates a new Loader using the default global config location.
func NewLoader() *Loader {
	return &Loader{
		globalPath: DefaultGlobalConfigPath(),
	}
}

// NewLoaderWithGlobalPath creates a new Loader with a custom global config
// file path. This is useful for testing.
func NewLoaderWithGlobalPath(path string) *Loader {
	return &Loader{
		globalPath: path,
	}
}

// DefaultGlobalConfigPath returns the global config file location:
// $XDG_CONFIG_HOME/termhere/config.toml, with ~/.config as fallback.
func DefaultGlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigPath(configHome)
}

// FindProjectConfig returns the nearest .termhere.toml walking up from dir.
func FindProjectConfig(dir string) (string, bool) {
	for current := filepath.Clean(dir); ; {
		path := domain.ProjectConfigPath(current)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// Load returns the merged configuration for a target folder.
// Merge order: defaults <- global file <- nearest project file.
func (l *Loader) Load(targetDir string) (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalPath != "" {
		global, err := l.loadFile(l.globalPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", l.globalPath, err)
		}
		applyFile(base, global)
	}

	if targetDir != "" {
		if path, ok := FindProjectConfig(targetDir); ok {
			project, err := l.loadFile(path)
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
			applyFile(base, project)
		}
	}

	sort.Strings(base.Warnings)
	return base, nil
}

// fileConfig carries one parsed file. Pointers distinguish "absent" from
// zero values so a later file can switch booleans off.
type fileConfig struct {
	binary   *string
	args     *string
	wait     *bool
	enabled  *bool
	limit    *int64
	level    *string
	warnings []string
}

// loadFile parses one configuration file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return parseRaw(raw), nil
}

// parseRaw converts the raw map into a fileConfig and collects warnings for
// unknown sections and keys.
func parseRaw(raw map[string]any) *fileConfig {
	res := &fileConfig{}

	for section, value := range raw {
		switch section {
		case "terminal":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "binary":
						if s, ok := v.(string); ok {
							res.binary = &s
						}
					case "args":
						if s, ok := v.(string); ok {
							res.args = &s
						}
					case "wait":
						if b, ok := v.(bool); ok {
							res.wait = &b
						}
					default:
						res.warnings = append(res.warnings, fmt.Sprintf("unknown key in [terminal]: %s", k))
					}
				}
			}
		case "history":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "enabled":
						if b, ok := v.(bool); ok {
							res.enabled = &b
						}
					case "limit":
						if n, ok := v.(int64); ok {
							res.limit = &n
						}
					default:
						res.warnings = append(res.warnings, fmt.Sprintf("unknown key in [history]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.level = &s
						}
					default:
						res.warnings = append(res.warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		default:
			res.warnings = append(res.warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	return res
}

// applyFile overlays one parsed file onto cfg. Later calls take precedence.
func applyFile(cfg *domain.Config, file *fileConfig) {
	if file == nil {
		return
	}

	if file.binary != nil {
		cfg.Terminal.Binary = *file.binary
	}
	if file.args != nil {
		cfg.Terminal.Args = *file.args
	}
	if file.wait != nil {
		cfg.Terminal.Wait = *file.wait
	}
	if file.enabled != nil {
		cfg.History.Enabled = *file.enabled
	}
	if file.limit != nil {
		cfg.History.Limit = int(*file.limit)
	}
	if file.level != nil {
		cfg.Log.Level = *file.level
	}
	cfg.Warnings = append(cfg.Warnings, file.warnings...)
}
