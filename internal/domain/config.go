package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// DefaultHistoryLimit caps how many folders the history keeps when the
// config does not say otherwise.
const DefaultHistoryLimit = 50

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"` // Non-fatal notes collected while loading
	Terminal TerminalConfig `toml:"terminal"`
	History  HistoryConfig  `toml:"history"`
	Log      LogConfig      `toml:"log"`
}

// TerminalConfig holds terminal settings from the [terminal] section.
type TerminalConfig struct {
	Binary string `toml:"binary,omitempty"` // Custom terminal binary (empty = platform default)
	Args   string `toml:"args,omitempty"`   // Argument template; every {path} becomes the quoted folder path
	Wait   bool   `toml:"wait,omitempty"`   // Wait for the spawned command to finish
}

// HistoryConfig holds history settings from the [history] section.
type HistoryConfig struct {
	Enabled bool `toml:"enabled"` // Record opened folders
	Limit   int  `toml:"limit,omitempty"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error, none
}

// NewDefaultConfig returns the built-in defaults applied before any config
// file is read.
func NewDefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Enabled: true,
			Limit:   DefaultHistoryLimit,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// TerminalPreference returns the terminal override carried by the config.
func (c *Config) TerminalPreference() Preference {
	return Preference{
		Binary: c.Terminal.Binary,
		Args:   c.Terminal.Args,
	}
}

// HistoryLimit returns the configured history cap, falling back to the
// default when the value is missing or nonsensical.
func (c *Config) HistoryLimit() int {
	if c.History.Limit <= 0 {
		return DefaultHistoryLimit
	}
	return c.History.Limit
}

// RenderConfigTemplate renders the commented starter config written by
// `termhere config init`, with the built-in defaults filled in.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
