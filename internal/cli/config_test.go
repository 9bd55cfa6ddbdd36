package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termhere/termhere/internal/domain"
)

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	c, _ := newTestContainer(domain.PlatformLinux)

	stdout, _, err := execute(c, "config")

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "show")
	assert.Contains(t, output, "init")
	assert.Contains(t, output, "edit")
	assert.Contains(t, output, "path")
}

func TestConfigShowCommand_DisplaysEffectiveConfig(t *testing.T) {
	c, m := newTestContainer(domain.PlatformLinux)
	m.manager.GlobalConfigInfo = domain.ConfigInfo{
		Path:   "/home/test/.config/termhere/config.toml",
		Exists: true,
	}
	m.manager.ProjectConfigInfo = domain.ConfigInfo{
		Path:   "/work/proj/.termhere.toml",
		Exists: false,
	}
	m.loader.Config.Terminal.Binary = "kitty"

	stdout, _, err := execute(c, "config", "show")

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "[Loaded from]")
	assert.Contains(t, output, "- /home/test/.config/termhere/config.toml")
	assert.Contains(t, output, "- /work/proj/.termhere.toml (not found)")
	assert.Contains(t, output, "[Effective Config]")
	assert.Contains(t, output, "[terminal]")
	assert.Contains(t, output, "kitty")
	assert.Contains(t, output, "enabled = true")
}

func TestConfigInitCommand_CreatesProjectConfig(t *testing.T) {
	c, m := newTestContainer(domain.PlatformLinux)
	m.manager.ProjectConfigInfo.Path = "/work/proj/.termhere.toml"

	stdout, _, err := execute(c, "config", "init")

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Created config file: /work/proj/.termhere.toml")
	assert.True(t, m.manager.InitProjectCalled)
	assert.False(t, m.manager.InitGlobalCalled)
}

func TestConfigInitCommand_WithGlobalFlag(t *testing.T) {
	c, m := newTestContainer(domain.PlatformLinux)
	m.manager.GlobalConfigInfo.Path = "/home/test/.config/termhere/config.toml"

	stdout, _, err := execute(c, "config", "init", "--global")

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Created config file:")
	assert.True(t, m.manager.InitGlobalCalled)
	assert.False(t, m.manager.InitProjectCalled)
}

func TestConfigInitCommand_ErrorIfFileExists(t *testing.T) {
	c, m := newTestContainer(domain.PlatformLinux)
	m.manager.InitProjectErr = domain.ErrConfigExists

	_, _, err := execute(c, "config", "init")

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestConfigEditCommand_OpensExistingConfig(t *testing.T) {
	originalFunc := openEditorFunc
	defer func() { openEditorFunc = originalFunc }()

	var edited string
	openEditorFunc = func(path string) error {
		edited = path
		return nil
	}

	c, m := newTestContainer(domain.PlatformLinux)
	m.manager.GlobalConfigInfo = domain.ConfigInfo{
		Path:   "/home/test/.config/termhere/config.toml",
		Exists: true,
	}

	_, _, err := execute(c, "config", "edit")

	require.NoError(t, err)
	assert.Equal(t, "/home/test/.config/termhere/config.toml", edited)
	assert.False(t, m.manager.InitGlobalCalled)
}

func TestConfigEditCommand_CreatesMissingConfigFirst(t *testing.T) {
	originalFunc := openEditorFunc
	defer func() { openEditorFunc = originalFunc }()

	var edited string
	openEditorFunc = func(path string) error {
		edited = path
		return nil
	}

	c, m := newTestContainer(domain.PlatformLinux)
	m.manager.GlobalConfigInfo = domain.ConfigInfo{
		Path:   "/home/test/.config/termhere/config.toml",
		Exists: false,
	}

	stdout, _, err := execute(c, "config", "edit")

	require.NoError(t, err)
	assert.True(t, m.manager.InitGlobalCalled)
	assert.Contains(t, stdout.String(), "Created config file:")
	assert.Equal(t, "/home/test/.config/termhere/config.toml", edited)
}

func TestConfigPathCommand_PrintsLocations(t *testing.T) {
	c, m := newTestContainer(domain.PlatformLinux)
	m.manager.GlobalConfigInfo = domain.ConfigInfo{
		Path:   "/home/test/.config/termhere/config.toml",
		Exists: true,
	}
	m.manager.ProjectConfigInfo = domain.ConfigInfo{
		Path:   "/work/proj/.termhere.toml",
		Exists: false,
	}

	stdout, _, err := execute(c, "config", "path")

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "global: /home/test/.config/termhere/config.toml")
	assert.Contains(t, output, "project: /work/proj/.termhere.toml (not found)")
}
