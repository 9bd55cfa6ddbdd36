package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termhere/termhere/internal/domain"
	"github.com/termhere/termhere/internal/testutil"
	"github.com/termhere/termhere/internal/usecase"
)

func TestShowConfig_Execute(t *testing.T) {
	loader := testutil.NewMockConfigLoader()
	loader.Config.Terminal.Binary = "kitty"
	manager := testutil.NewMockConfigManager()
	manager.GlobalConfigInfo = domain.ConfigInfo{
		Path:    "/home/test/.config/termhere/config.toml",
		Content: "[terminal]\n",
		Exists:  true,
	}
	manager.ProjectConfigInfo = domain.ConfigInfo{
		Path:   "/work/proj/.termhere.toml",
		Exists: false,
	}

	uc := usecase.NewShowConfig(loader, manager)
	out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{Dir: "/work/proj"})

	require.NoError(t, err)
	assert.True(t, out.GlobalConfig.Exists)
	assert.Equal(t, "/home/test/.config/termhere/config.toml", out.GlobalConfig.Path)
	assert.False(t, out.ProjectConfig.Exists)
	assert.Equal(t, "kitty", out.EffectiveConfig.Terminal.Binary)
	assert.Equal(t, "/work/proj", loader.LoadedDir)
}

func TestShowConfig_Execute_LoadError(t *testing.T) {
	loader := testutil.NewMockConfigLoader()
	loader.LoadErr = errors.New("toml: invalid character")
	manager := testutil.NewMockConfigManager()

	uc := usecase.NewShowConfig(loader, manager)
	_, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

	assert.Error(t, err)
}
