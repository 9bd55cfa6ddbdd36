package usecase

import (
	"context"

	"github.com/termhere/termhere/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	Dir string // Directory the project config is resolved against
}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	GlobalConfig    domain.ConfigInfo // Global config file info
	ProjectConfig   domain.ConfigInfo // Nearest project config file info
	EffectiveConfig *domain.Config    // Merged configuration for Dir
}

// ShowConfig displays configuration sources and the effective configuration.
type ShowConfig struct {
	loader  domain.ConfigLoader
	manager domain.ConfigManager
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(loader domain.ConfigLoader, manager domain.ConfigManager) *ShowConfig {
	return &ShowConfig{
		loader:  loader,
		manager: manager,
	}
}

// Execute retrieves configuration file information and the merged result.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	effective, err := uc.loader.Load(in.Dir)
	if err != nil {
		return nil, err
	}

	return &ShowConfigOutput{
		GlobalConfig:    uc.manager.GlobalInfo(),
		ProjectConfig:   uc.manager.ProjectInfo(in.Dir),
		EffectiveConfig: effective,
	}, nil
}
