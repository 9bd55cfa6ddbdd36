package usecase

import (
	"context"

	"github.com/termhere/termhere/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Dir    string // Directory for the project config file
	Global bool   // If true, initialize the global config instead
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig writes a starter configuration file.
type InitConfig struct {
	manager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(manager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		manager: manager,
	}
}

// Execute creates a configuration file with the commented default template.
// Returns domain.ErrConfigExists when the target file is already there.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	cfg := domain.NewDefaultConfig()

	var path string
	var err error
	if in.Global {
		path, err = uc.manager.InitGlobal(cfg)
	} else {
		path, err = uc.manager.InitProject(in.Dir, cfg)
	}
	if err != nil {
		return nil, err
	}

	return &InitConfigOutput{Path: path}, nil
}
