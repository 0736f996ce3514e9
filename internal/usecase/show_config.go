package usecase

import (
	"context"

	"github.com/runoshun/deskfolio/internal/domain"
)

// ShowConfigInput contains the parameters for showing configuration.
type ShowConfigInput struct{}

// ShowConfigOutput contains the result of showing configuration.
type ShowConfigOutput struct {
	Effective *domain.Config
	Global    domain.ConfigInfo
	Local     domain.ConfigInfo
}

// ShowConfig is the use case for displaying configuration files.
type ShowConfig struct {
	manager domain.ConfigManager
	loader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(manager domain.ConfigManager, loader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		manager: manager,
		loader:  loader,
	}
}

// Execute returns the configuration files and the effective merged config.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.loader.Load()
	if err != nil {
		return nil, err
	}
	return &ShowConfigOutput{
		Global:    uc.manager.GlobalConfigInfo(),
		Local:     uc.manager.LocalConfigInfo(),
		Effective: cfg,
	}, nil
}
