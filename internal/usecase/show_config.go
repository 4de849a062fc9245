package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	ProjectRoot    string                 `json:"projectRoot"`
	Sources        config.ConfigSources   `json:"sources"`
	Config         config.ProjectSettings `json:"config"`
	DefaultNetwork string                 `json:"defaultNetwork,omitempty"`
	DefaultFormat  string                 `json:"defaultFormat,omitempty"`
	Secrets        bool                   `json:"-"`
}

// ShowConfigParams contains parameters for showing configuration
type ShowConfigParams struct {
	// IncludeSecrets leaves private keys and API keys unmasked
	IncludeSecrets bool
}

// ShowConfig is a use case for showing the resolved project configuration
type ShowConfig struct {
	cfg *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		cfg: cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context, params ShowConfigParams) (*ShowConfigResult, error) {
	if uc.cfg.Project == nil {
		return nil, fmt.Errorf("project configuration not loaded")
	}

	settings := uc.cfg.Project.Settings()
	if !params.IncludeSecrets {
		settings = MaskSettings(settings)
	}

	return &ShowConfigResult{
		ProjectRoot:    uc.cfg.ProjectRoot,
		Sources:        uc.cfg.Sources,
		Config:         settings,
		DefaultNetwork: uc.cfg.Network,
		DefaultFormat:  uc.cfg.Format,
		Secrets:        params.IncludeSecrets,
	}, nil
}
