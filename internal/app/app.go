package app

import (
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	ShowConfig   *usecase.ShowConfig
	SetConfig    *usecase.SetConfig
	RemoveConfig *usecase.RemoveConfig
	ListNetworks *usecase.ListNetworks
	ShowNetwork  *usecase.ShowNetwork
	CheckEnv     *usecase.CheckEnv
	ExportConfig *usecase.ExportConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
	listNetworks *usecase.ListNetworks,
	showNetwork *usecase.ShowNetwork,
	checkEnv *usecase.CheckEnv,
	exportConfig *usecase.ExportConfig,
) (*App, error) {
	return &App{
		Config:       cfg,
		ShowConfig:   showConfig,
		SetConfig:    setConfig,
		RemoveConfig: removeConfig,
		ListNetworks: listNetworks,
		ShowNetwork:  showNetwork,
		CheckEnv:     checkEnv,
		ExportConfig: exportConfig,
	}, nil
}
