//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/toolcfg/internal/adapters"
	"github.com/trebuchet-org/toolcfg/internal/config"
	"github.com/trebuchet-org/toolcfg/internal/logging"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,
		usecase.NewListNetworks,
		usecase.NewShowNetwork,
		usecase.NewCheckEnv,
		usecase.NewExportConfig,

		// App
		NewApp,
	)
	return nil, nil
}
