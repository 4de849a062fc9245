package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting local configuration values
type SetConfig struct {
	cfg   *config.RuntimeConfig
	store LocalConfigStore
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(cfg *config.RuntimeConfig, store LocalConfigStore) *SetConfig {
	return &SetConfig{
		cfg:   cfg,
		store: store,
	}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key := strings.ToLower(params.Key)
	if !config.IsValidConfigKey(key) {
		return nil, unknownKeyError(params.Key)
	}
	normalizedKey := config.NormalizeConfigKey(key)

	value := params.Value
	switch normalizedKey {
	case config.ConfigKeyNetwork:
		if _, ok := uc.cfg.Project.Network(value); !ok {
			return nil, &domain.UnknownNetworkError{
				Name:        value,
				Suggestions: SuggestNetworks(value, uc.cfg.Project.NetworkNames()),
			}
		}
	case config.ConfigKeyFormat:
		format, err := ParseExportFormat(value)
		if err != nil {
			return nil, err
		}
		value = string(format)
	}

	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch normalizedKey {
	case config.ConfigKeyNetwork:
		local.Network = value
	case config.ConfigKeyFormat:
		local.Format = value
	}

	if err := uc.store.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: local,
		ConfigPath:    uc.store.GetPath(),
		Key:           normalizedKey,
		Value:         value,
	}, nil
}

func unknownKeyError(key string) error {
	validKeys := []string{}
	for _, k := range config.ValidConfigKeys() {
		if k == config.ConfigKeyNetwork {
			validKeys = append(validKeys, string(k)+" (net)")
		} else {
			validKeys = append(validKeys, string(k))
		}
	}
	return fmt.Errorf("unknown config key: %s\nAvailable keys: %s", key, strings.Join(validKeys, ", "))
}
