package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// OverrideFileName is the optional per-project override file
const OverrideFileName = "toolcfg.toml"

// LoadOptions controls how the project configuration is assembled
type LoadOptions struct {
	ProjectRoot string
	// Env defaults to the process environment
	Env Environment
	// OverrideFile defaults to toolcfg.toml in ProjectRoot. A missing default
	// file is not an error, a missing explicit one is.
	OverrideFile string
	SkipDotEnv   bool
	// Logger receives dotenv warnings; defaults to slog.Default()
	Logger *slog.Logger
}

// LoadResult is the frozen configuration plus the inputs it came from
type LoadResult struct {
	Project *config.ProjectConfig
	Sources config.ConfigSources
	// Env is the environment the configuration was resolved against
	Env Environment
}

// Load builds the project configuration once: defaults, then the override
// file, then credentials resolved from the environment.
func Load(opts LoadOptions) (*LoadResult, error) {
	var env Environment = OSEnvironment{}
	if opts.Env != nil {
		env = opts.Env
	}

	sources := config.ConfigSources{EnvFiles: []string{}}

	if !opts.SkipDotEnv && opts.ProjectRoot != "" {
		dotenv, files := ReadDotEnv(opts.ProjectRoot, opts.Logger)
		env = LayeredEnvironment{Primary: env, Fallback: dotenv}
		sources.EnvFiles = files
	}

	settings := DefaultSettings()

	overridePath, explicit := opts.OverrideFile, opts.OverrideFile != ""
	if !explicit && opts.ProjectRoot != "" {
		overridePath = filepath.Join(opts.ProjectRoot, OverrideFileName)
	}
	if overridePath != "" {
		file, err := ReadOverrideFile(overridePath)
		switch {
		case err == nil:
			if err := file.Apply(&settings, env); err != nil {
				return nil, fmt.Errorf("failed to apply %s: %w", overridePath, err)
			}
			sources.OverrideFile = overridePath
		case IsNotExist(err) && !explicit:
			// optional
		default:
			return nil, err
		}
	}

	ResolveCredentials(&settings, env)

	if err := Validate(settings); err != nil {
		return nil, err
	}

	return &LoadResult{
		Project: config.NewProjectConfig(settings),
		Sources: sources,
		Env:     env,
	}, nil
}

// Defaults returns the built-in configuration resolved against env
func Defaults(env Environment) *config.ProjectConfig {
	settings := DefaultSettings()
	ResolveCredentials(&settings, env)
	return config.NewProjectConfig(settings)
}

// DefaultSettings returns the built-in configuration with credentials unresolved
func DefaultSettings() config.ProjectSettings {
	return config.ProjectSettings{
		Networks: []config.Network{
			{
				Name: config.NetworkLocalhost,
				URL:  "http://127.0.0.1:8545",
			},
			{
				Name:                       config.NetworkBSCMainnet,
				URL:                        "https://bsc-dataseed.binance.org/",
				AccountsEnv:                config.EnvPrivateKey,
				AllowUnlimitedContractSize: true,
			},
			{
				Name:                       config.NetworkBSCTestnet,
				URL:                        "https://data-seed-prebsc-2-s2.binance.org:8545",
				AccountsEnv:                config.EnvPrivateKey,
				AllowUnlimitedContractSize: true,
			},
		},
		Solidity: config.CompilerConfig{
			Version: config.DefaultSolcVersion,
			Settings: config.CompilerSettings{
				EVMVersion: config.DefaultEVMVersion,
				Optimizer: config.OptimizerConfig{
					Enabled: config.DefaultOptimizerEnabled,
					Runs:    config.DefaultOptimizerRuns,
				},
			},
		},
		Paths: config.PathsConfig{
			Sources: config.DefaultSourcesPath,
			Tests:   config.DefaultTestsPath,
		},
		Etherscan: config.EtherscanConfig{
			APIKeyEnv: config.EnvExplorerAPIKey,
		},
		Mocha: config.MochaConfig{
			Timeout: config.DefaultTestTimeoutMs,
		},
	}
}

// AccountsFromEnv returns a single-element credential list when key holds a
// non-empty value, and an empty list otherwise.
func AccountsFromEnv(env Environment, key string) []string {
	if key == "" {
		return []string{}
	}
	if v, ok := env.LookupEnv(key); ok && v != "" {
		return []string{v}
	}
	return []string{}
}

// ResolveCredentials fills account lists and the explorer key from env
func ResolveCredentials(settings *config.ProjectSettings, env Environment) {
	for i := range settings.Networks {
		settings.Networks[i].Accounts = AccountsFromEnv(env, settings.Networks[i].AccountsEnv)
	}
	settings.Etherscan.APIKey = ""
	if key := settings.Etherscan.APIKeyEnv; key != "" {
		settings.Etherscan.APIKey, _ = env.LookupEnv(key)
	}
}
