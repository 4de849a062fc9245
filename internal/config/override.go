package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// OverrideFile is the raw toolcfg.toml structure. Every field is optional;
// string values may reference ${VARS}.
type OverrideFile struct {
	Networks  map[string]NetworkOverride `toml:"networks"`
	Solidity  *SolidityOverride          `toml:"solidity"`
	Paths     *PathsOverride             `toml:"paths"`
	Etherscan *EtherscanOverride         `toml:"etherscan"`
	Mocha     *MochaOverride             `toml:"mocha"`

	// declaration order of [networks.*] tables
	order []string
}

type NetworkOverride struct {
	URL                        *string `toml:"url"`
	AccountsEnv                *string `toml:"accounts_env"`
	AllowUnlimitedContractSize *bool   `toml:"allow_unlimited_contract_size"`
}

type SolidityOverride struct {
	Version    *string            `toml:"version"`
	EVMVersion *string            `toml:"evm_version"`
	Optimizer  *OptimizerOverride `toml:"optimizer"`
}

type OptimizerOverride struct {
	Enabled *bool `toml:"enabled"`
	Runs    *int  `toml:"runs"`
}

type PathsOverride struct {
	Sources *string `toml:"sources"`
	Tests   *string `toml:"tests"`
}

type EtherscanOverride struct {
	APIKeyEnv *string `toml:"api_key_env"`
}

type MochaOverride struct {
	Timeout *int `toml:"timeout"`
}

// ReadOverrideFile decodes an override file. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func ReadOverrideFile(path string) (*OverrideFile, error) {
	var file OverrideFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := lo.Map(undecoded, func(k toml.Key, _ int) string { return k.String() })
		return nil, &ConfigKeysError{Path: path, Keys: keys}
	}

	// dotted keys repeat the network prefix once per field
	for _, key := range md.Keys() {
		if len(key) >= 2 && key[0] == "networks" {
			file.order = append(file.order, key[1])
		}
	}
	file.order = lo.Uniq(file.order)

	return &file, nil
}

// IsNotExist reports whether err means the override file is absent
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// ConfigKeysError lists unknown keys found in an override file
type ConfigKeysError struct {
	Path string
	Keys []string
}

func (e *ConfigKeysError) Error() string {
	return fmt.Sprintf("unknown keys in %s: %s", e.Path, strings.Join(e.Keys, ", "))
}

// Apply merges the override onto settings. Existing networks are updated in
// place, new ones are appended in file order.
func (f *OverrideFile) Apply(settings *config.ProjectSettings, env Environment) error {
	names := f.order
	if len(names) != len(f.Networks) {
		// decoded without ReadOverrideFile; fall back to sorted keys
		names = lo.Keys(f.Networks)
		slices.Sort(names)
	}

	for _, name := range names {
		override := f.Networks[name]
		network := settings.Network(name)
		if network == nil {
			if override.URL == nil {
				return &domain.ConfigFieldError{Field: "networks." + name + ".url", Reason: "required for new networks"}
			}
			settings.Networks = append(settings.Networks, config.Network{Name: name})
			network = &settings.Networks[len(settings.Networks)-1]
		}

		if override.URL != nil {
			network.URL = expand(*override.URL, env)
		}
		if override.AccountsEnv != nil {
			network.AccountsEnv = *override.AccountsEnv
		}
		if override.AllowUnlimitedContractSize != nil {
			network.AllowUnlimitedContractSize = *override.AllowUnlimitedContractSize
		}
	}

	if s := f.Solidity; s != nil {
		if s.Version != nil {
			settings.Solidity.Version = expand(*s.Version, env)
		}
		if s.EVMVersion != nil {
			settings.Solidity.Settings.EVMVersion = expand(*s.EVMVersion, env)
		}
		if o := s.Optimizer; o != nil {
			if o.Enabled != nil {
				settings.Solidity.Settings.Optimizer.Enabled = *o.Enabled
			}
			if o.Runs != nil {
				settings.Solidity.Settings.Optimizer.Runs = *o.Runs
			}
		}
	}

	if p := f.Paths; p != nil {
		if p.Sources != nil {
			settings.Paths.Sources = expand(*p.Sources, env)
		}
		if p.Tests != nil {
			settings.Paths.Tests = expand(*p.Tests, env)
		}
	}

	if e := f.Etherscan; e != nil && e.APIKeyEnv != nil {
		settings.Etherscan.APIKeyEnv = *e.APIKeyEnv
	}

	if m := f.Mocha; m != nil && m.Timeout != nil {
		settings.Mocha.Timeout = *m.Timeout
	}

	return nil
}
