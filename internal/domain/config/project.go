package config

import (
	"encoding/json"
	"slices"
	"time"
)

// Well-known network names
const (
	NetworkLocalhost  = "localhost"
	NetworkBSCMainnet = "bsc_mainnet"
	NetworkBSCTestnet = "bsc_testnet"
)

// Environment variables read while building the project configuration
const (
	EnvPrivateKey     = "TEST_PRIVATE_KEY" //nolint:gosec // variable name, not a secret
	EnvExplorerAPIKey = "API_KEY"
)

// Literal defaults of the project configuration
const (
	DefaultSolcVersion      = "0.7.5"
	DefaultEVMVersion       = "berlin"
	DefaultOptimizerEnabled = true
	DefaultOptimizerRuns    = 200
	DefaultSourcesPath      = "./contracts"
	DefaultTestsPath        = "test"
	DefaultTestTimeoutMs    = 3600000
)

// Network is a named target chain with its connection parameters
type Network struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	// AccountsEnv names the variable the signing key is read from.
	// Empty means the network never carries a credential list.
	AccountsEnv                string   `json:"accountsEnv,omitempty" yaml:"accountsEnv,omitempty"`
	Accounts                   []string `json:"accounts" yaml:"accounts"`
	AllowUnlimitedContractSize bool     `json:"allowUnlimitedContractSize" yaml:"allowUnlimitedContractSize"`
}

// HasAccounts reports whether the network can sign transactions
func (n Network) HasAccounts() bool {
	return len(n.Accounts) > 0
}

// ReadOnly reports whether the network is usable for reads only
func (n Network) ReadOnly() bool {
	return !n.HasAccounts()
}

func (n Network) clone() Network {
	n.Accounts = slices.Clone(n.Accounts)
	if n.Accounts == nil {
		n.Accounts = []string{}
	}
	return n
}

// OptimizerConfig controls the bytecode optimizer stage
type OptimizerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}

// CompilerSettings are the settings handed to the compiler
type CompilerSettings struct {
	EVMVersion string          `json:"evmVersion" yaml:"evmVersion"`
	Optimizer  OptimizerConfig `json:"optimizer" yaml:"optimizer"`
}

// CompilerConfig selects the compiler release and its settings
type CompilerConfig struct {
	Version  string           `json:"version" yaml:"version"`
	Settings CompilerSettings `json:"settings" yaml:"settings"`
}

// PathsConfig maps logical roles to project directories
type PathsConfig struct {
	Sources string `json:"sources" yaml:"sources"`
	Tests   string `json:"tests" yaml:"tests"`
}

// EtherscanConfig holds the block-explorer verification credential
type EtherscanConfig struct {
	APIKey    string `json:"apiKey" yaml:"apiKey"`
	APIKeyEnv string `json:"apiKeyEnv,omitempty" yaml:"apiKeyEnv,omitempty"`
}

// MochaConfig holds test harness settings
type MochaConfig struct {
	Timeout int `json:"timeout" yaml:"timeout"` // milliseconds
}

// TimeoutDuration returns the harness timeout as a duration
func (m MochaConfig) TimeoutDuration() time.Duration {
	return time.Duration(m.Timeout) * time.Millisecond
}

// ProjectSettings is the mutable form of the configuration used while it is
// being assembled. Networks keep their declaration order.
type ProjectSettings struct {
	Networks  []Network       `json:"networks" yaml:"networks"`
	Solidity  CompilerConfig  `json:"solidity" yaml:"solidity"`
	Paths     PathsConfig     `json:"paths" yaml:"paths"`
	Etherscan EtherscanConfig `json:"etherscan" yaml:"etherscan"`
	Mocha     MochaConfig     `json:"mocha" yaml:"mocha"`
}

// Network returns a pointer to the named network for in-place edits
func (s *ProjectSettings) Network(name string) *Network {
	for i := range s.Networks {
		if s.Networks[i].Name == name {
			return &s.Networks[i]
		}
	}
	return nil
}

// ProjectConfig is the frozen configuration record. It is built once at
// startup and every accessor hands out copies.
type ProjectConfig struct {
	settings ProjectSettings
}

// NewProjectConfig freezes settings into a ProjectConfig
func NewProjectConfig(settings ProjectSettings) *ProjectConfig {
	return &ProjectConfig{settings: cloneSettings(settings)}
}

// Settings returns a deep copy of the underlying settings
func (c *ProjectConfig) Settings() ProjectSettings {
	return cloneSettings(c.settings)
}

// Networks returns all networks in declaration order
func (c *ProjectConfig) Networks() []Network {
	return cloneSettings(ProjectSettings{Networks: c.settings.Networks}).Networks
}

// NetworkNames returns network names in declaration order
func (c *ProjectConfig) NetworkNames() []string {
	names := make([]string, 0, len(c.settings.Networks))
	for _, n := range c.settings.Networks {
		names = append(names, n.Name)
	}
	return names
}

// Network looks up a network by name
func (c *ProjectConfig) Network(name string) (Network, bool) {
	for _, n := range c.settings.Networks {
		if n.Name == name {
			return n.clone(), true
		}
	}
	return Network{}, false
}

func (c *ProjectConfig) Solidity() CompilerConfig   { return c.settings.Solidity }
func (c *ProjectConfig) Paths() PathsConfig         { return c.settings.Paths }
func (c *ProjectConfig) Etherscan() EtherscanConfig { return c.settings.Etherscan }
func (c *ProjectConfig) Mocha() MochaConfig         { return c.settings.Mocha }

// MarshalJSON renders the frozen settings
func (c *ProjectConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.settings)
}

func cloneSettings(s ProjectSettings) ProjectSettings {
	out := s
	out.Networks = make([]Network, len(s.Networks))
	for i, n := range s.Networks {
		out.Networks[i] = n.clone()
	}
	return out
}
