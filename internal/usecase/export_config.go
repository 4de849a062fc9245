package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/toolcfg/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// ExportFormat selects the serialization used by ExportConfig
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatYAML ExportFormat = "yaml"
)

// ParseExportFormat validates a user-supplied format name
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return ExportFormatJSON, nil
	case "yaml", "yml":
		return ExportFormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want json or yaml)", s)
	}
}

// ExportParams contains parameters for exporting the configuration
type ExportParams struct {
	Format ExportFormat
	// Output is a file path; empty means the result is only returned
	Output         string
	IncludeSecrets bool
}

// ExportResult contains the rendered configuration
type ExportResult struct {
	Data   []byte
	Path   string
	Format ExportFormat
	// SecretsMasked is set when credentials were present but written masked
	SecretsMasked bool
}

// ToolchainConfig is the configuration in the key layout the toolchain reads
type ToolchainConfig struct {
	Networks  map[string]ToolchainNetwork `json:"networks" yaml:"networks"`
	Solidity  config.CompilerConfig       `json:"solidity" yaml:"solidity"`
	Paths     config.PathsConfig          `json:"paths" yaml:"paths"`
	Etherscan ToolchainEtherscan          `json:"etherscan" yaml:"etherscan"`
	Mocha     config.MochaConfig          `json:"mocha" yaml:"mocha"`
}

// ToolchainNetwork omits the credential list entirely for networks that
// never declare one, and emits [] for networks whose secret is absent.
type ToolchainNetwork struct {
	URL                        string    `json:"url" yaml:"url"`
	Accounts                   *[]string `json:"accounts,omitempty" yaml:"accounts,omitempty"`
	AllowUnlimitedContractSize *bool     `json:"allowUnlimitedContractSize,omitempty" yaml:"allowUnlimitedContractSize,omitempty"`
}

type ToolchainEtherscan struct {
	APIKey string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
}

// NewToolchainConfig maps settings onto the toolchain layout
func NewToolchainConfig(settings config.ProjectSettings) ToolchainConfig {
	out := ToolchainConfig{
		Networks:  make(map[string]ToolchainNetwork, len(settings.Networks)),
		Solidity:  settings.Solidity,
		Paths:     settings.Paths,
		Etherscan: ToolchainEtherscan{APIKey: settings.Etherscan.APIKey},
		Mocha:     settings.Mocha,
	}

	for _, n := range settings.Networks {
		network := ToolchainNetwork{URL: n.URL}
		if n.AccountsEnv != "" {
			accounts := append([]string{}, n.Accounts...)
			network.Accounts = &accounts
		}
		if n.AllowUnlimitedContractSize {
			allow := true
			network.AllowUnlimitedContractSize = &allow
		}
		out.Networks[n.Name] = network
	}

	return out
}

// ExportConfig renders the configuration for the toolchain
type ExportConfig struct {
	cfg    *config.RuntimeConfig
	writer FileWriter
}

// NewExportConfig creates a new ExportConfig use case
func NewExportConfig(cfg *config.RuntimeConfig, writer FileWriter) *ExportConfig {
	return &ExportConfig{
		cfg:    cfg,
		writer: writer,
	}
}

// Run executes the use case
func (uc *ExportConfig) Run(ctx context.Context, params ExportParams) (*ExportResult, error) {
	settings := uc.cfg.Project.Settings()
	masked := !params.IncludeSecrets && hasSecrets(settings)
	if !params.IncludeSecrets {
		settings = MaskSettings(settings)
	}

	format := params.Format
	if format == "" {
		format = ExportFormatJSON
	}

	data, err := encodeToolchainConfig(NewToolchainConfig(settings), format)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{Data: data, Format: format, SecretsMasked: masked}
	if params.Output == "" {
		return result, nil
	}

	path := params.Output
	if !filepath.IsAbs(path) {
		path = filepath.Join(uc.cfg.ProjectRoot, path)
	}
	if err := uc.writer.EnsureDirectory(ctx, filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := uc.writer.WriteFile(ctx, path, data); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	result.Path = path

	return result, nil
}

func encodeToolchainConfig(cfg ToolchainConfig, format ExportFormat) ([]byte, error) {
	switch format {
	case ExportFormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case ExportFormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
