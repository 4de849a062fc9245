package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/trebuchet-org/toolcfg/internal/domain/config"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the resolved project configuration
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	cfg := result.Config

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("📋 Project config:"))
	fmt.Fprintf(r.out, "Project root: %s\n", result.ProjectRoot)
	if result.Sources.OverrideFile != "" {
		fmt.Fprintf(r.out, "Override:     %s\n", getRelativePath(result.Sources.OverrideFile))
	}
	if len(result.Sources.EnvFiles) > 0 {
		files := make([]string, len(result.Sources.EnvFiles))
		for i, f := range result.Sources.EnvFiles {
			files[i] = getRelativePath(f)
		}
		fmt.Fprintf(r.out, "Env files:    %s\n", strings.Join(files, ", "))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("🌐 Networks:"))
	for _, n := range cfg.Networks {
		fmt.Fprintf(r.out, "  %s  %s\n", nameStyle.Sprint(n.Name), n.URL)
		if n.AccountsEnv != "" {
			accounts := labelStyle.Sprintf("none (%s not set)", n.AccountsEnv)
			if len(n.Accounts) > 0 {
				accounts = strings.Join(n.Accounts, ", ")
			}
			fmt.Fprintf(r.out, "    accounts: %s\n", accounts)
		}
		if n.AllowUnlimitedContractSize {
			fmt.Fprintln(r.out, "    allowUnlimitedContractSize: true")
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("🔧 Compiler:"))
	fmt.Fprintf(r.out, "  version:    %s\n", cfg.Solidity.Version)
	fmt.Fprintf(r.out, "  evmVersion: %s\n", cfg.Solidity.Settings.EVMVersion)
	fmt.Fprintf(r.out, "  optimizer:  enabled=%t runs=%d\n",
		cfg.Solidity.Settings.Optimizer.Enabled, cfg.Solidity.Settings.Optimizer.Runs)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("📁 Paths:"))
	fmt.Fprintf(r.out, "  sources: %s\n", cfg.Paths.Sources)
	fmt.Fprintf(r.out, "  tests:   %s\n", cfg.Paths.Tests)

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Etherscan API key: %s\n", orNotSet(cfg.Etherscan.APIKey))
	fmt.Fprintf(r.out, "Test timeout:      %s\n", cfg.Mocha.TimeoutDuration())

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("⚙️  Local defaults:"))
	fmt.Fprintf(r.out, "  network: %s\n", orNotSet(result.DefaultNetwork))
	fmt.Fprintf(r.out, "  format:  %s\n", orNotSet(result.DefaultFormat))

	if !result.Secrets {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, labelStyle.Sprint("Secrets are masked; pass --include-secrets to show them."))
	}

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set %s to: %s", result.Key, result.Value)))
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyNetwork:
		fmt.Fprintln(r.out, FormatSuccess("Removed network from config (will be required as argument or prompted)"))
	case config.ConfigKeyFormat:
		fmt.Fprintln(r.out, FormatSuccess("Reset format to: json"))
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
