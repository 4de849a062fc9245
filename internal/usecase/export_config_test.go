package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/toolcfg/internal/config"
	domainconfig "github.com/trebuchet-org/toolcfg/internal/domain/config"
	"gopkg.in/yaml.v3"
)

func TestExportConfig(t *testing.T) {
	t.Run("json layout matches the toolchain", func(t *testing.T) {
		uc := NewExportConfig(newRuntimeConfig(config.MapEnvironment{}), &memWriter{})

		result, err := uc.Run(context.Background(), ExportParams{Format: ExportFormatJSON})
		require.NoError(t, err)
		assert.Empty(t, result.Path)
		assert.False(t, result.SecretsMasked, "nothing to mask without credentials")

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(result.Data, &decoded))

		networks := decoded["networks"].(map[string]any)
		local := networks["localhost"].(map[string]any)
		assert.Equal(t, "http://127.0.0.1:8545", local["url"])
		assert.NotContains(t, local, "accounts")
		assert.NotContains(t, local, "allowUnlimitedContractSize")

		mainnet := networks["bsc_mainnet"].(map[string]any)
		assert.Equal(t, []any{}, mainnet["accounts"])
		assert.Equal(t, true, mainnet["allowUnlimitedContractSize"])

		solidity := decoded["solidity"].(map[string]any)
		assert.Equal(t, "0.7.5", solidity["version"])
		settings := solidity["settings"].(map[string]any)
		assert.Equal(t, "berlin", settings["evmVersion"])
		assert.Equal(t, map[string]any{"enabled": true, "runs": float64(200)}, settings["optimizer"])

		assert.Equal(t, map[string]any{"sources": "./contracts", "tests": "test"}, decoded["paths"])
		assert.Equal(t, map[string]any{}, decoded["etherscan"])
		assert.Equal(t, map[string]any{"timeout": float64(3600000)}, decoded["mocha"])
	})

	t.Run("secrets are masked unless requested", func(t *testing.T) {
		env := config.MapEnvironment{
			domainconfig.EnvPrivateKey:     testKey,
			domainconfig.EnvExplorerAPIKey: "ABCDEFGHIJKLMNOP",
		}
		uc := NewExportConfig(newRuntimeConfig(env), &memWriter{})

		masked, err := uc.Run(context.Background(), ExportParams{})
		require.NoError(t, err)
		assert.NotContains(t, string(masked.Data), testKey)
		assert.NotContains(t, string(masked.Data), "ABCDEFGHIJKLMNOP")
		assert.True(t, containsAll(string(masked.Data), "0x59c6…690d", "ABCD…MNOP"))
		assert.True(t, masked.SecretsMasked)

		full, err := uc.Run(context.Background(), ExportParams{IncludeSecrets: true})
		require.NoError(t, err)
		assert.True(t, containsAll(string(full.Data), testKey, "ABCDEFGHIJKLMNOP"))
		assert.False(t, full.SecretsMasked)
	})

	t.Run("yaml output written relative to project root", func(t *testing.T) {
		writer := &memWriter{}
		uc := NewExportConfig(newRuntimeConfig(config.MapEnvironment{}), writer)

		result, err := uc.Run(context.Background(), ExportParams{
			Format: ExportFormatYAML,
			Output: "build/toolchain.yaml",
		})
		require.NoError(t, err)
		assert.Equal(t, "/project/build/toolchain.yaml", result.Path)
		assert.Equal(t, []string{"/project/build"}, writer.dirs)
		require.Contains(t, writer.files, "/project/build/toolchain.yaml")

		var decoded ToolchainConfig
		require.NoError(t, yaml.Unmarshal(writer.files["/project/build/toolchain.yaml"], &decoded))
		assert.Equal(t, "0.7.5", decoded.Solidity.Version)
		assert.Equal(t, 3600000, decoded.Mocha.Timeout)
		require.NotNil(t, decoded.Networks["bsc_testnet"].Accounts)
		assert.Empty(t, *decoded.Networks["bsc_testnet"].Accounts)
		assert.Nil(t, decoded.Networks["localhost"].Accounts)
	})
}

func TestParseExportFormat(t *testing.T) {
	for in, want := range map[string]ExportFormat{
		"":     ExportFormatJSON,
		"JSON": ExportFormatJSON,
		"yaml": ExportFormatYAML,
		"yml":  ExportFormatYAML,
	} {
		got, err := ParseExportFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseExportFormat("toml")
	assert.Error(t, err)
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "****", MaskSecret("abcd"))
	assert.Equal(t, "0x**", MaskSecret("0x01"))
	assert.Equal(t, "0x59c6…690d", MaskSecret(testKey))

	masked := MaskSecret("ключ-секрет-апи")
	assert.True(t, utf8.ValidString(masked))
	assert.Equal(t, "ключ…-апи", masked)
	assert.Equal(t, "*****", MaskSecret("ключи"))
}

func TestCheckEnv(t *testing.T) {
	t.Run("reports unset variables", func(t *testing.T) {
		uc := NewCheckEnv(newRuntimeConfig(config.MapEnvironment{}))

		result, err := uc.Run(context.Background())
		require.NoError(t, err)

		require.Len(t, result.Variables, 2)
		pk := result.Variables[0]
		assert.Equal(t, domainconfig.EnvPrivateKey, pk.Name)
		assert.False(t, pk.Set)
		assert.Equal(t, []string{"networks.bsc_mainnet.accounts", "networks.bsc_testnet.accounts"}, pk.UsedBy)

		api := result.Variables[1]
		assert.Equal(t, domainconfig.EnvExplorerAPIKey, api.Name)
		assert.Equal(t, []string{"etherscan.apiKey"}, api.UsedBy)

		assert.Len(t, result.Missing(), 2)
	})

	t.Run("set values are masked and empty ones flagged", func(t *testing.T) {
		env := config.MapEnvironment{
			domainconfig.EnvPrivateKey:     testKey,
			domainconfig.EnvExplorerAPIKey: "",
		}
		uc := NewCheckEnv(newRuntimeConfig(env))

		result, err := uc.Run(context.Background())
		require.NoError(t, err)

		pk := result.Variables[0]
		assert.True(t, pk.Set)
		assert.False(t, pk.Empty)
		assert.Equal(t, "0x59c6…690d", pk.Masked)

		api := result.Variables[1]
		assert.True(t, api.Set)
		assert.True(t, api.Empty)

		missing := result.Missing()
		require.Len(t, missing, 1)
		assert.Equal(t, domainconfig.EnvExplorerAPIKey, missing[0].Name)
	})
}

func TestShowConfig(t *testing.T) {
	env := config.MapEnvironment{domainconfig.EnvPrivateKey: testKey}
	uc := NewShowConfig(newRuntimeConfig(env))

	masked, err := uc.Run(context.Background(), ShowConfigParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"0x59c6…690d"}, masked.Config.Networks[1].Accounts)
	assert.Equal(t, "/project", masked.ProjectRoot)

	full, err := uc.Run(context.Background(), ShowConfigParams{IncludeSecrets: true})
	require.NoError(t, err)
	assert.Equal(t, []string{testKey}, full.Config.Networks[1].Accounts)
}
