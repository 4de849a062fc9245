package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

const testKey = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

func TestDefaultsCredentials(t *testing.T) {
	tests := []struct {
		name     string
		env      MapEnvironment
		expected []string
	}{
		{
			name:     "private key unset",
			env:      MapEnvironment{},
			expected: []string{},
		},
		{
			name:     "private key set",
			env:      MapEnvironment{config.EnvPrivateKey: testKey},
			expected: []string{testKey},
		},
		{
			name:     "private key set but empty",
			env:      MapEnvironment{config.EnvPrivateKey: ""},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults(tt.env)

			for _, name := range []string{config.NetworkBSCMainnet, config.NetworkBSCTestnet} {
				network, ok := cfg.Network(name)
				require.True(t, ok, name)
				assert.Equal(t, tt.expected, network.Accounts, name)
				assert.NotNil(t, network.Accounts, name)
			}

			local, ok := cfg.Network(config.NetworkLocalhost)
			require.True(t, ok)
			assert.Empty(t, local.Accounts)
		})
	}
}

func TestDefaultsLiterals(t *testing.T) {
	envs := []MapEnvironment{
		{},
		{config.EnvPrivateKey: testKey, config.EnvExplorerAPIKey: "explorer-key"},
		{"SOLC_VERSION": "0.8.20", "MOCHA_TIMEOUT": "1"},
	}

	for _, env := range envs {
		cfg := Defaults(env)

		assert.Equal(t, "0.7.5", cfg.Solidity().Version)
		assert.Equal(t, "berlin", cfg.Solidity().Settings.EVMVersion)
		assert.True(t, cfg.Solidity().Settings.Optimizer.Enabled)
		assert.Equal(t, 200, cfg.Solidity().Settings.Optimizer.Runs)
		assert.Equal(t, 3600000, cfg.Mocha().Timeout)
		assert.Equal(t, "./contracts", cfg.Paths().Sources)
		assert.Equal(t, "test", cfg.Paths().Tests)
	}
}

func TestDefaultsNetworks(t *testing.T) {
	cfg := Defaults(MapEnvironment{})

	assert.Equal(t, []string{"localhost", "bsc_mainnet", "bsc_testnet"}, cfg.NetworkNames())

	local, _ := cfg.Network(config.NetworkLocalhost)
	assert.Equal(t, "http://127.0.0.1:8545", local.URL)
	assert.False(t, local.AllowUnlimitedContractSize)
	assert.Empty(t, local.AccountsEnv)

	mainnet, _ := cfg.Network(config.NetworkBSCMainnet)
	assert.Equal(t, "https://bsc-dataseed.binance.org/", mainnet.URL)
	assert.True(t, mainnet.AllowUnlimitedContractSize)

	testnet, _ := cfg.Network(config.NetworkBSCTestnet)
	assert.Equal(t, "https://data-seed-prebsc-2-s2.binance.org:8545", testnet.URL)
	assert.True(t, testnet.AllowUnlimitedContractSize)
}

func TestDefaultsExplorerKey(t *testing.T) {
	assert.Empty(t, Defaults(MapEnvironment{}).Etherscan().APIKey)
	assert.Equal(t, "abc", Defaults(MapEnvironment{config.EnvExplorerAPIKey: "abc"}).Etherscan().APIKey)
}

func TestAccountsFromEnv(t *testing.T) {
	env := MapEnvironment{"PK": "0x01", "EMPTY": ""}

	assert.Equal(t, []string{"0x01"}, AccountsFromEnv(env, "PK"))
	assert.Equal(t, []string{}, AccountsFromEnv(env, "EMPTY"))
	assert.Equal(t, []string{}, AccountsFromEnv(env, "MISSING"))
	assert.Equal(t, []string{}, AccountsFromEnv(env, ""))
}

func TestLoad(t *testing.T) {
	t.Run("no project files uses defaults", func(t *testing.T) {
		root := t.TempDir()

		result, err := Load(LoadOptions{ProjectRoot: root, Env: MapEnvironment{}})
		require.NoError(t, err)

		assert.Empty(t, result.Sources.OverrideFile)
		assert.Empty(t, result.Sources.EnvFiles)
		assert.Len(t, result.Project.Networks(), 3)
	})

	t.Run("dotenv supplies the private key", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ".env", "TEST_PRIVATE_KEY="+testKey+"\nAPI_KEY=from-dotenv\n")

		result, err := Load(LoadOptions{ProjectRoot: root, Env: MapEnvironment{}})
		require.NoError(t, err)

		mainnet, _ := result.Project.Network(config.NetworkBSCMainnet)
		assert.Equal(t, []string{testKey}, mainnet.Accounts)
		assert.Equal(t, "from-dotenv", result.Project.Etherscan().APIKey)
		assert.Equal(t, []string{filepath.Join(root, ".env")}, result.Sources.EnvFiles)
	})

	t.Run("process environment wins over dotenv", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ".env", "API_KEY=from-dotenv\n")

		result, err := Load(LoadOptions{ProjectRoot: root, Env: MapEnvironment{"API_KEY": "from-shell"}})
		require.NoError(t, err)
		assert.Equal(t, "from-shell", result.Project.Etherscan().APIKey)
	})

	t.Run(".env.local overrides .env", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ".env", "API_KEY=base\n")
		writeFile(t, root, ".env.local", "API_KEY=local\n")

		result, err := Load(LoadOptions{ProjectRoot: root, Env: MapEnvironment{}})
		require.NoError(t, err)
		assert.Equal(t, "local", result.Project.Etherscan().APIKey)
		assert.Len(t, result.Sources.EnvFiles, 2)
	})

	t.Run("malformed dotenv is skipped with a warning", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ".env", "TEST_PRIVATE_KEY="+testKey+"\nthis line is not an assignment\n")
		writeFile(t, root, ".env.local", "API_KEY=local\n")

		var logs bytes.Buffer
		result, err := Load(LoadOptions{
			ProjectRoot: root,
			Env:         MapEnvironment{},
			Logger:      slog.New(slog.NewTextHandler(&logs, nil)),
		})
		require.NoError(t, err)

		mainnet, ok := result.Project.Network(config.NetworkBSCMainnet)
		require.True(t, ok)
		assert.Empty(t, mainnet.Accounts)
		assert.Equal(t, "local", result.Project.Etherscan().APIKey)
		assert.Equal(t, []string{filepath.Join(root, ".env.local")}, result.Sources.EnvFiles)
		assert.Equal(t, config.DefaultSolcVersion, result.Project.Solidity().Version)

		assert.Contains(t, logs.String(), "level=WARN")
		assert.Contains(t, logs.String(), filepath.Join(root, ".env"))
		assert.NotContains(t, logs.String(), testKey)
	})

	t.Run("skip dotenv", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ".env", "API_KEY=from-dotenv\n")

		result, err := Load(LoadOptions{ProjectRoot: root, Env: MapEnvironment{}, SkipDotEnv: true})
		require.NoError(t, err)
		assert.Empty(t, result.Project.Etherscan().APIKey)
	})

	t.Run("missing explicit override file fails", func(t *testing.T) {
		root := t.TempDir()

		_, err := Load(LoadOptions{
			ProjectRoot:  root,
			Env:          MapEnvironment{},
			OverrideFile: filepath.Join(root, "missing.toml"),
		})
		require.Error(t, err)
		assert.True(t, IsNotExist(err))
	})

	t.Run("invalid override fails validation", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, OverrideFileName, "[mocha]\ntimeout = 0\n")

		_, err := Load(LoadOptions{ProjectRoot: root, Env: MapEnvironment{}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
		assert.Contains(t, err.Error(), "mocha.timeout")
	})
}

func TestProjectConfigIsImmutable(t *testing.T) {
	cfg := Defaults(MapEnvironment{config.EnvPrivateKey: testKey})

	network, _ := cfg.Network(config.NetworkBSCMainnet)
	network.Accounts[0] = "tampered"
	network.URL = "http://evil"

	networks := cfg.Networks()
	networks[1].Accounts = append(networks[1].Accounts, "extra")

	settings := cfg.Settings()
	settings.Networks[2].Accounts[0] = "tampered"
	settings.Solidity.Version = "0.8.0"

	again, _ := cfg.Network(config.NetworkBSCMainnet)
	assert.Equal(t, []string{testKey}, again.Accounts)
	assert.Equal(t, "https://bsc-dataseed.binance.org/", again.URL)
	testnet, _ := cfg.Network(config.NetworkBSCTestnet)
	assert.Equal(t, []string{testKey}, testnet.Accounts)
	assert.Equal(t, "0.7.5", cfg.Solidity().Version)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}
