package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestProject(t *testing.T) string {
	t.Helper()

	t.Setenv("TEST_PRIVATE_KEY", "")
	t.Setenv("API_KEY", "")
	color.NoColor = true

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hardhat.config.ts"), []byte("export default {}\n"), 0644))
	return dir
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "toolcfg version")
}

func TestNetworksCmdJSON(t *testing.T) {
	dir := newTestProject(t)

	out, err := runCmd(t, "--project-root", dir, "--json", "networks")
	require.NoError(t, err)

	var result struct {
		Networks []struct {
			Name     string `json:"name"`
			URL      string `json:"url"`
			Accounts int    `json:"accountCount"`
		} `json:"networks"`
		Probed bool `json:"probed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Networks, 3)
	assert.Equal(t, "localhost", result.Networks[0].Name)
	assert.Equal(t, "https://bsc-dataseed.binance.org/", result.Networks[1].URL)
	assert.Zero(t, result.Networks[2].Accounts)
	assert.False(t, result.Probed)
}

func TestExportCmdWritesFile(t *testing.T) {
	dir := newTestProject(t)

	out, err := runCmd(t, "--project-root", dir, "export", "--format", "yaml", "--output", "build/toolchain.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported yaml config")

	path := filepath.Join(dir, "build", "toolchain.yaml")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "networks")
	assert.Contains(t, decoded, "mocha")
}

func TestExportCmdMaskedFileNotice(t *testing.T) {
	dir := newTestProject(t)
	t.Setenv("TEST_PRIVATE_KEY", "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d")

	out, err := runCmd(t, "--project-root", dir, "export", "--output", "toolchain.json")
	require.NoError(t, err)
	assert.Contains(t, out, "pass --include-secrets")

	out, err = runCmd(t, "--project-root", dir, "export", "--output", "toolchain.json", "--include-secrets")
	require.NoError(t, err)
	assert.NotContains(t, out, "pass --include-secrets")

	data, err := os.ReadFile(filepath.Join(dir, "toolchain.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d")
}

func TestExportCmdRejectsUnknownFormat(t *testing.T) {
	dir := newTestProject(t)

	_, err := runCmd(t, "--project-root", dir, "export", "--format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestConfigSetThenNetworkShow(t *testing.T) {
	dir := newTestProject(t)

	out, err := runCmd(t, "--project-root", dir, "config", "set", "network", "bsc_testnet")
	require.NoError(t, err)
	assert.Contains(t, out, "Set network to: bsc_testnet")
	assert.FileExists(t, filepath.Join(dir, ".toolcfg", "config.local.json"))

	out, err = runCmd(t, "--project-root", dir, "--json", "network", "show")
	require.NoError(t, err)

	var status struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, "bsc_testnet", status.Name)
	assert.Equal(t, "https://data-seed-prebsc-2-s2.binance.org:8545", status.URL)
}

func TestConfigSetRejectsUnknownNetwork(t *testing.T) {
	dir := newTestProject(t)

	_, err := runCmd(t, "--project-root", dir, "config", "set", "network", "polygon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "polygon")
	assert.NoFileExists(t, filepath.Join(dir, ".toolcfg", "config.local.json"))
}

func TestNetworkShowUnknownSuggests(t *testing.T) {
	dir := newTestProject(t)

	_, err := runCmd(t, "--project-root", dir, "--non-interactive", "network", "show", "bsctest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean")
	assert.Contains(t, err.Error(), "bsc_testnet")
}

func TestNetworkShowNonInteractiveWithoutName(t *testing.T) {
	dir := newTestProject(t)

	_, err := runCmd(t, "--project-root", dir, "--non-interactive", "network", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no network specified")
}

func TestBindGlobalFlagsOnlyChanged(t *testing.T) {
	dir := newTestProject(t)

	out, err := runCmd(t, "--project-root", dir, "--json", "--network", "localhost", "network", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "localhost"`)
}
