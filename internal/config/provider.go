package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
	"github.com/trebuchet-org/toolcfg/internal/logging"
)

// ProjectMarkers identify the root of a contract project
var ProjectMarkers = []string{
	OverrideFileName,
	"hardhat.config.ts",
	"hardhat.config.js",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	return ProviderWithEnv(v, OSEnvironment{})
}

// ProviderWithEnv is Provider with an explicit environment source
func ProviderWithEnv(v *viper.Viper, env Environment) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    absRoot,
		DataDir:        filepath.Join(absRoot, ".toolcfg"),
		Network:        v.GetString("network"),
		Format:         v.GetString("format"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		ProbeTimeout:   v.GetDuration("probe_timeout"),
	}

	result, err := Load(LoadOptions{
		ProjectRoot:  absRoot,
		Env:          env,
		OverrideFile: v.GetString("config"),
		Logger:       logging.NewLogger(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}
	cfg.Project = result.Project
	cfg.Sources = result.Sources
	cfg.Env = result.Env

	return cfg, nil
}

// FindProjectRoot walks up from the current directory looking for a project
// marker. Without one, the current directory is the root and defaults apply.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range ProjectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".toolcfg"))

	// Set up environment variables
	v.SetEnvPrefix("TOOLCFG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "5m")
	v.SetDefault("probe_timeout", "10s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return v
}
