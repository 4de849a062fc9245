package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/toolcfg/internal/app"
	"github.com/trebuchet-org/toolcfg/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toolcfg",
		Short: "Project configuration for the smart contract toolchain",
		Long: `toolcfg resolves the smart contract toolchain configuration (networks,
compiler, paths, explorer key, test timeout) from built-in defaults, an optional
toolcfg.toml, .env files and the environment, and exports it for the toolchain.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := projectRootFromFlags(cmd)
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("project-root", "", "Project root (defaults to the nearest directory with toolcfg.toml or hardhat.config.*)")
	rootCmd.PersistentFlags().String("config", "", "Override file (defaults to <project-root>/toolcfg.toml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall command timeout (default 5m)")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., localhost, bsc_testnet)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "main"
	rootCmd.AddCommand(networksCmd)

	networkCmd := NewNetworkCmd()
	networkCmd.GroupID = "main"
	rootCmd.AddCommand(networkCmd)

	exportCmd := NewExportCmd()
	exportCmd.GroupID = "main"
	rootCmd.AddCommand(exportCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	envCmd := NewEnvCmd()
	envCmd.GroupID = "management"
	rootCmd.AddCommand(envCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func projectRootFromFlags(cmd *cobra.Command) (string, error) {
	if f := cmd.Flag("project-root"); f != nil && f.Changed {
		return f.Value.String(), nil
	}
	return config.FindProjectRoot()
}

// globalFlagKeys maps global flag names to viper keys
var globalFlagKeys = map[string]string{
	"project-root":    "project_root",
	"config":          "config",
	"debug":           "debug",
	"non-interactive": "non_interactive",
	"json":            "json",
	"timeout":         "timeout",
	"network":         "network",
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Visit only walks flags that were set on the command line
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := globalFlagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
