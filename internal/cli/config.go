package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/toolcfg/internal/cli/render"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	var includeSecrets bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved project config and manage local defaults",
		Long: `Show the project configuration after defaults, toolcfg.toml, .env files
and the environment have been applied. Secrets are masked unless
--include-secrets is given.

Local defaults are stored in .toolcfg/config.local.json.

Available subcommands:
  config           Show resolved config
  config set       Set a local default
  config remove    Remove a local default`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default action is to show config
			return showConfig(cmd, includeSecrets)
		},
	}

	cmd.Flags().BoolVar(&includeSecrets, "include-secrets", false, "Show private keys and API keys unmasked")

	// Add subcommands
	cmd.AddCommand(NewConfigSetCmd())
	cmd.AddCommand(NewConfigRemoveCmd())

	return cmd
}

// NewConfigSetCmd creates the config set subcommand
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a local default",
		Long: `Set a local default in .toolcfg/config.local.json.
Available keys: network (net), format

Examples:
  toolcfg config set network bsc_testnet
  toolcfg config set format yaml`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SetConfig.Run(cmd.Context(), usecase.SetConfigParams{
				Key:   args[0],
				Value: args[1],
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result.UpdatedConfig)
			}
			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderSet(result)
		},
	}
}

// NewConfigRemoveCmd creates the config remove subcommand
func NewConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a local default",
		Long: `Remove a local default from .toolcfg/config.local.json.
Removing network makes single-network commands require an argument (or prompt).
Removing format reverts exports to json.

Examples:
  toolcfg config remove network
  toolcfg config remove format`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RemoveConfig.Run(cmd.Context(), usecase.RemoveConfigParams{
				Key: args[0],
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result.UpdatedConfig)
			}
			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderRemove(result)
		},
	}
}

// showConfig displays the current configuration
func showConfig(cmd *cobra.Command, includeSecrets bool) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ShowConfig.Run(cmd.Context(), usecase.ShowConfigParams{
		IncludeSecrets: includeSecrets,
	})
	if err != nil {
		return err
	}

	if app.Config.JSON {
		return render.RenderJSON(cmd.OutOrStdout(), result)
	}
	return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
}
