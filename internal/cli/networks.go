package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/toolcfg/internal/cli/render"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Long: `List every configured network with its RPC URL and signer.

With --probe each endpoint is dialed to fetch its chain ID and head block.
Unreachable networks are reported per row and do not fail the command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Probe: probe})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout(), !color.NoColor).RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Dial each network and report chain ID and head block")

	return cmd
}

// NewNetworkCmd creates the network command
func NewNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Inspect a single network",
	}

	cmd.AddCommand(newNetworkShowCmd())

	return cmd
}

func newNetworkShowCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show one network",
		Long: `Show the URL, signer and contract size setting of one network.

The network is taken from the argument, then --network, then the local
default. Without any of those an interactive picker is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowNetworkParams{Probe: probe}
			if len(args) > 0 {
				params.Name = args[0]
			}

			status, err := app.ShowNetwork.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), status)
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout(), !color.NoColor).RenderNetwork(status)
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Dial the network and report chain ID and head block")

	return cmd
}
