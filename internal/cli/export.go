package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/toolcfg/internal/cli/render"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		format         string
		output         string
		includeSecrets bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the config in the layout the toolchain reads",
		Long: `Export the resolved configuration using the toolchain's key names
(networks, solidity, paths, etherscan, mocha).

Secrets are masked unless --include-secrets is given. Files are written
with 0600 permissions.

Examples:
  toolcfg export
  toolcfg export --format yaml --output build/toolchain.yaml
  toolcfg export --include-secrets --output .toolcfg/toolchain.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if format == "" {
				format = app.Config.Format
			}
			exportFormat, err := usecase.ParseExportFormat(format)
			if err != nil {
				return err
			}

			result, err := app.ExportConfig.Run(cmd.Context(), usecase.ExportParams{
				Format:         exportFormat,
				Output:         output,
				IncludeSecrets: includeSecrets,
			})
			if err != nil {
				return err
			}

			return render.NewExportRenderer(cmd.OutOrStdout()).RenderExport(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml (defaults to the local format setting, then json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout (relative to the project root)")
	cmd.Flags().BoolVar(&includeSecrets, "include-secrets", false, "Write private keys and API keys unmasked")

	return cmd
}
