package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/toolcfg/internal/cli/render"
)

// NewEnvCmd creates the env command
func NewEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Check the environment variables the config reads",
		Long: `Report whether each environment variable the configuration reads is set.
Values are masked. Variables come from the process environment, then
.env and .env.local in the project root.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckEnv.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), result)
			}
			return render.NewEnvRenderer(cmd.OutOrStdout()).RenderEnv(result)
		},
	}
}
