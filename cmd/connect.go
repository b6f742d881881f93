package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abcdlsj/devcon/internal/connect"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Open a shell in the matching running devcontainer",
	Long: `Find running containers that match the saved profile and attach the
terminal to the best one. A single exact match connects immediately;
anything ambiguous is offered as a choice.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return connect.Run(cmd.Context(), devDir)
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
}
