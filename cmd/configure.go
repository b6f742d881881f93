package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abcdlsj/devcon/internal/wizard"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Generate devcontainer.json and the connection profile",
	Long: `Run the interactive wizard: pick a container name, remote user,
devcontainer features and preinstalled packages, then write
devcontainer.json and the connection profile into the devcontainer
directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wizard.Run(cmd.Context(), devDir)
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
}
