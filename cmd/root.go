package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	devDir string

	rootCmd = &cobra.Command{
		Use:   "devcon",
		Short: "Configure and connect to devcontainers",
		Long: `Devcon generates devcontainer configurations interactively and connects
your terminal to the matching running container.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	log.SetReportTimestamp(true)
	log.SetTimeFormat("2006-01-02 15:04:05")

	rootCmd.PersistentFlags().StringVar(&devDir, "dir", ".devcontainer", "devcontainer directory")
}
