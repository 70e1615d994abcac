package main

import (
	"github.com/spf13/cobra"
)

// configurationCmd represents the configuration command
var configurationCmd = &cobra.Command{
	Use:   "configuration",
	Short: "Inspect cmsctl configuration",
	Long:  `Inspect cmsctl configuration settings.`,
	RunE:  requireSubcommand,
}

func init() {
	rootCmd.AddCommand(configurationCmd)
}
