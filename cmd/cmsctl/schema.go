package main

import (
	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage the CMS tables",
	Long:  `Create, verify and drop the CMS tables.`,
	RunE:  requireSubcommand,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
