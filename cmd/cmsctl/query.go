package main

import (
	"context"

	"github.com/spf13/cobra"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run the association queries against a seeded schema",
	Long: `Print the association queries without touching the schema or
the data.

Example:
  cmsctl query
  cmsctl query --output html > report.html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			return runQueries(ctx, s)
		})
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringP("output", "o", "", "Report format (text, yaml, markdown or html)")
}
