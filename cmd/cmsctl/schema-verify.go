package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cms-in-go/pkg/schema"
)

// schemaVerifyCmd represents the schema verify command
var schemaVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the tables match the models",
	Long: `Check that every table, column, foreign key and unique index
declared by the models exists.

Example:
  cmsctl schema verify`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			if err := schema.Verify(ctx, s.db); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return err
		})
	},
}

func init() {
	schemaCmd.AddCommand(schemaVerifyCmd)
}
