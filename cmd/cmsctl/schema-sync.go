package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cms-in-go/pkg/schema"
)

// schemaSyncCmd represents the schema sync command
var schemaSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Drop and recreate every table",
	Long: `Drop and recreate every table, then verify the result.

All existing rows are lost.

Example:
  cmsctl schema sync`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			if err := syncSchema(ctx, s); err != nil {
				return err
			}
			return schema.Verify(ctx, s.db)
		})
	},
}

func init() {
	schemaCmd.AddCommand(schemaSyncCmd)
}
