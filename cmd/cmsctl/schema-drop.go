package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cms-in-go/pkg/schema"
)

// schemaDropCmd represents the schema drop command
var schemaDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop every table",
	Long: `Drop every CMS table and its rows.

Example:
  cmsctl schema drop --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to drop tables without --yes")
		}

		return withSession(cmd, func(ctx context.Context, s *session) error {
			err := schema.Drop(ctx, s.db)
			s.audit.Log(schemaEvent("drop", err))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "All tables dropped")
			return err
		})
	},
}

func init() {
	schemaCmd.AddCommand(schemaDropCmd)
	schemaDropCmd.Flags().Bool("yes", false, "Confirm dropping the tables")
}
