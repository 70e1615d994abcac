package main

import (
	"context"

	"github.com/spf13/cobra"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the reference data set",
	Long: `Insert the users, secrets, permissions, roles, content and comments
of the fixtures file, or of the embedded data set when no file is
configured. The tables are recreated first unless --no-sync is given.

The ids assigned to the seeded rows are printed at the end.

Example:
  cmsctl seed
  CMS_FIXTURES_PATH=./fixtures.yaml cmsctl seed --no-sync`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		noSync, _ := cmd.Flags().GetBool("no-sync")

		return withSession(cmd, func(ctx context.Context, s *session) error {
			fixtures, err := s.fixtures()
			if err != nil {
				return err
			}
			if !noSync {
				if err := syncSchema(ctx, s); err != nil {
					return err
				}
			}
			result, err := seedFixtures(ctx, s, fixtures)
			if err != nil {
				return err
			}
			return s.printer.Dump(result)
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Bool("no-sync", false, "Insert into the existing tables")
	seedCmd.Flags().StringP("output", "o", "", "Report format (text, yaml, markdown or html)")
}
