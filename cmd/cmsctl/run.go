package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/cms-in-go/pkg/audit"
	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
	"github.com/doodlesbykumbi/cms-in-go/pkg/runner"
	"github.com/doodlesbykumbi/cms-in-go/pkg/schema"
	"github.com/doodlesbykumbi/cms-in-go/pkg/seed"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Synchronize, seed and query the CMS schema",
	Long: `Run the whole script: connect, recreate every table, insert the
reference data set and print the association queries.

Synchronizing drops existing tables, so every run starts from an empty
schema.

Example:
  cmsctl run
  cmsctl run --skip-sync --skip-seed --output markdown`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		skipSync, _ := cmd.Flags().GetBool("skip-sync")
		skipSeed, _ := cmd.Flags().GetBool("skip-seed")

		return withSession(cmd, func(ctx context.Context, s *session) error {
			var fixtures *seed.Fixtures
			if !skipSeed {
				var err error
				if fixtures, err = s.fixtures(); err != nil {
					return err
				}
			}
			if !skipSync {
				if err := syncSchema(ctx, s); err != nil {
					return err
				}
			}
			if fixtures != nil {
				if _, err := seedFixtures(ctx, s, fixtures); err != nil {
					return err
				}
			}
			return runQueries(ctx, s)
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("skip-sync", false, "Keep the existing tables")
	runCmd.Flags().Bool("skip-seed", false, "Do not insert the fixtures")
	runCmd.Flags().StringP("output", "o", "", "Report format (text, yaml, markdown or html)")
}

func syncSchema(ctx context.Context, s *session) error {
	s.printer.Section("Start Synchronizing")
	err := schema.Sync(ctx, s.db)
	s.audit.Log(schemaEvent("sync", err))
	if err != nil {
		return err
	}
	s.printer.Section("All models were synchronized successfully.")
	return nil
}

func seedFixtures(ctx context.Context, s *session, fixtures *seed.Fixtures) (*seed.Result, error) {
	result, err := seed.New(s.stores, s.printer).Seed(ctx, fixtures)

	event := audit.SeedEvent{Source: s.fixturesSource(), Success: err == nil}
	if result != nil {
		event.Users = len(result.Users)
		event.Roles = len(result.Roles)
		event.Content = len(result.Content)
		event.Comments = result.Comments
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	s.audit.Log(event)
	return result, err
}

func schemaEvent(operation string, err error) audit.SchemaEvent {
	event := audit.SchemaEvent{Operation: operation, Tables: model.TableNames(), Success: err == nil}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	return event
}

func runQueries(ctx context.Context, s *session) error {
	cutoff, err := s.cfg.Cutoff()
	if err != nil {
		return err
	}
	log.Printf("Listing secrets expiring before %s", cutoff.Format("2006-01-02"))
	return runner.New(s.stores, s.printer, runner.Options{Cutoff: cutoff}).Run(ctx)
}
