package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// seedWatchCmd represents the seed watch command
var seedWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Reseed whenever a fixtures file is modified",
	Long: `Watch a fixtures file and, each time it is written, recreate the
tables and insert its contents.

A file that fails to parse or validate is reported and skipped; the
database keeps the previous data set.

Example:
  cmsctl seed watch ./fixtures.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := filepath.Clean(args[0])

		return withSession(cmd, func(ctx context.Context, s *session) error {
			s.cfg.FixturesPath = filename
			return watchFixtures(ctx, s, filename)
		})
	},
}

func init() {
	seedCmd.AddCommand(seedWatchCmd)
}

func watchFixtures(ctx context.Context, s *session, filename string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	log.Printf("Watching %s for fixture changes", filename)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Printf("[%s] File modified, reseeding...", time.Now().Format(time.RFC3339))
			if err := reseed(ctx, s); err != nil {
				log.Printf("Error reseeding: %v", err)
				continue
			}
			log.Printf("Fixtures loaded successfully from %s", filename)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		case <-ctx.Done():
			log.Println("Shutting down...")
			return nil
		}
	}
}

// reseed parses the fixtures before touching the schema so a broken file
// leaves the current data in place.
func reseed(ctx context.Context, s *session) error {
	fixtures, err := s.fixtures()
	if err != nil {
		return err
	}
	if err := syncSchema(ctx, s); err != nil {
		return err
	}
	result, err := seedFixtures(ctx, s, fixtures)
	if err != nil {
		return err
	}
	return s.printer.Dump(result)
}
