package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/cms-in-go/pkg/audit"
	"github.com/doodlesbykumbi/cms-in-go/pkg/config"
	"github.com/doodlesbykumbi/cms-in-go/pkg/db"
	"github.com/doodlesbykumbi/cms-in-go/pkg/report"
	"github.com/doodlesbykumbi/cms-in-go/pkg/seed"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
	gormstore "github.com/doodlesbykumbi/cms-in-go/pkg/store/gorm"
)

// session is the state shared by the commands that talk to the database.
type session struct {
	cfg     *config.CMSConfig
	db      *gorm.DB
	stores  store.Stores
	printer *report.Printer
	audit   *audit.Logger
	closers []io.Closer
}

// openSession loads the configuration, connects and checks the connection.
// The caller must Close the session on every path.
// A non-empty output overrides the configured report format.
func openSession(ctx context.Context, out io.Writer, output string) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if output != "" {
		cfg.Output = output
	}

	printer, err := report.NewPrinter(out, report.Options{
		Format: cfg.Output,
		Width:  cfg.BannerWidth,
		Fill:   cfg.BannerFill,
	})
	if err != nil {
		return nil, err
	}

	auditLog, auditFile, err := openAuditLog(cfg.AuditLog)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, printer: printer, audit: auditLog}
	if auditFile != nil {
		s.closers = append(s.closers, auditFile)
	}

	if err := s.connect(ctx); err != nil {
		_ = s.closeAll()
		return nil, err
	}
	log.Println("Connection has been established successfully.")
	return s, nil
}

// connect opens the pool and checks it accepts queries. Both outcomes are
// audited.
func (s *session) connect(ctx context.Context) error {
	event := audit.ConnectEvent{Database: redactURL(s.cfg.URL())}
	if target, err := db.ParseURL(s.cfg.URL()); err == nil {
		event.Engine = target.Engine.String()
	}

	err := func() error {
		database, err := db.Connect(db.Config{URL: s.cfg.URL(), LogLevel: s.cfg.LogLevel})
		if err != nil {
			return err
		}
		s.db = database
		s.stores = gormstore.NewStores(database)
		if err := s.stores.Health.CheckConnectivity(ctx); err != nil {
			return fmt.Errorf("unable to connect to the database: %w", err)
		}
		return nil
	}()

	event.Success = err == nil
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	s.audit.Log(event)
	return err
}

func openAuditLog(dest string) (*audit.Logger, io.Closer, error) {
	switch dest {
	case "":
		return nil, nil, nil
	case "stderr":
		return audit.NewLogger(os.Stderr), nil, nil
	}
	f, err := os.OpenFile(dest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	return audit.NewLogger(f), f, nil
}

func redactURL(raw string) string {
	if u, err := url.Parse(raw); err == nil {
		return u.Redacted()
	}
	return raw
}

func loadConfig() (*config.CMSConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Close flushes the report and releases the connection pool.
func (s *session) Close() error {
	return errors.Join(s.printer.Flush(), s.closeAll())
}

func (s *session) closeAll() error {
	errs := []error{db.Close(s.db)}
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// fixturesSource names the fixtures in audit events.
func (s *session) fixturesSource() string {
	if s.cfg.FixturesPath != "" {
		return s.cfg.FixturesPath
	}
	return "embedded"
}

// fixtures returns the configured fixtures file, or the embedded data set.
func (s *session) fixtures() (*seed.Fixtures, error) {
	if s.cfg.FixturesPath != "" {
		return seed.Load(s.cfg.FixturesPath)
	}
	return seed.Default()
}

// withSession runs fn inside a session bound to the command's output. The
// --output flag is honoured when the command defines it.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) (err error) {
	ctx := cmd.Context()
	var output string
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		output = f.Value.String()
	}
	s, err := openSession(ctx, cmd.OutOrStdout(), output)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); err == nil {
			err = closeErr
		}
	}()
	return fn(ctx, s)
}

// requireSubcommand is the RunE of commands that only group subcommands.
func requireSubcommand(cmd *cobra.Command, _ []string) error {
	_ = cmd.Help()
	return fmt.Errorf("command '%s' requires a subcommand", cmd.Name())
}
