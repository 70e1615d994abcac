package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds database connection configuration
type Config struct {
	// URL is the database connection URL (defaults to DATABASE_URL env var)
	URL string
	// LogLevel selects gorm SQL logging: silent, error, warn or info.
	LogLevel string
	// Logger overrides the gorm logger built from LogLevel.
	Logger logger.Interface
}

// Connect opens a gorm handle for the engine named by the URL scheme.
// If no URL is provided, it reads from DATABASE_URL environment variable.
// The caller owns the handle and must release it with Close.
func Connect(cfg Config) (*gorm.DB, error) {
	dbURL := cfg.URL
	if dbURL == "" {
		dbURL = URL()
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	target, err := ParseURL(dbURL)
	if err != nil {
		return nil, err
	}

	dialector, err := dialectorFor(target)
	if err != nil {
		return nil, err
	}

	gormLogger := cfg.Logger
	if gormLogger == nil {
		gormLogger = NewLogger(cfg.LogLevel)
	}

	database, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", target.Engine, err)
	}
	return database, nil
}

func dialectorFor(target Target) (gorm.Dialector, error) {
	switch target.Engine {
	case EngineMySQL:
		return gormmysql.New(gormmysql.Config{DSN: target.DSN}), nil
	case EngineSQLite:
		conn, err := sql.Open("sqlite", target.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// One connection: an in-memory database lives and dies with it, and
		// migrator pragmas must land on the connection that runs the DDL.
		conn.SetMaxOpenConns(1)
		return sqlite.New(sqlite.Config{DriverName: "sqlite", Conn: conn}), nil
	default:
		return postgres.New(postgres.Config{
			DSN:                  target.DSN,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), nil
	}
}

// Close releases the connection pool behind a gorm handle.
func Close(database *gorm.DB) error {
	if database == nil {
		return nil
	}
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get connection pool: %w", err)
	}
	return sqlDB.Close()
}

// NewLogger builds the gorm SQL logger for a level name. Unknown levels are silent.
func NewLogger(level string) logger.Interface {
	return logger.New(
		log.New(os.Stderr, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  ParseLogLevel(level),
			IgnoreRecordNotFoundError: true,
		},
	)
}

// ParseLogLevel maps a level name onto a gorm log level.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return logger.Error
	case "warn", "warning":
		return logger.Warn
	case "info", "debug":
		return logger.Info
	default:
		return logger.Silent
	}
}

// URL returns the database URL from environment.
// Returns empty string if DATABASE_URL is not set.
func URL() string {
	return os.Getenv("DATABASE_URL")
}
