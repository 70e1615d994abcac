// Package testutil provides database fixtures for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doodlesbykumbi/cms-in-go/pkg/db"
)

// OpenSQLite opens a private in-memory SQLite database with foreign keys
// enforced. It is closed when the test ends.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	database, err := db.Connect(db.Config{
		URL:    "sqlite://:memory:",
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(database)
	})
	return database
}
