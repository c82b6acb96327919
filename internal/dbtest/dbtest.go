// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"testing"

	"github.com/lshigami/birthday-wall/config"
	"github.com/lshigami/birthday-wall/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a migrated, private sqlite database that is closed when t ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.Database{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Close shuts the pool early, to simulate an unreachable store.
func Close(t testing.TB, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
