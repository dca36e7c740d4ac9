// Package testdb opens throwaway in-memory SQLite databases for tests.
package testdb

import (
	"fmt"
	"testing"

	"swapi/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a migrated, empty database private to the calling test.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// Insert creates each row, failing the test on error.
func Insert(t testing.TB, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}
}
