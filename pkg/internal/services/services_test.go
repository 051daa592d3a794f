package services

import (
	"testing"

	"github.com/lan-twttr/lantwttr/pkg/internal/cache"
	"github.com/lan-twttr/lantwttr/pkg/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest points the global database handle at a fresh in-memory sqlite
// store. A single connection keeps every test operation on the same memory
// database.
func setupTest(t *testing.T) {
	t.Helper()

	require.NoError(t, cache.NewStore())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(db))
	database.C = db
}
