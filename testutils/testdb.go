package testutils

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskplan-app/taskplan/database"
)

// SetupTestDB opens an in-memory sqlite database with the tasks schema
// applied, mirroring the embedded-engine setup path. The pool is
// pinned to one connection so the :memory: database is shared by every
// statement.
func SetupTestDB(t *testing.T) *database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	d := &database.Database{DB: db, Dialect: database.SQLiteDialect{}}
	if err := database.RunMigrations(d); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(d.Close)
	return d
}
