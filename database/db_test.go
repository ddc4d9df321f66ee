package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskplan-app/taskplan/config"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return &Database{DB: db, Dialect: SQLiteDialect{}}
}

func TestSetupSelectsEmbeddedEngine(t *testing.T) {
	cfg := config.Config{SQLitePath: filepath.Join(t.TempDir(), "tasks.db")}

	db, err := Setup(cfg)
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", db.Backend())
	db.Close()

	// Schema creation is create-if-absent, so a second start against
	// the same file must succeed.
	db, err = Setup(cfg)
	assert.NoError(t, err)
	db.Close()
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := newTestDatabase(t)
	defer db.Close()

	assert.NoError(t, RunMigrations(db))
	assert.NoError(t, RunMigrations(db))
}

func TestClose(t *testing.T) {
	db := newTestDatabase(t)

	assert.NotPanics(t, func() {
		db.Close()
	})
}

func TestQuery(t *testing.T) {
	db := newTestDatabase(t)
	defer db.Close()

	_, err := db.Execute("CREATE TABLE test (id INTEGER PRIMARY KEY, name TEXT)")
	assert.NoError(t, err)
	_, err = db.Execute("INSERT INTO test (name) VALUES (?)", "test_name")
	assert.NoError(t, err)

	var rows []map[string]interface{}
	err = db.Query(&rows, "SELECT * FROM test WHERE name = ?", "test_name")
	assert.NoError(t, err)

	assert.Len(t, rows, 1)
	assert.Equal(t, "test_name", rows[0]["name"])
}

func TestExecuteReportsRowsAffected(t *testing.T) {
	db := newTestDatabase(t)
	defer db.Close()

	_, err := db.Execute("CREATE TABLE test (id INTEGER PRIMARY KEY, name TEXT)")
	assert.NoError(t, err)

	affected, err := db.Execute("INSERT INTO test (name) VALUES (?)", "test_name")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = db.Execute("DELETE FROM test WHERE name = ?", "no_such_name")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestInsertAndFetchReturnsStoredRow(t *testing.T) {
	db := newTestDatabase(t)
	defer db.Close()

	assert.NoError(t, RunMigrations(db))

	var row map[string]interface{}
	err := db.InsertAndFetch(&row, "tasks",
		"INSERT INTO tasks (stage, milestone, start_date, end_date) VALUES (?, ?, ?, ?)",
		"P1", "kickoff", "2024-01-01", "2024-01-05")
	assert.NoError(t, err)

	// The caller gets the literal stored row, generated fields included.
	assert.EqualValues(t, 1, row["id"])
	assert.Equal(t, "kickoff", row["milestone"])
	assert.NotNil(t, row["created_at"])
	assert.NotNil(t, row["updated_at"])
}

func TestInsertAndFetchPropagatesConstraintErrors(t *testing.T) {
	db := newTestDatabase(t)
	defer db.Close()

	assert.NoError(t, RunMigrations(db))

	var row map[string]interface{}
	err := db.InsertAndFetch(&row, "tasks",
		"INSERT INTO tasks (stage, milestone, start_date, end_date) VALUES (?, ?, ?, ?)",
		nil, "kickoff", "2024-01-01", "2024-01-05")
	assert.Error(t, err)
}
