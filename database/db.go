package database

import (
	"fmt"
	"log"

	"taskplan-app/taskplan/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB      *gorm.DB
	Dialect Dialect
}

// Setup opens the storage backend selected by the configuration: a
// DATABASE_URL selects the networked postgres engine, its absence falls
// back to the embedded sqlite file so the server runs with zero
// configuration. The choice is made exactly once, here.
func Setup(cfg config.Config) (*Database, error) {
	var (
		dialector gorm.Dialector
		dialect   Dialect
	)

	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
		dialect = PostgresDialect{}
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
		dialect = SQLiteDialect{}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	d := &Database{DB: db, Dialect: dialect}

	log.Printf("Using %s backend", dialect.Name())
	if err := RunMigrations(d); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return d, nil
}

// Backend names the active engine, for the health endpoint.
func (d *Database) Backend() string {
	return d.Dialect.Name()
}

func (d *Database) Close() {
	if d.DB == nil {
		log.Println("Database connection is nil, nothing to close.")
		return
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		log.Printf("Failed to get database connection: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}
}

// Query executes one SELECT and scans the result rows into dest, which
// may be a struct, a slice of structs, or a []map[string]interface{}.
// Rows come back in engine order; callers wanting an order say so in
// the statement.
func (d *Database) Query(dest interface{}, query string, args ...interface{}) error {
	return d.DB.Raw(query, args...).Scan(dest).Error
}

// Execute runs one write statement and reports how many rows it
// touched. Errors are returned as-is after the engine rolls back.
func (d *Database) Execute(query string, args ...interface{}) (int64, error) {
	result := d.DB.Exec(query, args...)
	return result.RowsAffected, result.Error
}

// InsertAndFetch runs an INSERT and scans the stored row, including the
// generated id and timestamps, into dest. How the row is read back is
// the dialect's business.
func (d *Database) InsertAndFetch(dest interface{}, table, query string, args ...interface{}) error {
	return d.Dialect.InsertAndFetch(d.DB, dest, table, query, args...)
}
