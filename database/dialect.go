package database

import "gorm.io/gorm"

// Dialect covers the two places the embedded and networked engines
// genuinely differ: the schema DDL and how a freshly inserted row is
// read back. Placeholder syntax is already normalized by the gorm
// dialector, so statements use `?` regardless of backend.
type Dialect interface {
	Name() string
	EnsureSchema(db *gorm.DB) error
	InsertAndFetch(db *gorm.DB, dest interface{}, table, query string, args ...interface{}) error
}

type SQLiteDialect struct{}

func (SQLiteDialect) Name() string { return "sqlite" }

const sqliteTasksSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	stage TEXT NOT NULL,
	milestone TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	content TEXT,
	holiday_impact TEXT,
	dependencies TEXT,
	responsible TEXT,
	risks TEXT,
	completed BOOLEAN NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

func (SQLiteDialect) EnsureSchema(db *gorm.DB) error {
	return db.Exec(sqliteTasksSchema).Error
}

// InsertAndFetch emulates RETURNING: the insert and the lookup by
// last_insert_rowid() must run on one connection, so both go through a
// single transaction.
func (SQLiteDialect) InsertAndFetch(db *gorm.DB, dest interface{}, table, query string, args ...interface{}) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(query, args...).Error; err != nil {
			return err
		}
		return tx.Raw("SELECT * FROM " + table + " WHERE id = last_insert_rowid()").Scan(dest).Error
	})
}

type PostgresDialect struct{}

func (PostgresDialect) Name() string { return "postgres" }

// Dates are stored as text here too, so list ordering behaves the same
// on both backends.
const postgresTasksSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	id SERIAL PRIMARY KEY,
	stage VARCHAR(255) NOT NULL,
	milestone VARCHAR(255) NOT NULL,
	start_date VARCHAR(255) NOT NULL,
	end_date VARCHAR(255) NOT NULL,
	content TEXT,
	holiday_impact TEXT,
	dependencies TEXT,
	responsible TEXT,
	risks TEXT,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

func (PostgresDialect) EnsureSchema(db *gorm.DB) error {
	return db.Exec(postgresTasksSchema).Error
}

func (PostgresDialect) InsertAndFetch(db *gorm.DB, dest interface{}, table, query string, args ...interface{}) error {
	return db.Raw(query+" RETURNING *", args...).Scan(dest).Error
}
