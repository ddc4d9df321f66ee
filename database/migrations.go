package database

import "log"

// RunMigrations ensures the tasks table exists. The DDL is
// create-if-absent, so running it on every start is safe.
func RunMigrations(d *Database) error {
	log.Println("Running database migrations...")

	if err := d.Dialect.EnsureSchema(d.DB); err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
