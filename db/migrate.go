package db

import (
	"log"

	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// RunMigrations provisions the clients, vehicles and records tables.
// The DDL uses IF NOT EXISTS throughout, so running against a database
// that already carries the schema (including one created by an earlier
// deployment without a schema_migrations table) changes nothing.
func RunMigrations(dbURL string) {
	if err := MigrateUp(dbURL, "file://db/migrations"); err != nil {
		log.Fatalf("could not run up migrations: %v", err)
	}
	log.Println("migrations applied")
}

// MigrateUp applies all pending migrations from sourceURL. A database
// that is already current is not an error.
func MigrateUp(dbURL, sourceURL string) error {
	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
