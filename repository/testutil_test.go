package repository_test

import (
	"database/sql"
	"os"
	"testing"

	"vizagaggregates/db"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL,
// applies the schema and starts from empty tables. Tests are skipped
// when no test database is configured.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	require.NoError(t, db.MigrateUp(dbURL, "file://../db/migrations"))

	conn, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	require.NoError(t, conn.Ping())

	truncateAll(t, conn)
	t.Cleanup(func() {
		truncateAll(t, conn)
		conn.Close()
	})

	return conn
}

func truncateAll(t *testing.T, conn *sql.DB) {
	t.Helper()
	_, err := conn.Exec(`TRUNCATE records, clients, vehicles RESTART IDENTITY`)
	require.NoError(t, err)
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }
