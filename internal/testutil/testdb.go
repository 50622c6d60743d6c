package testutil

import (
	"database/sql"
	"testing"

	"github.com/dferrell/cadence/internal/db"
)

// NewTestDB opens a migrated in-memory SQLite database that closes itself
// when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// NewTestUoW wraps a test database in a real UnitOfWork.
func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}
