package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/itinera/internal/db"
)

// NewTestDB opens a migrated in-memory store that is closed with the test.
// The pool holds one connection, so tests must not keep rows open while
// issuing another query.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
