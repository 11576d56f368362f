package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"itineraries", "activities", "budgets"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_activities_day", "idx_itineraries_start"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_AddsEditorColumns(t *testing.T) {
	db := openTestDB(t)

	rows, err := db.Query(`PRAGMA table_info(activities)`)
	require.NoError(t, err)
	defer rows.Close()

	cols := map[string]bool{}
	for rows.Next() {
		var (
			cid          int
			name, typ    string
			notNull, pk  int
			defaultValue sql.NullString
		)
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &defaultValue, &pk))
		cols[name] = true
	}
	require.NoError(t, rows.Err())

	for _, c := range []string{"type", "description", "booking_url", "notes"} {
		assert.True(t, cols[c], "column %s", c)
	}
}

func TestForeignKeys_CascadeFromItinerary(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO itineraries (id, title, destination, start_date, end_date, traveler_count, created_at, updated_at)
		VALUES ('it', 'T', 'D', '2024-09-20', '2024-09-21', 1, 'x', 'x')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO budgets (itinerary_id, category, ceiling) VALUES ('it', 'meals', 50)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO activities (id, itinerary_id, day_date, position, title, start_min, end_min, cost, category)
		VALUES ('a', 'it', '2024-09-20', 0, 'A', 60, 120, 5, 'meals')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM itineraries WHERE id = 'it'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM budgets`).Scan(&n))
	assert.Zero(t, n)
}

func TestSchema_RejectsBadCategory(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO itineraries (id, title, destination, start_date, end_date, traveler_count, created_at, updated_at)
		VALUES ('it', 'T', 'D', '2024-09-20', '2024-09-21', 1, 'x', 'x')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO budgets (itinerary_id, category, ceiling) VALUES ('it', 'souvenirs', 50)`)
	assert.Error(t, err)
}
