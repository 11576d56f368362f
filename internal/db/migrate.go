package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS itineraries (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		destination    TEXT NOT NULL,
		start_date     TEXT NOT NULL,
		end_date       TEXT NOT NULL,
		traveler_count INTEGER NOT NULL DEFAULT 1 CHECK(traveler_count >= 1),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id           TEXT NOT NULL,
		itinerary_id TEXT NOT NULL REFERENCES itineraries(id) ON DELETE CASCADE,
		day_date     TEXT NOT NULL,
		position     INTEGER NOT NULL,
		title        TEXT NOT NULL,
		location     TEXT NOT NULL DEFAULT '',
		start_min    INTEGER NOT NULL CHECK(start_min >= 0 AND start_min < 1440),
		end_min      INTEGER NOT NULL CHECK(end_min > 0 AND end_min < 1440),
		cost         REAL NOT NULL DEFAULT 0 CHECK(cost >= 0),
		category     TEXT NOT NULL
		             CHECK(category IN ('accommodation','activities','transportation','meals','shopping','miscellaneous')),
		crowd_level  TEXT NOT NULL DEFAULT 'low' CHECK(crowd_level IN ('low','medium','high')),
		status       TEXT NOT NULL DEFAULT 'planned'
		             CHECK(status IN ('planned','booked','confirmed','cancelled')),
		PRIMARY KEY (itinerary_id, id),
		UNIQUE (itinerary_id, day_date, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_day ON activities(itinerary_id, day_date, position)`,

	`CREATE TABLE IF NOT EXISTS budgets (
		itinerary_id TEXT NOT NULL REFERENCES itineraries(id) ON DELETE CASCADE,
		category     TEXT NOT NULL
		             CHECK(category IN ('accommodation','activities','transportation','meals','shopping','miscellaneous')),
		ceiling      REAL NOT NULL CHECK(ceiling >= 0),
		PRIMARY KEY (itinerary_id, category)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_itineraries_start ON itineraries(start_date)`,

	// Editor detail columns added after the first schema.
	`ALTER TABLE activities ADD COLUMN type TEXT NOT NULL DEFAULT 'activity'`,
	`ALTER TABLE activities ADD COLUMN description TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE activities ADD COLUMN booking_url TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE activities ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}
