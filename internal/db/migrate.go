package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent; the whole
// list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		email                TEXT NOT NULL DEFAULT '',
		location             TEXT NOT NULL DEFAULT 'in_person'
		                     CHECK(location IN ('in_person','remote')),
		default_duration_min INTEGER NOT NULL DEFAULT 60,
		priority             INTEGER NOT NULL DEFAULT 1,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS client_preferences (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id   TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		weekdays    TEXT NOT NULL DEFAULT '',
		start_min   INTEGER NOT NULL DEFAULT 0,
		end_min     INTEGER NOT NULL DEFAULT 0,
		min_gap_min INTEGER NOT NULL DEFAULT 0,
		weight      REAL NOT NULL DEFAULT 1.0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_client_preferences_client
		ON client_preferences(client_id)`,

	`CREATE TABLE IF NOT EXISTS client_blocked_dates (
		client_id TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		day       TEXT NOT NULL,
		PRIMARY KEY (client_id, day)
	)`,

	`CREATE TABLE IF NOT EXISTS session_requests (
		id           TEXT PRIMARY KEY,
		client_id    TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		duration_min INTEGER NOT NULL DEFAULT 0,
		count        INTEGER NOT NULL DEFAULT 1,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_requests_client
		ON session_requests(client_id)`,

	`CREATE TABLE IF NOT EXISTS schedules (
		id              TEXT PRIMARY KEY,
		generated_at    TEXT NOT NULL,
		horizon_start   TEXT NOT NULL,
		horizon_end     TEXT NOT NULL,
		granularity_min INTEGER NOT NULL,
		free_minutes    INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS scheduled_sessions (
		id          TEXT NOT NULL,
		schedule_id TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
		request_id  TEXT NOT NULL,
		client_id   TEXT NOT NULL,
		client_name TEXT NOT NULL DEFAULT '',
		week_index  INTEGER NOT NULL DEFAULT 0,
		start_at    TEXT NOT NULL,
		end_at      TEXT NOT NULL,
		score       REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (schedule_id, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_scheduled_sessions_start
		ON scheduled_sessions(schedule_id, start_at)`,

	`CREATE TABLE IF NOT EXISTS unplaced_requests (
		schedule_id TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
		request_id  TEXT NOT NULL,
		client_id   TEXT NOT NULL,
		client_name TEXT NOT NULL DEFAULT '',
		week_index  INTEGER NOT NULL DEFAULT 0,
		reason      TEXT NOT NULL
		            CHECK(reason IN ('NO_FEASIBLE_SLOT','NO_AVAILABILITY','INVALID_DURATION')),
		message     TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (schedule_id, request_id, week_index)
	)`,
}
