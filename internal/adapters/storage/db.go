package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode and foreign keys enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS membership_types (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price REAL NOT NULL DEFAULT 0,
		max_visits_per_month INTEGER
	);

	CREATE TABLE IF NOT EXISTS members (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		address TEXT,
		birth_date TEXT,
		gender TEXT,
		membership_id TEXT,
		emergency_contact_name TEXT,
		emergency_contact_phone TEXT,
		medical_conditions TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		registered_at TEXT NOT NULL,
		FOREIGN KEY (membership_id) REFERENCES membership_types(id)
	);

	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		membership_id TEXT NOT NULL,
		amount REAL NOT NULL,
		method TEXT,
		payment_date TEXT NOT NULL,
		due_date TEXT NOT NULL,
		status TEXT NOT NULL,
		FOREIGN KEY (member_id) REFERENCES members(id),
		FOREIGN KEY (membership_id) REFERENCES membership_types(id)
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		check_in_time TEXT NOT NULL,
		FOREIGN KEY (member_id) REFERENCES members(id)
	);

	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS activity_log (
		id TEXT PRIMARY KEY,
		actor_id TEXT NOT NULL,
		action TEXT NOT NULL,
		description TEXT,
		source_addr TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_payments_member ON payments(member_id);
	CREATE INDEX IF NOT EXISTS idx_attendance_member ON attendance(member_id);
	CREATE INDEX IF NOT EXISTS idx_attendance_checkin ON attendance(check_in_time);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
