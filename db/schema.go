package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
-- Create attendance records table
CREATE TABLE IF NOT EXISTS attendance (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    device_id INTEGER NOT NULL,
    event_timestamp TEXT NOT NULL,
    login_method TEXT NOT NULL,
    device_ip TEXT,
    received_at TEXT NOT NULL,
    UNIQUE(device_id, event_timestamp)
);

-- Create users table (maps device IDs to names)
CREATE TABLE IF NOT EXISTS users (
    device_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    employee_id TEXT,
    department TEXT,
    created_at TEXT NOT NULL
);

-- Indexes for faster queries
CREATE INDEX IF NOT EXISTS idx_attendance_event_timestamp
    ON attendance(event_timestamp);

CREATE INDEX IF NOT EXISTS idx_attendance_device_id
    ON attendance(device_id);
`

// InitSchema creates the database tables and indexes. Safe to run on every
// startup.
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec(Schema); err != nil {
		return fmt.Errorf("error initializing schema: %w", err)
	}
	return nil
}
