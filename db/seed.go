package db

import (
	"database/sql"
	"fmt"
	"time"
)

type sampleUser struct {
	deviceID   int
	name       string
	employeeID string
	department string
}

// SeedData populates the user directory with sample entries
func SeedData(database *sql.DB) error {
	// Start a transaction
	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	createdAt := time.Now().Format(time.RFC3339)

	samples := []sampleUser{
		{1, "Sample User 1", "EMP001", "HW specialist"},
		{2, "Sample User 2", "EMP002", "SW specialist"},
	}
	for _, user := range samples {
		_, err = tx.Exec(`
            INSERT OR REPLACE INTO users (device_id, name, employee_id, department, created_at)
            VALUES (?, ?, ?, ?, ?)
        `, user.deviceID, user.name, user.employeeID, user.department, createdAt)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding users: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
