package db

import (
	"database/sql"
	"fmt"
	"time"

	"attendance_backend/models"
)

// UpsertUser inserts or fully replaces the user registered for a device
// slot. created_at is reset to the current time on every call.
func UpsertUser(database *sql.DB, deviceID int, name string, employeeID, department *string) error {
	createdAt := time.Now().Format(time.RFC3339)

	_, err := database.Exec(`
        INSERT OR REPLACE INTO users (device_id, name, employee_id, department, created_at)
        VALUES (?, ?, ?, ?, ?)
    `, deviceID, name, employeeID, department, createdAt)

	if err != nil {
		return fmt.Errorf("error upserting user: %w", err)
	}

	return nil
}

// GetUsers retrieves all registered users ordered by name.
func GetUsers(database *sql.DB) ([]models.UserRecord, error) {
	rows, err := database.Query(`
        SELECT device_id, name, employee_id, department, created_at
        FROM users
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []models.UserRecord{}
	for rows.Next() {
		var user models.UserRecord
		if err := rows.Scan(
			&user.DeviceID,
			&user.Name,
			&user.EmployeeID,
			&user.Department,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
