package db

import (
	"database/sql"
	"fmt"

	"attendance_backend/models"
)

// GetStats computes the aggregate counters shown on the dashboard. Today's
// count uses the UTC calendar date, matching SQLite's DATE('now').
func GetStats(database *sql.DB) (*models.Stats, error) {
	stats := &models.Stats{}

	if err := database.QueryRow(`SELECT COUNT(*) FROM attendance`).Scan(&stats.TotalRecords); err != nil {
		return nil, fmt.Errorf("error counting attendance records: %w", err)
	}

	if err := database.QueryRow(`
        SELECT COUNT(*) FROM attendance WHERE DATE(event_timestamp) = DATE('now')
    `).Scan(&stats.TodayRecords); err != nil {
		return nil, fmt.Errorf("error counting today's records: %w", err)
	}

	if err := database.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&stats.TotalUsers); err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	recent, err := GetAttendanceRecords(database, 5, nil, "")
	if err != nil {
		return nil, fmt.Errorf("error fetching recent attendance: %w", err)
	}
	stats.RecentAttendance = recent

	return stats, nil
}
