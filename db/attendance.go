package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"attendance_backend/models"

	"github.com/mattn/go-sqlite3"
)

// InsertAttendance stores a single attendance event. A resubmission of an
// already stored (device_id, event_timestamp) pair is reported as
// duplicate=true with a nil error and leaves the original row untouched.
func InsertAttendance(database *sql.DB, deviceID int, eventTimestamp, loginMethod, deviceIP string) (int64, bool, error) {
	receivedAt := time.Now().Format(time.RFC3339)

	result, err := database.Exec(`
        INSERT INTO attendance (device_id, event_timestamp, login_method, device_ip, received_at)
        VALUES (?, ?, ?, ?, ?)
    `, deviceID, eventTimestamp, loginMethod, deviceIP, receivedAt)

	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, true, nil
		}
		return 0, false, fmt.Errorf("error inserting attendance: %w", err)
	}

	recordID, err := result.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("error reading inserted record id: %w", err)
	}

	return recordID, false, nil
}

// GetAttendanceRecords retrieves attendance events joined with the user
// directory, newest first. deviceID and date are optional filters; date
// matches the calendar date of the event timestamp (YYYY-MM-DD).
func GetAttendanceRecords(database *sql.DB, limit int, deviceID *int, date string) ([]models.AttendanceRecord, error) {
	query := `
        SELECT a.id, a.device_id, a.event_timestamp, a.login_method, a.device_ip, a.received_at,
               u.name, u.employee_id, u.department
        FROM attendance a
        LEFT JOIN users u ON u.device_id = a.device_id
        WHERE 1=1
    `
	params := []interface{}{}

	if deviceID != nil {
		query += " AND a.device_id = ?"
		params = append(params, *deviceID)
	}

	if date != "" {
		query += " AND DATE(a.event_timestamp) = ?"
		params = append(params, date)
	}

	query += " ORDER BY a.event_timestamp DESC LIMIT ?"
	params = append(params, limit)

	rows, err := database.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		var record models.AttendanceRecord
		var deviceIP sql.NullString
		if err := rows.Scan(
			&record.ID,
			&record.DeviceID,
			&record.EventTimestamp,
			&record.LoginMethod,
			&deviceIP,
			&record.ReceivedAt,
			&record.Name,
			&record.EmployeeID,
			&record.Department,
		); err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		record.DeviceIP = deviceIP.String
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance records: %w", err)
	}

	return records, nil
}
