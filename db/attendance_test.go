package db

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := Initialize(Config{File: filepath.Join(t.TempDir(), "attendance_test.db")})
	require.NoError(t, err)
	require.NoError(t, InitSchema(database))
	t.Cleanup(func() { database.Close() })

	return database
}

func countAttendanceRows(t *testing.T, database *sql.DB) int {
	t.Helper()

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM attendance`).Scan(&count))
	return count
}

func TestInsertAttendanceAssignsID(t *testing.T) {
	database := setupTestDB(t)

	recordID, duplicate, err := InsertAttendance(database, 5, "2025-01-01T08:00:00+00:00", "fingerprint", "10.0.0.2")
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.Equal(t, int64(1), recordID)

	recordID, duplicate, err = InsertAttendance(database, 5, "2025-01-01T09:00:00+00:00", "fingerprint", "10.0.0.2")
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.Equal(t, int64(2), recordID)
}

func TestInsertAttendanceDuplicatePair(t *testing.T) {
	database := setupTestDB(t)

	_, duplicate, err := InsertAttendance(database, 3, "2025-01-01T08:00:00+00:00", "fingerprint", "10.0.0.2")
	require.NoError(t, err)
	require.False(t, duplicate)

	// Same (device, timestamp) pair is a non-error duplicate outcome
	_, duplicate, err = InsertAttendance(database, 3, "2025-01-01T08:00:00+00:00", "keypad", "10.0.0.9")
	require.NoError(t, err)
	assert.True(t, duplicate)
	assert.Equal(t, 1, countAttendanceRows(t, database))

	// A different timestamp for the same device is a fresh record
	_, duplicate, err = InsertAttendance(database, 3, "2025-01-01T08:00:01+00:00", "fingerprint", "10.0.0.2")
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.Equal(t, 2, countAttendanceRows(t, database))
}

func TestGetAttendanceRecordsOrderedNewestFirst(t *testing.T) {
	database := setupTestDB(t)

	timestamps := []string{
		"2025-01-02T10:00:00+00:00",
		"2025-01-01T08:00:00+00:00",
		"2025-01-03T07:30:00+00:00",
		"2025-01-02T09:00:00+00:00",
	}
	for _, ts := range timestamps {
		_, _, err := InsertAttendance(database, 1, ts, "fingerprint", "10.0.0.2")
		require.NoError(t, err)
	}

	records, err := GetAttendanceRecords(database, 100, nil, "")
	require.NoError(t, err)
	require.Len(t, records, 4)

	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(t, records[i-1].EventTimestamp, records[i].EventTimestamp,
			"records must be ordered by event timestamp descending")
	}
}

func TestGetAttendanceRecordsLimit(t *testing.T) {
	database := setupTestDB(t)

	for i := 0; i < 10; i++ {
		ts := fmt.Sprintf("2025-01-01T08:%02d:00+00:00", i)
		_, _, err := InsertAttendance(database, 2, ts, "fingerprint", "10.0.0.2")
		require.NoError(t, err)
	}

	records, err := GetAttendanceRecords(database, 3, nil, "")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestGetAttendanceRecordsDeviceFilter(t *testing.T) {
	database := setupTestDB(t)

	_, _, err := InsertAttendance(database, 1, "2025-01-01T08:00:00+00:00", "fingerprint", "10.0.0.2")
	require.NoError(t, err)
	_, _, err = InsertAttendance(database, 2, "2025-01-01T08:05:00+00:00", "fingerprint", "10.0.0.3")
	require.NoError(t, err)

	deviceID := 2
	records, err := GetAttendanceRecords(database, 100, &deviceID, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].DeviceID)
}

func TestGetAttendanceRecordsDateFilter(t *testing.T) {
	database := setupTestDB(t)

	_, _, err := InsertAttendance(database, 1, "2025-01-01T08:00:00+00:00", "fingerprint", "10.0.0.2")
	require.NoError(t, err)
	_, _, err = InsertAttendance(database, 1, "2025-01-02T08:00:00+00:00", "fingerprint", "10.0.0.2")
	require.NoError(t, err)

	records, err := GetAttendanceRecords(database, 100, nil, "2025-01-02")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-01-02T08:00:00+00:00", records[0].EventTimestamp)
}

func TestGetAttendanceRecordsJoinsUserDirectory(t *testing.T) {
	database := setupTestDB(t)

	employeeID := "EMP001"
	department := "Engineering"
	require.NoError(t, UpsertUser(database, 1, "Alice", &employeeID, &department))

	_, _, err := InsertAttendance(database, 1, "2025-01-01T08:00:00+00:00", "fingerprint", "10.0.0.2")
	require.NoError(t, err)
	// Device 7 has no registered user
	_, _, err = InsertAttendance(database, 7, "2025-01-01T09:00:00+00:00", "fingerprint", "10.0.0.7")
	require.NoError(t, err)

	records, err := GetAttendanceRecords(database, 100, nil, "")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first: device 7 (no user), then device 1 (Alice)
	assert.Equal(t, 7, records[0].DeviceID)
	assert.Nil(t, records[0].Name)
	assert.Nil(t, records[0].EmployeeID)

	assert.Equal(t, 1, records[1].DeviceID)
	require.NotNil(t, records[1].Name)
	assert.Equal(t, "Alice", *records[1].Name)
	require.NotNil(t, records[1].EmployeeID)
	assert.Equal(t, "EMP001", *records[1].EmployeeID)
	require.NotNil(t, records[1].Department)
	assert.Equal(t, "Engineering", *records[1].Department)
}
