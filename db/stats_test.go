package db

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsCounts(t *testing.T) {
	database := setupTestDB(t)

	require.NoError(t, UpsertUser(database, 1, "Alice", nil, nil))

	// One event today (UTC, matching DATE('now')), two on fixed past days
	today := time.Now().UTC().Format("2006-01-02") + "T08:00:00+00:00"
	for _, ts := range []string{today, "2025-01-01T08:00:00+00:00", "2025-01-02T08:00:00+00:00"} {
		_, _, err := InsertAttendance(database, 1, ts, "fingerprint", "10.0.0.2")
		require.NoError(t, err)
	}

	stats, err := GetStats(database)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRecords)
	assert.Equal(t, 1, stats.TodayRecords)
	assert.Equal(t, 1, stats.TotalUsers)
	require.Len(t, stats.RecentAttendance, 3)
	assert.Equal(t, today, stats.RecentAttendance[0].EventTimestamp)
}

func TestGetStatsTotalMatchesUnfilteredList(t *testing.T) {
	database := setupTestDB(t)

	for i := 0; i < 8; i++ {
		ts := fmt.Sprintf("2025-01-01T%02d:00:00+00:00", i)
		_, _, err := InsertAttendance(database, 2, ts, "fingerprint", "10.0.0.2")
		require.NoError(t, err)
	}

	stats, err := GetStats(database)
	require.NoError(t, err)

	records, err := GetAttendanceRecords(database, 100, nil, "")
	require.NoError(t, err)

	assert.Equal(t, len(records), stats.TotalRecords)
	assert.Len(t, stats.RecentAttendance, 5, "recent attendance is capped at five entries")
}
