package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"attendance_backend/db"
	"attendance_backend/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AttendanceHandler struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewAttendanceHandler(database *sql.DB, logger *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{db: database, logger: logger}
}

// RecordAttendance handles attendance events reported by the devices.
// A resubmitted (deviceId, eventTimestamp) pair is answered with 200 and
// status "duplicate" so devices can safely retry.
func (h *AttendanceHandler) RecordAttendance(c *gin.Context) {
	var req models.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recordID, duplicate, err := db.InsertAttendance(h.db, req.DeviceID, req.EventTimestamp, req.LoginMethod, c.ClientIP())
	if err != nil {
		h.logger.Error("Failed to record attendance",
			zap.Int("deviceId", req.DeviceID),
			zap.String("eventTimestamp", req.EventTimestamp),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attendance"})
		return
	}

	if duplicate {
		h.logger.Warn("Duplicate attendance record",
			zap.Int("deviceId", req.DeviceID),
			zap.String("eventTimestamp", req.EventTimestamp))
		c.JSON(http.StatusOK, gin.H{
			"status":         "duplicate",
			"message":        "Duplicate attendance record (already exists)",
			"deviceId":       req.DeviceID,
			"eventTimestamp": req.EventTimestamp,
		})
		return
	}

	h.logger.Info("Attendance recorded",
		zap.Int64("recordId", recordID),
		zap.Int("deviceId", req.DeviceID),
		zap.String("eventTimestamp", req.EventTimestamp))
	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"message":        "Attendance recorded",
		"recordId":       recordID,
		"deviceId":       req.DeviceID,
		"eventTimestamp": req.EventTimestamp,
	})
}

// ListAttendance returns stored attendance records with optional filters.
// Unparseable query parameters fall back to their defaults.
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	// limit=0 is honored and returns no records; only unparseable or
	// negative values fall back to the default
	limit := 100
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "100")); err == nil && v >= 0 {
		limit = v
	}

	var deviceID *int
	if v, err := strconv.Atoi(c.Query("deviceId")); err == nil && v > 0 {
		deviceID = &v
	}

	date := c.Query("date") // Format: YYYY-MM-DD

	records, err := db.GetAttendanceRecords(h.db, limit, deviceID, date)
	if err != nil {
		h.logger.Error("Failed to fetch attendance records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"count":   len(records),
		"records": records,
	})
}
