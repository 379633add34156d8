package handlers

import (
	"database/sql"
	"net/http"

	"attendance_backend/db"
	"attendance_backend/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewUserHandler(database *sql.DB, logger *zap.Logger) *UserHandler {
	return &UserHandler{db: database, logger: logger}
}

// UpsertUser registers or fully replaces the user for a device slot
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.UpsertUser(h.db, req.DeviceID, req.Name, req.EmployeeID, req.Department); err != nil {
		h.logger.Error("Failed to upsert user",
			zap.Int("deviceId", req.DeviceID),
			zap.String("name", req.Name),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add user"})
		return
	}

	h.logger.Info("User added/updated",
		zap.Int("deviceId", req.DeviceID),
		zap.String("name", req.Name))
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  "User added/updated",
		"deviceId": req.DeviceID,
		"name":     req.Name,
	})
}

// ListUsers returns all registered users ordered by name
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := db.GetUsers(h.db)
	if err != nil {
		h.logger.Error("Failed to fetch users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(users),
		"users":  users,
	})
}
