package handlers

import (
	"database/sql"
	"net/http"

	"attendance_backend/db"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatsHandler struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewStatsHandler(database *sql.DB, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{db: database, logger: logger}
}

// GetStats returns the aggregate counters for the dashboard
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := db.GetStats(h.db)
	if err != nil {
		h.logger.Error("Failed to compute stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  stats,
	})
}
