package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	databaseFile string
}

func NewHealthHandler(databaseFile string) *HealthHandler {
	return &HealthHandler{databaseFile: databaseFile}
}

// HealthCheck reports liveness and whether the storage file exists. It
// always answers 200.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	storage := "connected"
	if _, err := os.Stat(h.databaseFile); err != nil {
		storage = "not found"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"storage":   storage,
	})
}
