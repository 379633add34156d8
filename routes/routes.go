package routes

import (
	"database/sql"

	"attendance_backend/handlers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, database *sql.DB, logger *zap.Logger, databaseFile string) {
	// Initialize handlers
	attendanceHandler := handlers.NewAttendanceHandler(database, logger)
	userHandler := handlers.NewUserHandler(database, logger)
	statsHandler := handlers.NewStatsHandler(database, logger)
	healthHandler := handlers.NewHealthHandler(databaseFile)
	dashboardHandler := handlers.NewDashboardHandler()

	// Attendance routes
	r.POST("/attendance", attendanceHandler.RecordAttendance)
	r.GET("/attendance", attendanceHandler.ListAttendance)

	// User routes
	r.POST("/users", userHandler.UpsertUser)
	r.GET("/users", userHandler.ListUsers)

	// Stats route
	r.GET("/stats", statsHandler.GetStats)

	// Health route
	r.GET("/health", healthHandler.HealthCheck)

	// Dashboard
	r.GET("/", dashboardHandler.Dashboard)
}
