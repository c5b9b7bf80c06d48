package controllers

import (
	"time"

	"warga-http-service/internal/error/code"
	"warga-http-service/internal/error/response"
	"warga-http-service/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
)

var serviceStart = time.Now()

// HealthCheckController serves liveness and readiness probes.
type HealthCheckController struct {
	Pool *database.ConnectionPool
}

// NewHealthCheckController creates a health check controller.
func NewHealthCheckController(pool *database.ConnectionPool) *HealthCheckController {
	return &HealthCheckController{Pool: pool}
}

// Ping is the liveness endpoint.
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Health reports database connectivity.
func (h *HealthCheckController) Health(c *gin.Context) {
	dbStatus := "ok"
	if err := h.Pool.HealthCheck(); err != nil {
		dbStatus = "down: " + err.Error()
	}

	response.Success(c, gin.H{
		"database": dbStatus,
		"uptime":   time.Since(serviceStart).String(),
	})
}

// Status reports connection pool statistics.
func (h *HealthCheckController) Status(c *gin.Context) {
	stats, err := h.Pool.Stats()
	if err != nil {
		response.FailWithMessage(c, code.ErrDatabase, "gagal membaca statistik koneksi", nil)
		return
	}

	response.Success(c, gin.H{
		"pool":   stats,
		"uptime": time.Since(serviceStart).String(),
	})
}
