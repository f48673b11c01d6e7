package handlers

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	db      *pgxpool.Pool
	version string
	started time.Time
}

func NewHealthHandler(db *pgxpool.Pool, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, started: time.Now()}
}

// Liveness only proves the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness fails while the database is unreachable so a load balancer can
// hold traffic back.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}

// Health reports a fuller picture for humans and dashboards.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	overall, dbStatus := "ok", "up"
	status := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		overall, dbStatus = "degraded", "down"
		status = http.StatusServiceUnavailable
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(status, gin.H{
		"status":   overall,
		"version":  h.version,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
		"database": dbStatus,
		"memory": gin.H{
			"alloc":       formatMB(mem.Alloc),
			"total_alloc": formatMB(mem.TotalAlloc),
			"sys":         formatMB(mem.Sys),
			"goroutines":  runtime.NumGoroutine(),
		},
	})
}

func formatMB(b uint64) string {
	return fmt.Sprintf("%.1f MB", float64(b)/1024/1024)
}
