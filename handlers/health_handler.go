package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Pinger is anything that can report database liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness and readiness.
type HealthHandler struct {
	db      Pinger
	redis   redis.UniversalClient
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db Pinger, redisClient redis.UniversalClient, version string) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient, version: version}
}

// Liveness handles GET /health/liveness: the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
}

// Readiness handles GET /health/readiness: dependencies are reachable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{}
	healthy := true

	if err := h.db.Ping(ctx); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	} else {
		checks["redis"] = "ok"
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"checks": checks, "version": h.version})
}
