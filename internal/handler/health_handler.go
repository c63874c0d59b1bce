package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sporthub/sporthub-api/pkg/database"
	"github.com/sporthub/sporthub-api/pkg/redis"
	"github.com/sporthub/sporthub-api/pkg/response"
)

// HealthHandler handles liveness and readiness probes
type HealthHandler struct {
	db    *database.PostgresDB
	cache *redis.Client
}

// NewHealthHandler creates a new HealthHandler. The cache may be nil when
// Redis is not configured.
func NewHealthHandler(db *database.PostgresDB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
	}
}

// Health handles GET /health - liveness probe
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(gin.H{"status": "ok"}))
}

// Ready handles GET /ready - readiness probe checking dependencies
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := gin.H{}
	healthy := true

	if err := h.db.HealthCheck(c.Request.Context()); err != nil {
		checks["postgres"] = "unhealthy"
		healthy = false
	} else {
		checks["postgres"] = "healthy"
	}

	if h.cache != nil {
		if err := h.cache.HealthCheck(c.Request.Context()); err != nil {
			checks["redis"] = "unhealthy"
			healthy = false
		} else {
			checks["redis"] = "healthy"
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Error(response.ErrCodeInternal, "Service not ready"))
		return
	}

	c.JSON(http.StatusOK, response.Success(checks))
}
