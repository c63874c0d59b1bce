package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sporthub/sporthub-api/internal/service"
	"github.com/sporthub/sporthub-api/pkg/response"
)

// StatsHandler handles dashboard statistics HTTP requests
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Overview handles GET /stats/overview (admin)
func (h *StatsHandler) Overview(c *gin.Context) {
	overview, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute statistics"))
		return
	}

	c.JSON(http.StatusOK, response.Success(overview))
}
