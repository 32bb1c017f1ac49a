package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/namefreezers/weather-console/internal/services"
)

type historyRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// HistoryHandler handles GET /api/history
func HistoryHandler(svc services.LookupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req historyRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		lookups, err := svc.History(c.Request.Context(), req.Limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"lookups": lookups})
	}
}
