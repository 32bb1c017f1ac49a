package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/namefreezers/weather-console/internal/calculator"
)

// calculateRequest matches both JSON and x-www-form-urlencoded payloads
type calculateRequest struct {
	Op string   `form:"op" json:"op" binding:"required,oneof=add subtract multiply divide"`
	X  *float64 `form:"x"  json:"x"  binding:"required"`
	Y  *float64 `form:"y"  json:"y"  binding:"required"`
}

// CalculateHandler handles POST /api/calculate
func CalculateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req calculateRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		op, err := calculator.ParseOp(req.Op)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := calculator.Apply(op, *req.X, *req.Y)
		switch {
		case errors.Is(err, calculator.ErrDivisionByZero):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"result": result})
		}
	}
}
