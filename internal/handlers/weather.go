package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/namefreezers/weather-console/internal/services"
	"github.com/namefreezers/weather-console/internal/weather"
	"github.com/namefreezers/weather-console/internal/weather/types"
)

// weatherRequest defines the expected query parameter for GET /api/weather
type weatherRequest struct {
	City string `form:"city" binding:"required"`
}

// weatherResponse is the eight display fields plus the console report text
type weatherResponse struct {
	types.Summary
	Report string `json:"report"`
}

// errorResponse carries the outcome kind so clients can branch on it
type errorResponse struct {
	Outcome string `json:"outcome"`
	Error   string `json:"error"`
}

// statusForKind maps a fetch outcome to the status this API answers with.
func statusForKind(k types.Kind) int {
	switch k {
	case types.KindNotFound:
		return http.StatusNotFound
	case types.KindTimeout:
		return http.StatusGatewayTimeout
	case types.KindUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

// WeatherHandler returns a Gin handler for GET /api/weather
func WeatherHandler(svc services.LookupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1) Bind and validate the 'city' query parameter
		var req weatherRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Outcome: "invalid_request", Error: err.Error()})
			return
		}

		// 2) Fetch current weather (recorded in history)
		rec, err := svc.Lookup(c.Request.Context(), req.City)
		if errors.Is(err, services.ErrEmptyCity) {
			c.JSON(http.StatusBadRequest, errorResponse{Outcome: "invalid_request", Error: err.Error()})
			return
		}
		if err != nil {
			kind := types.KindOf(err)
			c.JSON(statusForKind(kind), errorResponse{Outcome: kind.String(), Error: err.Error()})
			return
		}

		// 3) Every display field must be present
		summary, err := rec.Summarize()
		if err != nil {
			c.JSON(http.StatusBadGateway, errorResponse{Outcome: "incomplete", Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, weatherResponse{
			Summary: summary,
			Report:  weather.Format(rec),
		})
	}
}
