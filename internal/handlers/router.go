package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/namefreezers/weather-console/internal/services"
)

// NewRouter wires every API route onto a gin engine.
func NewRouter(svc services.LookupService, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware...)
	api := router.Group("/api")
	{
		api.GET("/weather", WeatherHandler(svc))
		api.GET("/history", HistoryHandler(svc))
		api.POST("/calculate", CalculateHandler())
	}
	return router
}
