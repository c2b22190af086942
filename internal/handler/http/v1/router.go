package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Обстановка вокруг точки
	crime := api.Group("/crime")
	{
		crime.GET("/near", h.crimeNear)
		crime.GET("/stats", h.crimeStats)
	}
	api.POST("/incidents", auth, h.reportIncident)

	// Маршруты и опасные зоны из новостей
	routes := api.Group("/routes")
	{
		routes.POST("/safety", h.routeSafety)
		routes.POST("/segments", h.routeSegments)
		routes.POST("/risk", h.routeRisk)
	}
	api.GET("/danger-zones", h.dangerZones)

	ratings := api.Group("/ratings")
	{
		ratings.GET("", h.locationRatings)
		ratings.POST("", auth, h.submitRating)
		ratings.GET("/heatmap", h.ratingsHeatmap)
		ratings.GET("/heatmap/geojson", h.ratingsHeatmapGeoJSON)
	}

	// SOS и живая геолокация
	api.POST("/sos", auth, h.triggerSOS)
	location := api.Group("/location")
	{
		location.GET("/context", h.locationContext)
		location.POST("/share", auth, h.shareLocation)
		location.GET("/share/:id", h.getSharedLocation)
		location.GET("/share/:id/ws", h.streamSharedLocation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
