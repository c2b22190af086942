package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/geo_safety_system/internal/news"
)

// @Summary Route safety score
// @Description Safety score 1..5 for a route, sampled at up to 10 waypoints
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body RouteRequest true "Ordered waypoints"
// @Success 200 {object} models.RouteSafety
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /routes/safety [post]
func (h *Handler) routeSafety(c *gin.Context) {
	var input RouteRequest
	log := h.logger.WithField("method", "routeSafety")
	if !h.bindJSON(c, log, &input) {
		return
	}

	res, err := h.routeService.RouteSafety(c.Request.Context(), WaypointsToPoints(input.Waypoints))
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Route segment analysis
// @Description Incident count and danger score for every segment of a route
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body RouteRequest true "Ordered waypoints"
// @Success 200 {array} models.RouteSegment
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /routes/segments [post]
func (h *Handler) routeSegments(c *gin.Context) {
	var input RouteRequest
	log := h.logger.WithField("method", "routeSegments")
	if !h.bindJSON(c, log, &input) {
		return
	}

	segments, err := h.routeService.RouteSegments(c.Request.Context(), WaypointsToPoints(input.Waypoints))
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, segments)
}

// @Summary Route risk from news
// @Description Risk of a route through the danger zones derived from recent city news
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body RouteRiskRequest true "City and ordered waypoints"
// @Success 200 {object} models.RouteRisk
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Unknown city"
// @Router /routes/risk [post]
func (h *Handler) routeRisk(c *gin.Context) {
	var input RouteRiskRequest
	log := h.logger.WithField("method", "routeRisk")
	if !h.bindJSON(c, log, &input) {
		return
	}

	city := strings.ToLower(strings.TrimSpace(input.City))
	res, err := h.routeService.RouteRisk(c.Request.Context(), city, WaypointsToPoints(input.Waypoints))
	if err != nil {
		h.writeServiceError(c, log.WithField("city", city), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Danger zones of a city
// @Description Danger zones derived from recent news. format=geojson returns a FeatureCollection.
// @Tags Routes
// @Produce json
// @Param city query string true "City key"
// @Param format query string false "Response format" Enums(json, geojson)
// @Success 200 {object} DangerZonesResponse
// @Failure 400 {object} map[string]string "City is required"
// @Failure 404 {object} map[string]string "Unknown city"
// @Router /danger-zones [get]
func (h *Handler) dangerZones(c *gin.Context) {
	city := strings.ToLower(strings.TrimSpace(c.Query("city")))
	log := h.logger.WithField("method", "dangerZones").WithField("city", city)
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "city is required",
			"cities": h.routeService.Cities(),
		})
		return
	}

	zones, err := h.routeService.DangerZones(c.Request.Context(), city)
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}

	if c.Query("format") == "geojson" {
		c.JSON(http.StatusOK, news.ZonesFeatureCollection(zones))
		return
	}
	c.JSON(http.StatusOK, DangerZonesResponse{City: city, Zones: zones, Count: len(zones)})
}
