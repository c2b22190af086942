package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_safety_system/internal/heatmap"
	"github.com/shenikar/geo_safety_system/internal/models"
)

// @Summary Submit a safety rating
// @Description Rate how safe a place feels on a 1..5 scale. Requires API key.
// @Tags Ratings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param rating body CreateRatingRequest true "Safety rating"
// @Success 201 {object} models.Rating
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ratings [post]
func (h *Handler) submitRating(c *gin.Context) {
	var input CreateRatingRequest
	log := h.logger.WithField("method", "submitRating")
	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToRatingModel(input)
	if err := h.ratingService.SubmitRating(c.Request.Context(), model); err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, model)
}

// @Summary Ratings near a point
// @Description Ratings of the last 90 days around a point with their average
// @Tags Ratings
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Search radius in degrees" default(0.01)
// @Success 200 {object} models.LocationRatings
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /ratings [get]
func (h *Handler) locationRatings(c *gin.Context) {
	var q PointQuery
	log := h.logger.WithField("method", "locationRatings")
	if !h.bindQuery(c, log, &q) {
		return
	}

	c.JSON(http.StatusOK, h.ratingService.LocationRatings(c.Request.Context(), *q.Latitude, *q.Longitude, radiusOrDefault(q.Radius)))
}

// heatmapPoints общая часть JSON и GeoJSON вариантов тепловой карты
func (h *Handler) heatmapPoints(c *gin.Context, log *logrus.Entry) ([]models.HeatmapPoint, float64, bool) {
	var q BoxQuery
	if !h.bindQuery(c, log, &q) {
		return nil, 0, false
	}
	box := BoxQueryToBoundingBox(q)
	if !box.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat_min/lng_min must not exceed lat_max/lng_max"})
		return nil, 0, false
	}

	resolution := q.Resolution
	if resolution <= 0 {
		resolution = h.cfg.HeatmapResolution
	}
	if resolution < heatmap.MinResolution {
		resolution = heatmap.DefaultResolution
	}
	return h.ratingService.Heatmap(c.Request.Context(), box, resolution), resolution, true
}

// @Summary Safety heatmap
// @Description Grid of average safety ratings inside a bounding box
// @Tags Ratings
// @Produce json
// @Param lat_min query number true "South edge"
// @Param lat_max query number true "North edge"
// @Param lng_min query number true "West edge"
// @Param lng_max query number true "East edge"
// @Param resolution query number false "Grid step in degrees" default(0.001)
// @Success 200 {object} HeatmapResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /ratings/heatmap [get]
func (h *Handler) ratingsHeatmap(c *gin.Context) {
	log := h.logger.WithField("method", "ratingsHeatmap")
	points, resolution, ok := h.heatmapPoints(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, HeatmapResponse{Points: points, Resolution: resolution})
}

// @Summary Safety heatmap as GeoJSON
// @Description Same grid as /ratings/heatmap as a GeoJSON FeatureCollection of points
// @Tags Ratings
// @Produce json
// @Param lat_min query number true "South edge"
// @Param lat_max query number true "North edge"
// @Param lng_min query number true "West edge"
// @Param lng_max query number true "East edge"
// @Param resolution query number false "Grid step in degrees" default(0.001)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /ratings/heatmap/geojson [get]
func (h *Handler) ratingsHeatmapGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "ratingsHeatmapGeoJSON")
	points, _, ok := h.heatmapPoints(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, heatmap.FeatureCollection(points))
}
