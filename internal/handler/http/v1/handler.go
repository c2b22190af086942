package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_safety_system/internal/config"
	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/news"
	"github.com/shenikar/geo_safety_system/internal/service"
)

// defaultStreamInterval период опроса записи геолокации для websocket-потока
const defaultStreamInterval = 2 * time.Second

type Handler struct {
	crimeService   service.CrimeService
	routeService   service.RouteService
	ratingService  service.RatingService
	alertService   service.AlertService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
	streamInterval time.Duration
}

func NewHandler(
	crimeService service.CrimeService,
	routeService service.RouteService,
	ratingService service.RatingService,
	alertService service.AlertService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		crimeService:   crimeService,
		routeService:   routeService,
		ratingService:  ratingService,
		alertService:   alertService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
		streamInterval: defaultStreamInterval,
	}
}

// bindJSON разбирает и проверяет тело запроса; при ошибке ответ уже отправлен
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// writeServiceError переводит ошибку сервиса в HTTP-статус
func (h *Handler) writeServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidIncident),
		errors.Is(err, models.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidSOS),
		errors.Is(err, service.ErrInvalidShare):
		log.WithError(err).Warn("Request rejected by service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrShareNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "location share not found"})
	case errors.Is(err, news.ErrUnknownCity):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown city"})
	case errors.Is(err, service.ErrShareOwner):
		log.WithError(err).Warn("Share owner mismatch")
		c.JSON(http.StatusForbidden, gin.H{"error": "location share belongs to another user"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func radiusOrDefault(r float64) float64 {
	if r <= 0 {
		return DefaultRadiusDeg
	}
	return r
}

// @Summary Crime near a point
// @Description Ranked incidents, aggregate statistics and location context around a point
// @Tags Crime
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Search radius in degrees" default(0.01)
// @Success 200 {object} CrimeNearResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /crime/near [get]
func (h *Handler) crimeNear(c *gin.Context) {
	var q PointQuery
	log := h.logger.WithField("method", "crimeNear")
	if !h.bindQuery(c, log, &q) {
		return
	}

	report := h.crimeService.CrimeNear(c.Request.Context(), *q.Latitude, *q.Longitude, radiusOrDefault(q.Radius))
	c.JSON(http.StatusOK, ModelToCrimeNearResponse(report))
}

// @Summary Crime statistics near a point
// @Description Aggregate statistics of incidents around a point
// @Tags Crime
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Search radius in degrees" default(0.01)
// @Success 200 {object} models.CrimeStats
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /crime/stats [get]
func (h *Handler) crimeStats(c *gin.Context) {
	var q PointQuery
	log := h.logger.WithField("method", "crimeStats")
	if !h.bindQuery(c, log, &q) {
		return
	}

	stats := h.crimeService.CrimeStats(c.Request.Context(), *q.Latitude, *q.Longitude, radiusOrDefault(q.Radius))
	c.JSON(http.StatusOK, stats)
}

// @Summary Location context
// @Description Reverse geocoded place description; "Unknown" when the geocoder is unavailable
// @Tags Location
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} models.LocationContext
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /location/context [get]
func (h *Handler) locationContext(c *gin.Context) {
	var q PointQuery
	log := h.logger.WithField("method", "locationContext")
	if !h.bindQuery(c, log, &q) {
		return
	}

	c.JSON(http.StatusOK, h.crimeService.LocationContext(c.Request.Context(), *q.Latitude, *q.Longitude))
}

// @Summary Report an incident
// @Description Store a user-reported incident. Requires API key.
// @Tags Crime
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "reportIncident")
	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.crimeService.ReportIncident(c.Request.Context(), model); err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
