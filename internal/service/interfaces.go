package service

import (
	"context"
	"time"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// IncidentStore хранилище инцидентов (PostgreSQL или память)
type IncidentStore interface {
	// Find инциденты внутри q.Box не старше q.Since, новые первыми, не более q.Limit
	Find(ctx context.Context, q models.IncidentQuery) ([]models.Incident, error)
	Create(ctx context.Context, incident *models.Incident) error
}

// RatingStore хранилище оценок безопасности
type RatingStore interface {
	Find(ctx context.Context, box geo.BoundingBox, since time.Time) ([]models.Rating, error)
	Create(ctx context.Context, rating *models.Rating) error
}

// LocationResolver обратное геокодирование
type LocationResolver interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (models.LocationContext, error)
}

// IncidentProvider дополнительный источник инцидентов (внешний фид, генератор)
type IncidentProvider interface {
	Name() string
	Incidents(ctx context.Context, q models.IncidentQuery) ([]models.Incident, error)
}

// ZoneSource опасные зоны, выведенные из новостей
type ZoneSource interface {
	Cities() []string
	DangerZones(ctx context.Context, city string) ([]models.DangerZone, error)
	RouteRisk(ctx context.Context, city string, points []geo.Point) (models.RouteRisk, error)
}

// ShareStore реестр живых геолокаций
type ShareStore interface {
	// PutIfOwner сохраняет запись; false, если ID занят другим пользователем
	PutIfOwner(share models.LocationShare) (models.LocationShare, bool)
	Get(id string) (models.LocationShare, bool)
}

// CrimeService агрегация инцидентов вокруг точки
type CrimeService interface {
	IncidentsNear(ctx context.Context, lat, lng, radiusDeg float64) []models.Incident
	CrimeNear(ctx context.Context, lat, lng, radiusDeg float64) models.CrimeReport
	CrimeStats(ctx context.Context, lat, lng, radiusDeg float64) models.CrimeStats
	LocationContext(ctx context.Context, lat, lng float64) models.LocationContext
	ReportIncident(ctx context.Context, incident *models.Incident) error
}

// RouteService оценка маршрутов
type RouteService interface {
	RouteSafety(ctx context.Context, waypoints []geo.Point) (models.RouteSafety, error)
	RouteSegments(ctx context.Context, waypoints []geo.Point) ([]models.RouteSegment, error)
	RouteRisk(ctx context.Context, city string, waypoints []geo.Point) (models.RouteRisk, error)
	DangerZones(ctx context.Context, city string) ([]models.DangerZone, error)
	Cities() []string
}

// RatingService оценки безопасности мест
type RatingService interface {
	SubmitRating(ctx context.Context, rating *models.Rating) error
	LocationRatings(ctx context.Context, lat, lng, radiusDeg float64) models.LocationRatings
	Heatmap(ctx context.Context, box geo.BoundingBox, resolution float64) []models.HeatmapPoint
}

// AlertService SOS-оповещения и живая геолокация
type AlertService interface {
	TriggerSOS(ctx context.Context, req models.SOSRequest) (*models.SOSAlert, error)
	ShareLocation(ctx context.Context, share models.LocationShare) (models.LocationShare, error)
	GetSharedLocation(ctx context.Context, id string) (models.LocationShare, error)
}
