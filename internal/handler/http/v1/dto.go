package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/geo_safety_system/internal/models"
)

// DefaultRadiusDeg радиус поиска вокруг точки, если он не указан (~1.1 км)
const DefaultRadiusDeg = 0.01

// PointQuery DTO координат в query-параметрах
// @Description DTO координат в query-параметрах
type PointQuery struct {
	Latitude  *float64 `form:"lat" validate:"required,latitude"`
	Longitude *float64 `form:"lng" validate:"required,longitude"`
	Radius    float64  `form:"radius" validate:"omitempty,gt=0,lte=1"`
}

// BoxQuery DTO прямоугольной области для тепловой карты
// @Description DTO прямоугольной области для тепловой карты
type BoxQuery struct {
	LatMin     *float64 `form:"lat_min" validate:"required,latitude"`
	LatMax     *float64 `form:"lat_max" validate:"required,latitude"`
	LngMin     *float64 `form:"lng_min" validate:"required,longitude"`
	LngMax     *float64 `form:"lng_max" validate:"required,longitude"`
	Resolution float64  `form:"resolution" validate:"omitempty,gte=0.00001,lte=1"`
}

// CreateIncidentRequest DTO для сообщения об инциденте
// @Description DTO для сообщения об инциденте
type CreateIncidentRequest struct {
	Latitude    *float64   `json:"latitude" validate:"required,latitude"`
	Longitude   *float64   `json:"longitude" validate:"required,longitude"`
	Category    string     `json:"category" validate:"required,oneof=theft assault robbery harassment vandalism burglary violence other"`
	Description string     `json:"description,omitempty" validate:"max=1000"`
	Severity    string     `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
	ReportedBy  string     `json:"reported_by,omitempty"`
}

// IncidentResponse DTO инцидента
// @Description DTO инцидента
type IncidentResponse struct {
	ID          uuid.UUID `json:"id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Severity    string    `json:"severity"`
	OccurredAt  time.Time `json:"occurred_at"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// ScoredIncidentResponse DTO инцидента с оценками
// @Description DTO инцидента с оценками
type ScoredIncidentResponse struct {
	IncidentResponse
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	DangerScore    float64  `json:"danger_score"`
	RecencyScore   float64  `json:"recency_score"`
}

// CrimeNearResponse DTO обстановки вокруг точки
// @Description DTO обстановки вокруг точки
type CrimeNearResponse struct {
	Location  models.LocationContext   `json:"location"`
	Incidents []ScoredIncidentResponse `json:"incidents"`
	Stats     models.CrimeStats        `json:"stats"`
}

// WaypointDTO точка маршрута
type WaypointDTO struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// RouteRequest DTO маршрута
// @Description DTO маршрута
type RouteRequest struct {
	Waypoints []WaypointDTO `json:"waypoints" validate:"required,min=1,max=500,dive"`
}

// RouteRiskRequest DTO маршрута в городе с опасными зонами
// @Description DTO маршрута в городе с опасными зонами
type RouteRiskRequest struct {
	City      string        `json:"city" validate:"required"`
	Waypoints []WaypointDTO `json:"waypoints" validate:"required,min=1,max=500,dive"`
}

// DangerZonesResponse DTO опасных зон города
// @Description DTO опасных зон города
type DangerZonesResponse struct {
	City  string              `json:"city"`
	Zones []models.DangerZone `json:"zones"`
	Count int                 `json:"count"`
}

// CreateRatingRequest DTO оценки безопасности места
// @Description DTO оценки безопасности места
type CreateRatingRequest struct {
	UserID      string   `json:"user_id" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	SafetyScore int      `json:"safety_score" validate:"required,min=1,max=5"`
	Comment     string   `json:"comment,omitempty" validate:"max=300"`
	RouteType   string   `json:"route_type,omitempty" validate:"omitempty,oneof=walking driving cycling public_transport"`
}

// HeatmapResponse DTO тепловой карты
// @Description DTO тепловой карты
type HeatmapResponse struct {
	Points     []models.HeatmapPoint `json:"points"`
	Resolution float64               `json:"resolution"`
}

// SOSRequest DTO экстренного оповещения
// @Description DTO экстренного оповещения
type SOSRequest struct {
	UserID    string   `json:"user_id" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Message   string   `json:"message,omitempty" validate:"max=500"`
}

// ShareLocationRequest DTO живой геолокации. Без id создается новая запись.
// @Description DTO живой геолокации
type ShareLocationRequest struct {
	ID        string   `json:"id,omitempty"`
	UserID    string   `json:"user_id" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}
