package models

import (
	"time"

	"github.com/shenikar/geo_safety_system/internal/geo"
)

type SafetyLevel string

const (
	SafetySafe      SafetyLevel = "safe"
	SafetyModerate  SafetyLevel = "moderate"
	SafetyDangerous SafetyLevel = "dangerous"
)

// CrimeStats агрегат по набору инцидентов
type CrimeStats struct {
	Total              int              `json:"total"`
	ByCategory         map[Category]int `json:"by_category"`
	BySeverity         map[Severity]int `json:"by_severity"`
	RecentCount        int              `json:"recent_count"`
	AverageDangerScore float64          `json:"average_danger_score"`
	SafetyLevel        SafetyLevel      `json:"safety_level"`
}

// LocationContext сведения о месте, полученные обратным геокодированием
type LocationContext struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	Suburb      string `json:"suburb"`
	Road        string `json:"road"`
	DisplayName string `json:"display_name"`
}

const UnknownPlace = "Unknown"

// UnknownLocation заглушка на случай отказа геокодера
func UnknownLocation() LocationContext {
	return LocationContext{
		Country:     UnknownPlace,
		City:        UnknownPlace,
		Suburb:      UnknownPlace,
		Road:        UnknownPlace,
		DisplayName: UnknownPlace,
	}
}

// CrimeReport ответ "что происходит рядом с точкой"
type CrimeReport struct {
	Location  LocationContext  `json:"location"`
	Incidents []ScoredIncident `json:"incidents"`
	Stats     CrimeStats       `json:"stats"`
}

type RouteSafety struct {
	SafetyScore    int     `json:"safety_score"`
	DangerScore    float64 `json:"danger_score"`
	PointsAnalyzed int     `json:"points_analyzed"`
}

type RouteSegment struct {
	Start         geo.Point `json:"start"`
	End           geo.Point `json:"end"`
	Midpoint      geo.Point `json:"midpoint"`
	IncidentCount int       `json:"incident_count"`
	DangerScore   float64   `json:"danger_score"`
}

// LocationShare запись живой геолокации, ограниченная по времени
type LocationShare struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SOSRequest входные данные экстренного оповещения
type SOSRequest struct {
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Message   string  `json:"message"`
}

// SOSAlert обогащенное оповещение, уходящее в очередь вебхуков
type SOSAlert struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Latitude        float64         `json:"latitude"`
	Longitude       float64         `json:"longitude"`
	Message         string          `json:"message"`
	Location        LocationContext `json:"location"`
	NearbyIncidents int             `json:"nearby_incidents"`
	SafetyLevel     SafetyLevel     `json:"safety_level"`
	CreatedAt       time.Time       `json:"created_at"`
}
