package models

import "time"

// Article новостная статья из внешнего источника
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// DangerZone круговая зона повышенного риска, выведенная из статьи.
// Хранится только в памяти процесса.
type DangerZone struct {
	ID             string    `json:"id"`
	City           string    `json:"city"`
	Title          string    `json:"title"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Severity       Severity  `json:"severity"`
	RadiusKm       float64   `json:"radius_km"`
	DecayRateHours float64   `json:"decay_rate_hours"`
	Confidence     float64   `json:"confidence"`
	PublishedAt    time.Time `json:"published_at"`
	SafetyScore    int       `json:"safety_score"`
}

type RiskFactor struct {
	ZoneID     string   `json:"zone_id"`
	Title      string   `json:"title"`
	Severity   Severity `json:"severity"`
	PointIndex int      `json:"point_index"`
	DistanceKm float64  `json:"distance_km"`
	Risk       float64  `json:"risk"`
}

type RouteRisk struct {
	SafetyScore float64      `json:"safety_score"`
	TotalRisk   float64      `json:"total_risk"`
	RiskFactors []RiskFactor `json:"risk_factors"`
}
