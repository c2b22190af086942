package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidRating возвращается на пути записи при некорректной оценке
var ErrInvalidRating = errors.New("invalid rating")

const MaxCommentLength = 300

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// TimeOfDayFor вычисляет время суток по часу на стене
func TimeOfDayFor(t time.Time) TimeOfDay {
	h := t.Hour()
	switch {
	case h >= 5 && h < 12:
		return Morning
	case h >= 12 && h < 17:
		return Afternoon
	case h >= 17 && h < 21:
		return Evening
	default:
		return Night
	}
}

// DayOfWeekFor день недели в нижнем регистре
func DayOfWeekFor(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

type RouteType string

const (
	RouteWalking         RouteType = "walking"
	RouteDriving         RouteType = "driving"
	RouteCycling         RouteType = "cycling"
	RoutePublicTransport RouteType = "public_transport"
)

func (r RouteType) IsValid() bool {
	switch r {
	case RouteWalking, RouteDriving, RouteCycling, RoutePublicTransport:
		return true
	}
	return false
}

type Rating struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	SafetyScore int       `json:"safety_score"`
	Comment     string    `json:"comment,omitempty"`
	TimeOfDay   TimeOfDay `json:"time_of_day"`
	DayOfWeek   string    `json:"day_of_week"`
	RouteType   RouteType `json:"route_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// LocationRatings оценки вокруг точки
type LocationRatings struct {
	Ratings      []Rating `json:"ratings"`
	AverageScore float64  `json:"average_score"`
	Count        int      `json:"count"`
}

// HeatmapCell промежуточная ячейка сетки
type HeatmapCell struct {
	GridLat float64 `json:"grid_lat"`
	GridLng float64 `json:"grid_lng"`
	Scores  []int   `json:"scores"`
	Count   int     `json:"count"`
}

// HeatmapPoint итог по ячейке
type HeatmapPoint struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	AverageScore float64 `json:"average_score"`
	Intensity    float64 `json:"intensity"`
	RatingCount  int     `json:"rating_count"`
}
