package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_safety_system/internal/geo"
)

// ErrInvalidIncident возвращается на пути записи при некорректных данных инцидента
var ErrInvalidIncident = errors.New("invalid incident")

type Category string

const (
	CategoryTheft      Category = "theft"
	CategoryAssault    Category = "assault"
	CategoryRobbery    Category = "robbery"
	CategoryHarassment Category = "harassment"
	CategoryVandalism  Category = "vandalism"
	CategoryBurglary   Category = "burglary"
	CategoryViolence   Category = "violence"
	CategoryOther      Category = "other"
)

// Categories закрытый набор категорий
var Categories = []Category{
	CategoryTheft, CategoryAssault, CategoryRobbery, CategoryHarassment,
	CategoryVandalism, CategoryBurglary, CategoryViolence, CategoryOther,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryTheft, CategoryAssault, CategoryRobbery, CategoryHarassment,
		CategoryVandalism, CategoryBurglary, CategoryViolence, CategoryOther:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

const (
	SourceLocal           = "local"
	SourceGlobalSynthetic = "global-synthetic"
)

type Incident struct {
	ID          uuid.UUID `json:"id"`
	ExternalID  string    `json:"external_id,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	OccurredAt  time.Time `json:"occurred_at"`
	Source      string    `json:"source"`
	ReportedBy  *string   `json:"reported_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DedupKey идентичность инцидента при слиянии источников
func (i *Incident) DedupKey() string {
	if i.ExternalID != "" {
		return i.Source + ":" + i.ExternalID
	}
	return i.ID.String()
}

// IncidentQuery запрос к хранилищу/провайдеру инцидентов
type IncidentQuery struct {
	Center    geo.Point       `json:"center"`
	RadiusDeg float64         `json:"radius_deg"`
	Box       geo.BoundingBox `json:"box"`
	Since     time.Time       `json:"since"`
	Limit     int             `json:"limit"`
}

// ScoredIncident инцидент с вычисленными оценками, живет в пределах запроса
type ScoredIncident struct {
	Incident
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	DangerScore    float64  `json:"danger_score"`
	RecencyScore   float64  `json:"recency_score"`
}
