package feed

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/geo_safety_system/internal/models"
)

const syntheticCellDeg = 0.01

// Synthetic демо-генератор инцидентов для работы без живого источника.
// Данные не являются достоверными и помечаются источником global-synthetic.
// Для одной и той же области и дня результат одинаков.
type Synthetic struct {
	maxPerArea int
	now        func() time.Time
}

func NewSynthetic() *Synthetic {
	return &Synthetic{maxPerArea: 5, now: time.Now}
}

func (s *Synthetic) Name() string {
	return models.SourceGlobalSynthetic
}

var syntheticDescriptions = map[models.Category]string{
	models.CategoryTheft:      "Phone snatched from a pedestrian",
	models.CategoryAssault:    "Physical altercation reported",
	models.CategoryRobbery:    "Street robbery reported",
	models.CategoryHarassment: "Verbal harassment reported",
	models.CategoryVandalism:  "Property damage reported",
	models.CategoryBurglary:   "Break-in reported",
	models.CategoryViolence:   "Violent disturbance reported",
	models.CategoryOther:      "Suspicious activity reported",
}

var syntheticSeverities = []models.Severity{
	models.SeverityLow, models.SeverityLow, models.SeverityMedium,
	models.SeverityMedium, models.SeverityHigh, models.SeverityCritical,
}

func (s *Synthetic) Incidents(ctx context.Context, q models.IncidentQuery) ([]models.Incident, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	day := now.Truncate(24 * time.Hour)

	cellLat := int64(math.Round(q.Center.Lat / syntheticCellDeg))
	cellLng := int64(math.Round(q.Center.Lng / syntheticCellDeg))
	area := fmt.Sprintf("%d:%d:%d", cellLat, cellLng, day.Unix())

	h := fnv.New64a()
	h.Write([]byte(area))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	n := rng.Intn(s.maxPerArea + 1)
	if q.Limit > 0 && n > q.Limit {
		n = q.Limit
	}

	incidents := make([]models.Incident, 0, n)
	for i := 0; i < n; i++ {
		category := models.Categories[rng.Intn(len(models.Categories))]
		externalID := fmt.Sprintf("%s:%d", area, i)
		occurred := now.Add(-time.Duration(rng.Int63n(int64(30 * 24 * time.Hour))))

		incidents = append(incidents, models.Incident{
			ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte(externalID)),
			ExternalID:  externalID,
			Latitude:    q.Box.LatMin + rng.Float64()*(q.Box.LatMax-q.Box.LatMin),
			Longitude:   q.Box.LngMin + rng.Float64()*(q.Box.LngMax-q.Box.LngMin),
			Category:    category,
			Severity:    syntheticSeverities[rng.Intn(len(syntheticSeverities))],
			Description: syntheticDescriptions[category],
			OccurredAt:  occurred,
			Source:      models.SourceGlobalSynthetic,
			CreatedAt:   occurred,
		})
	}
	return incidents, nil
}
