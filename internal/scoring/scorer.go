package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
)

const (
	severityFactor = 0.6
	recencyFactor  = 0.4

	// RecencyWindowDays после этого срока инцидент перестает быть "свежим"
	RecencyWindowDays = 30.0
	// RecentDays окно для счетчика недавних инцидентов
	RecentDays = 7

	moderateThreshold  = 0.3
	dangerousThreshold = 0.6
)

// RecencyScore линейно убывает от 1 до 0 за 30 дней
func RecencyScore(occurredAt, now time.Time) float64 {
	days := now.Sub(occurredAt).Hours() / 24
	return clamp01(1 - days/RecencyWindowDays)
}

// Score возвращает (dangerScore, recencyScore) для инцидента
func Score(inc models.Incident, now time.Time) (float64, float64) {
	recency := RecencyScore(inc.OccurredAt, now)
	danger := SeverityWeight(inc.Severity)*severityFactor + recency*recencyFactor
	return danger, recency
}

// Rank оценивает инциденты и сортирует по убыванию опасности.
// При равенстве сохраняется исходный порядок. ref может быть nil.
func Rank(incidents []models.Incident, now time.Time, ref *geo.Point) []models.ScoredIncident {
	scored := make([]models.ScoredIncident, len(incidents))
	for i, inc := range incidents {
		danger, recency := Score(inc, now)
		scored[i] = models.ScoredIncident{
			Incident:     inc,
			DangerScore:  danger,
			RecencyScore: recency,
		}
		if ref != nil {
			d := geo.DistanceMeters(ref.Lat, ref.Lng, inc.Latitude, inc.Longitude)
			scored[i].DistanceMeters = &d
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].DangerScore > scored[j].DangerScore
	})
	return scored
}

// Aggregate группирует инциденты и считает средний уровень опасности
func Aggregate(incidents []models.Incident, now time.Time) models.CrimeStats {
	stats := models.CrimeStats{
		ByCategory: make(map[models.Category]int),
		BySeverity: make(map[models.Severity]int),
	}
	recentSince := now.AddDate(0, 0, -RecentDays)

	var sum float64
	for _, inc := range incidents {
		stats.Total++
		stats.ByCategory[inc.Category]++
		stats.BySeverity[inc.Severity]++
		if !inc.OccurredAt.Before(recentSince) {
			stats.RecentCount++
		}
		danger, _ := Score(inc, now)
		sum += danger
	}
	if stats.Total > 0 {
		stats.AverageDangerScore = sum / float64(stats.Total)
	}
	stats.SafetyLevel = SafetyLevelFromAverage(stats.AverageDangerScore)
	return stats
}

// SafetyLevelFromAverage: <0.3 safe, [0.3, 0.6) moderate, >=0.6 dangerous
func SafetyLevelFromAverage(avg float64) models.SafetyLevel {
	switch {
	case avg < moderateThreshold:
		return models.SafetySafe
	case avg < dangerousThreshold:
		return models.SafetyModerate
	default:
		return models.SafetyDangerous
	}
}

// SafetyScoreFromDanger переводит 0..1 в пользовательскую шкалу 1..5
func SafetyScoreFromDanger(danger float64) int {
	s := int(math.Round((1-danger)*4 + 1))
	if s < 1 {
		return 1
	}
	if s > 5 {
		return 5
	}
	return s
}

func meanDanger(incidents []models.Incident, now time.Time) float64 {
	if len(incidents) == 0 {
		return 0
	}
	var sum float64
	for _, inc := range incidents {
		d, _ := Score(inc, now)
		sum += d
	}
	return sum / float64(len(incidents))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
