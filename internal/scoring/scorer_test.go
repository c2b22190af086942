package scoring

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func daysAgo(d float64) time.Time {
	return testNow.Add(-time.Duration(d * 24 * float64(time.Hour)))
}

func TestSeverityWeight(t *testing.T) {
	cases := map[models.Severity]float64{
		models.SeverityLow:      0.25,
		models.SeverityMedium:   0.5,
		models.SeverityHigh:     0.75,
		models.SeverityCritical: 1.0,
		"":                      0.25,
		"catastrophic":          0.25,
	}
	for sev, want := range cases {
		assert.Equal(t, want, SeverityWeight(sev), "severity %q", sev)
	}
}

func TestMapExternalCategory(t *testing.T) {
	assert.Equal(t, models.CategoryTheft, MapExternalCategory("burglary"))
	assert.Equal(t, models.CategoryAssault, MapExternalCategory("violent-crime"))
	assert.Equal(t, models.CategoryHarassment, MapExternalCategory("Anti-Social-Behaviour"))
	assert.Equal(t, models.CategoryOther, MapExternalCategory("tax-evasion"))
}

func TestMapExternalSeverity(t *testing.T) {
	assert.Equal(t, models.SeverityHigh, MapExternalSeverity("violent-crime"))
	assert.Equal(t, models.SeverityLow, MapExternalSeverity("unknown-key"))
}

func TestExternalTablesStayInsideClosedEnums(t *testing.T) {
	for _, key := range ExternalCategoryKeys() {
		assert.True(t, MapExternalCategory(key).IsValid(), "category for %q", key)
		assert.True(t, MapExternalSeverity(key).IsValid(), "severity for %q", key)
		_, hasSeverity := externalSeverities[key]
		assert.True(t, hasSeverity, "severity table misses %q", key)
	}
}

func TestParseSeverity(t *testing.T) {
	s, ok := ParseSeverity("")
	assert.True(t, ok)
	assert.Equal(t, models.SeverityMedium, s)

	s, ok = ParseSeverity("HIGH")
	assert.True(t, ok)
	assert.Equal(t, models.SeverityHigh, s)

	_, ok = ParseSeverity("extreme")
	assert.False(t, ok)
}

func TestScore_MonotonicInAge(t *testing.T) {
	inc := models.Incident{Severity: models.SeverityHigh}
	prev := 2.0
	for d := 0.0; d <= 45; d += 0.5 {
		inc.OccurredAt = daysAgo(d)
		danger, _ := Score(inc, testNow)
		assert.LessOrEqual(t, danger, prev, "day %v", d)
		prev = danger
	}
}

func TestScore_AfterWindowOnlySeverityRemains(t *testing.T) {
	for _, sev := range []models.Severity{models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical} {
		for _, d := range []float64{30, 31, 400} {
			danger, recency := Score(models.Incident{Severity: sev, OccurredAt: daysAgo(d)}, testNow)
			assert.Zero(t, recency)
			assert.InDelta(t, 0.6*SeverityWeight(sev), danger, 1e-9)
		}
	}
}

func TestScore_FutureTimestampClamped(t *testing.T) {
	_, recency := Score(models.Incident{OccurredAt: testNow.Add(48 * time.Hour)}, testNow)
	assert.Equal(t, 1.0, recency)
}

func TestRank_RecentTheftBeforeOldAssault(t *testing.T) {
	theft := models.Incident{ID: uuid.New(), Category: models.CategoryTheft, Severity: models.SeverityMedium, OccurredAt: daysAgo(1), Latitude: 51.501, Longitude: -0.12}
	assault := models.Incident{ID: uuid.New(), Category: models.CategoryAssault, Severity: models.SeverityHigh, OccurredAt: daysAgo(40), Latitude: 51.5, Longitude: -0.12}

	ranked := Rank([]models.Incident{assault, theft}, testNow, &geo.Point{Lat: 51.5, Lng: -0.12})
	require.Len(t, ranked, 2)

	assert.Equal(t, theft.ID, ranked[0].ID)
	assert.InDelta(t, 0.5*0.6+(29.0/30.0)*0.4, ranked[0].DangerScore, 1e-9)
	assert.InDelta(t, 0.45, ranked[1].DangerScore, 1e-9)

	require.NotNil(t, ranked[1].DistanceMeters)
	assert.Zero(t, *ranked[1].DistanceMeters)
	assert.InDelta(t, 111, *ranked[0].DistanceMeters, 1)
}

func TestRank_StableOnTies(t *testing.T) {
	a := models.Incident{ID: uuid.New(), Severity: models.SeverityLow, OccurredAt: daysAgo(2)}
	b := models.Incident{ID: uuid.New(), Severity: models.SeverityLow, OccurredAt: daysAgo(2)}
	ranked := Rank([]models.Incident{a, b}, testNow, nil)
	assert.Equal(t, a.ID, ranked[0].ID)
	assert.Equal(t, b.ID, ranked[1].ID)
	assert.Nil(t, ranked[0].DistanceMeters)
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil, testNow)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.RecentCount)
	assert.Zero(t, stats.AverageDangerScore)
	assert.Empty(t, stats.ByCategory)
	assert.Empty(t, stats.BySeverity)
	assert.Equal(t, models.SafetySafe, stats.SafetyLevel)
}

func TestAggregate(t *testing.T) {
	incidents := []models.Incident{
		{Category: models.CategoryTheft, Severity: models.SeverityMedium, OccurredAt: daysAgo(1)},
		{Category: models.CategoryTheft, Severity: models.SeverityLow, OccurredAt: daysAgo(10)},
		{Category: models.CategoryAssault, Severity: models.SeverityHigh, OccurredAt: daysAgo(6)},
	}
	stats := Aggregate(incidents, testNow)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByCategory[models.CategoryTheft])
	assert.Equal(t, 1, stats.BySeverity[models.SeverityHigh])
	assert.Equal(t, 2, stats.RecentCount)

	var sum float64
	for _, inc := range incidents {
		d, _ := Score(inc, testNow)
		sum += d
	}
	assert.InDelta(t, sum/3, stats.AverageDangerScore, 1e-9)
}

func TestSafetyLevelFromAverage_Boundaries(t *testing.T) {
	assert.Equal(t, models.SafetySafe, SafetyLevelFromAverage(0.29))
	assert.Equal(t, models.SafetyModerate, SafetyLevelFromAverage(0.3))
	assert.Equal(t, models.SafetyModerate, SafetyLevelFromAverage(0.59))
	assert.Equal(t, models.SafetyDangerous, SafetyLevelFromAverage(0.6))
}

func TestSafetyScoreFromDanger(t *testing.T) {
	assert.Equal(t, 5, SafetyScoreFromDanger(0))
	assert.Equal(t, 1, SafetyScoreFromDanger(1))
	assert.Equal(t, 3, SafetyScoreFromDanger(0.5))
	assert.Equal(t, 5, SafetyScoreFromDanger(-1))
	assert.Equal(t, 1, SafetyScoreFromDanger(2))
}
