package news

import (
	"fmt"
	"math"
	"sort"
	"time"

	geojson "github.com/paulmach/go.geojson"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/scoring"
)

const (
	// ZoneCutoffKm зоны дальше max(ZoneCutoffKm, радиус зоны) от точки не учитываются
	ZoneCutoffKm = 2.0
	// RiskFactorThreshold минимальный риск, попадающий в объяснение маршрута
	RiskFactorThreshold = 0.3
)

type zoneShape struct {
	radiusKm   float64
	decayHours float64
	safety     int
}

var zoneShapes = map[models.Severity]zoneShape{
	models.SeverityCritical: {radiusKm: 2.0, decayHours: 72, safety: 1},
	models.SeverityHigh:     {radiusKm: 1.5, decayHours: 48, safety: 2},
	models.SeverityMedium:   {radiusKm: 1.0, decayHours: 24, safety: 3},
	models.SeverityLow:      {radiusKm: 0.5, decayHours: 12, safety: 4},
}

var defaultZoneShape = zoneShape{radiusKm: 1.0, decayHours: 24, safety: 3}

func shapeFor(s models.Severity) zoneShape {
	if shape, ok := zoneShapes[s]; ok {
		return shape
	}
	return defaultZoneShape
}

// ToDangerZones строит по зоне на каждую пару (статья, место) с уверенностью выше 0.3.
// Статьи должны быть заранее отфильтрованы по релевантности.
func ToDangerZones(articles []models.Article, city City) []models.DangerZone {
	var zones []models.DangerZone
	for _, a := range articles {
		severity := SeverityOf(a)
		shape := shapeFor(severity)
		for i, loc := range ExtractLocations(a, city) {
			if loc.Confidence <= minZoneConfidence {
				continue
			}
			zones = append(zones, models.DangerZone{
				ID:             fmt.Sprintf("%s-%d", a.ID, i),
				City:           city.Key,
				Title:          a.Title,
				Latitude:       loc.Point.Lat,
				Longitude:      loc.Point.Lng,
				Severity:       severity,
				RadiusKm:       shape.radiusKm,
				DecayRateHours: shape.decayHours,
				Confidence:     loc.Confidence,
				PublishedAt:    a.PublishedAt,
				SafetyScore:    shape.safety,
			})
		}
	}
	return zones
}

// RiskAt риск зоны в точке: базовый риск * затухание по расстоянию * затухание по времени * уверенность
func RiskAt(p geo.Point, zone models.DangerZone, now time.Time) float64 {
	risk, _ := riskWithDistance(p, zone, now)
	return risk
}

func riskWithDistance(p geo.Point, zone models.DangerZone, now time.Time) (float64, float64) {
	d := geo.DistanceKm(p.Lat, p.Lng, zone.Latitude, zone.Longitude)
	if d > math.Max(ZoneCutoffKm, zone.RadiusKm) || zone.RadiusKm <= 0 {
		return 0, d
	}

	distanceDecay := math.Max(0, 1-d/zone.RadiusKm)

	hours := math.Max(0, now.Sub(zone.PublishedAt).Hours())
	decay := zone.DecayRateHours
	if decay <= 0 {
		decay = defaultZoneShape.decayHours
	}
	timeDecay := math.Exp(-hours / decay)

	return scoring.SeverityWeight(zone.Severity) * distanceDecay * timeDecay * zone.Confidence, d
}

// RouteRisk суммирует риск зон по всем точкам маршрута и переводит его в шкалу 1..5
func RouteRisk(points []geo.Point, zones []models.DangerZone, now time.Time) models.RouteRisk {
	res := models.RouteRisk{SafetyScore: 5, RiskFactors: []models.RiskFactor{}}
	if len(points) == 0 {
		return res
	}

	for i, p := range points {
		for _, z := range zones {
			risk, d := riskWithDistance(p, z, now)
			if risk == 0 {
				continue
			}
			res.TotalRisk += risk
			if risk > RiskFactorThreshold {
				res.RiskFactors = append(res.RiskFactors, models.RiskFactor{
					ZoneID:     z.ID,
					Title:      z.Title,
					Severity:   z.Severity,
					PointIndex: i,
					DistanceKm: d,
					Risk:       risk,
				})
			}
		}
	}

	maxPossible := float64(len(points))
	res.SafetyScore = math.Max(1, 5-4*res.TotalRisk/maxPossible)
	sort.SliceStable(res.RiskFactors, func(i, j int) bool {
		return res.RiskFactors[i].Risk > res.RiskFactors[j].Risk
	})
	return res
}

// ZonesFeatureCollection экспорт зон в GeoJSON, радиус передается свойством
func ZonesFeatureCollection(zones []models.DangerZone) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, z := range zones {
		f := geojson.NewPointFeature([]float64{z.Longitude, z.Latitude})
		f.ID = z.ID
		f.SetProperty("title", z.Title)
		f.SetProperty("severity", string(z.Severity))
		f.SetProperty("radius_km", z.RadiusKm)
		f.SetProperty("confidence", z.Confidence)
		f.SetProperty("safety_score", z.SafetyScore)
		f.SetProperty("published_at", z.PublishedAt.Format(time.RFC3339))
		fc.AddFeature(f)
	}
	return fc
}
