package heatmap

import (
	"math"
	"sort"

	geojson "github.com/paulmach/go.geojson"

	"github.com/shenikar/geo_safety_system/internal/models"
)

const (
	// DefaultResolution шаг сетки в градусах (~110 м)
	DefaultResolution = 0.001
	// MinResolution самый мелкий шаг сетки (~1 м); номер ячейки при нем укладывается в int64
	MinResolution = 0.00001
	// RatingWindowDays в тепловую карту попадают только оценки за этот срок
	RatingWindowDays = 90
	maxSafetyScore   = 5.0
)

type cellKey struct {
	lat, lng int64
}

// Cells раскладывает оценки по ячейкам сетки. Ключом служит номер ячейки,
// чтобы две близкие точки не разошлись из-за ошибки округления.
func Cells(ratings []models.Rating, resolution float64) []models.HeatmapCell {
	if resolution < MinResolution || math.IsNaN(resolution) {
		resolution = DefaultResolution
	}

	groups := make(map[cellKey]*models.HeatmapCell)
	for _, r := range ratings {
		key := cellKey{
			lat: int64(math.Round(r.Latitude / resolution)),
			lng: int64(math.Round(r.Longitude / resolution)),
		}
		cell, ok := groups[key]
		if !ok {
			cell = &models.HeatmapCell{
				GridLat: float64(key.lat) * resolution,
				GridLng: float64(key.lng) * resolution,
			}
			groups[key] = cell
		}
		cell.Scores = append(cell.Scores, r.SafetyScore)
		cell.Count++
	}

	cells := make([]models.HeatmapCell, 0, len(groups))
	for _, c := range groups {
		cells = append(cells, *c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].GridLat != cells[j].GridLat {
			return cells[i].GridLat < cells[j].GridLat
		}
		return cells[i].GridLng < cells[j].GridLng
	})
	return cells
}

// Build считает среднюю оценку и интенсивность по каждой ячейке
func Build(ratings []models.Rating, resolution float64) []models.HeatmapPoint {
	cells := Cells(ratings, resolution)
	points := make([]models.HeatmapPoint, 0, len(cells))
	for _, c := range cells {
		var sum int
		for _, s := range c.Scores {
			sum += s
		}
		avg := float64(sum) / float64(c.Count)
		points = append(points, models.HeatmapPoint{
			Latitude:     c.GridLat,
			Longitude:    c.GridLng,
			AverageScore: avg,
			Intensity:    avg / maxSafetyScore,
			RatingCount:  c.Count,
		})
	}
	return points
}

// FeatureCollection экспорт тепловой карты в GeoJSON
func FeatureCollection(points []models.HeatmapPoint) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, p := range points {
		f := geojson.NewPointFeature([]float64{p.Longitude, p.Latitude})
		f.SetProperty("average_score", p.AverageScore)
		f.SetProperty("intensity", p.Intensity)
		f.SetProperty("rating_count", p.RatingCount)
		fc.AddFeature(f)
	}
	return fc
}
