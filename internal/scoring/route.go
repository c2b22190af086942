package scoring

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
)

const (
	// MaxRouteSamples максимум точек маршрута, для которых запрашиваются инциденты
	MaxRouteSamples = 10
	// RoutePointRadiusDeg радиус поиска вокруг точки маршрута (градусы, ~550 м)
	RoutePointRadiusDeg = 0.005
	// SegmentRadiusDeg радиус поиска вокруг середины отрезка (градусы, ~220 м)
	SegmentRadiusDeg = 0.002

	maxConcurrentLookups = 4
)

// IncidentFinder источник инцидентов вокруг точки. Отказы источников
// обрабатываются внутри реализации, наружу отдаются только доступные данные.
type IncidentFinder interface {
	IncidentsNear(ctx context.Context, lat, lng, radiusDeg float64) []models.Incident
}

// SampleIndexes равномерная выборка не более MaxRouteSamples индексов
func SampleIndexes(n int) []int {
	stride := n / MaxRouteSamples
	if stride < 1 {
		stride = 1
	}
	idx := make([]int, 0, MaxRouteSamples)
	for i := 0; i < n && len(idx) < MaxRouteSamples; i += stride {
		idx = append(idx, i)
	}
	return idx
}

// RouteSafetyScore оценивает безопасность маршрута по выборке точек
func RouteSafetyScore(ctx context.Context, finder IncidentFinder, waypoints []geo.Point, now time.Time) (models.RouteSafety, error) {
	samples := SampleIndexes(len(waypoints))
	if len(samples) == 0 {
		return models.RouteSafety{SafetyScore: 5}, nil
	}

	dangers := make([]float64, len(samples))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, wpIdx := range samples {
		p := waypoints[wpIdx]
		g.Go(func() error {
			incidents := finder.IncidentsNear(gctx, p.Lat, p.Lng, RoutePointRadiusDeg)
			dangers[i] = meanDanger(incidents, now)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return models.RouteSafety{}, err
	}

	var sum float64
	for _, d := range dangers {
		sum += d
	}
	avg := sum / float64(len(dangers))

	return models.RouteSafety{
		SafetyScore:    SafetyScoreFromDanger(avg),
		DangerScore:    avg,
		PointsAnalyzed: len(samples),
	}, nil
}

// SegmentAnalysis оценивает каждый отрезок между соседними точками
func SegmentAnalysis(ctx context.Context, finder IncidentFinder, waypoints []geo.Point, now time.Time) ([]models.RouteSegment, error) {
	if len(waypoints) < 2 {
		return []models.RouteSegment{}, nil
	}

	segments := make([]models.RouteSegment, len(waypoints)-1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i := 0; i < len(waypoints)-1; i++ {
		start, end := waypoints[i], waypoints[i+1]
		g.Go(func() error {
			mid := geo.Midpoint(start, end)
			incidents := finder.IncidentsNear(gctx, mid.Lat, mid.Lng, SegmentRadiusDeg)
			segments[i] = models.RouteSegment{
				Start:         start,
				End:           end,
				Midpoint:      mid,
				IncidentCount: len(incidents),
				DangerScore:   meanDanger(incidents, now),
			}
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return segments, nil
}
