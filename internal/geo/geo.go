package geo

import (
	"github.com/golang/geo/s2"
)

const (
	// EarthRadiusMeters средний радиус Земли
	EarthRadiusMeters = 6371000.0
	// EarthRadiusKm тот же радиус в километрах
	EarthRadiusKm = 6371.0
	// KmPerDegree длина одного градуса широты
	KmPerDegree = 111.32
)

// Point географическая точка в градусах
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceMeters возвращает расстояние по большому кругу (формула гаверсинусов)
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lng1)
	b := s2.LatLngFromDegrees(lat2, lng2)
	return a.Distance(b).Radians() * EarthRadiusMeters
}

// DistanceKm то же, что DistanceMeters, но в километрах
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	return DistanceMeters(lat1, lng1, lat2, lng2) / 1000
}

// Distance расстояние между двумя точками в метрах
func Distance(a, b Point) float64 {
	return DistanceMeters(a.Lat, a.Lng, b.Lat, b.Lng)
}

// Midpoint среднее арифметическое координат. На коротких отрезках маршрута
// отличие от геодезической середины пренебрежимо мало.
func Midpoint(a, b Point) Point {
	return Point{
		Lat: (a.Lat + b.Lat) / 2,
		Lng: (a.Lng + b.Lng) / 2,
	}
}

// KmToDegrees переводит километры в градусы широты.
// Единственное место, где радиус в км превращается в радиус ограничивающего прямоугольника.
func KmToDegrees(km float64) float64 {
	return km / KmPerDegree
}

// ValidCoordinates широта в [-90, 90], долгота в [-180, 180], без NaN
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
