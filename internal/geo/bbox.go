package geo

import "math"

// BoundingBox прямоугольный диапазон координат
type BoundingBox struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LngMin float64 `json:"lng_min"`
	LngMax float64 `json:"lng_max"`
}

// BoxAround строит квадрат [lat-r, lat+r] x [lng-r, lng+r], r в градусах
func BoxAround(lat, lng, radiusDeg float64) BoundingBox {
	r := math.Abs(radiusDeg)
	return BoundingBox{
		LatMin: math.Max(-90, lat-r),
		LatMax: math.Min(90, lat+r),
		LngMin: math.Max(-180, lng-r),
		LngMax: math.Min(180, lng+r),
	}
}

// Contains включает границы
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax && lng >= b.LngMin && lng <= b.LngMax
}

// Center центр прямоугольника
func (b BoundingBox) Center() Point {
	return Point{Lat: (b.LatMin + b.LatMax) / 2, Lng: (b.LngMin + b.LngMax) / 2}
}

// Valid проверяет порядок и диапазоны границ
func (b BoundingBox) Valid() bool {
	return b.LatMin <= b.LatMax && b.LngMin <= b.LngMax &&
		b.LatMin >= -90 && b.LatMax <= 90 && b.LngMin >= -180 && b.LngMax <= 180
}
