package news

import (
	"sort"
	"strings"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
)

const (
	placeMatchConfidence = 0.8
	cityCenterConfidence = 0.5
	minZoneConfidence    = 0.3
)

// Place известное название района/улицы с координатами
type Place struct {
	Name  string
	Point geo.Point
}

// City город, для которого строятся опасные зоны
type City struct {
	Key    string
	Name   string
	Center geo.Point
	Places []Place
}

// ExtractedLocation место, найденное в тексте статьи
type ExtractedLocation struct {
	Name       string
	Point      geo.Point
	Confidence float64
}

// Gazetteer справочник городов по ключу
type Gazetteer map[string]City

// DefaultGazetteer встроенный справочник
func DefaultGazetteer() Gazetteer {
	cities := []City{
		{
			Key: "london", Name: "London", Center: geo.Point{Lat: 51.5074, Lng: -0.1278},
			Places: []Place{
				{"Westminster", geo.Point{Lat: 51.4975, Lng: -0.1357}},
				{"Camden", geo.Point{Lat: 51.5390, Lng: -0.1426}},
				{"Soho", geo.Point{Lat: 51.5136, Lng: -0.1365}},
				{"Hackney", geo.Point{Lat: 51.5450, Lng: -0.0553}},
				{"Brixton", geo.Point{Lat: 51.4613, Lng: -0.1156}},
				{"Shoreditch", geo.Point{Lat: 51.5265, Lng: -0.0780}},
				{"Peckham", geo.Point{Lat: 51.4740, Lng: -0.0690}},
				{"Croydon", geo.Point{Lat: 51.3762, Lng: -0.0982}},
				{"Tottenham", geo.Point{Lat: 51.5975, Lng: -0.0681}},
				{"King's Cross", geo.Point{Lat: 51.5308, Lng: -0.1238}},
			},
		},
		{
			Key: "new-york", Name: "New York", Center: geo.Point{Lat: 40.7128, Lng: -74.0060},
			Places: []Place{
				{"Times Square", geo.Point{Lat: 40.7580, Lng: -73.9855}},
				{"Harlem", geo.Point{Lat: 40.8116, Lng: -73.9465}},
				{"Brooklyn", geo.Point{Lat: 40.6782, Lng: -73.9442}},
				{"Bronx", geo.Point{Lat: 40.8448, Lng: -73.8648}},
				{"Queens", geo.Point{Lat: 40.7282, Lng: -73.7949}},
				{"Manhattan", geo.Point{Lat: 40.7831, Lng: -73.9712}},
				{"Staten Island", geo.Point{Lat: 40.5795, Lng: -74.1502}},
				{"Central Park", geo.Point{Lat: 40.7829, Lng: -73.9654}},
				{"Chinatown", geo.Point{Lat: 40.7158, Lng: -73.9970}},
			},
		},
		{
			Key: "mumbai", Name: "Mumbai", Center: geo.Point{Lat: 19.0760, Lng: 72.8777},
			Places: []Place{
				{"Andheri", geo.Point{Lat: 19.1136, Lng: 72.8697}},
				{"Bandra", geo.Point{Lat: 19.0596, Lng: 72.8295}},
				{"Colaba", geo.Point{Lat: 18.9067, Lng: 72.8147}},
				{"Dadar", geo.Point{Lat: 19.0178, Lng: 72.8478}},
				{"Dharavi", geo.Point{Lat: 19.0380, Lng: 72.8538}},
				{"Kurla", geo.Point{Lat: 19.0726, Lng: 72.8845}},
				{"Juhu", geo.Point{Lat: 19.1075, Lng: 72.8263}},
				{"Powai", geo.Point{Lat: 19.1176, Lng: 72.9060}},
			},
		},
	}

	g := make(Gazetteer, len(cities))
	for _, c := range cities {
		g[c.Key] = c
	}
	return g
}

// Lookup ищет город по ключу без учета регистра
func (g Gazetteer) Lookup(key string) (City, bool) {
	c, ok := g[strings.ToLower(strings.TrimSpace(key))]
	return c, ok
}

// Keys отсортированный список ключей городов
func (g Gazetteer) Keys() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExtractLocations ищет известные места города в тексте статьи простым
// сравнением подстрок. Без совпадений возвращается центр города.
func ExtractLocations(a models.Article, city City) []ExtractedLocation {
	text := strings.ToLower(articleText(a))

	var found []ExtractedLocation
	for _, p := range city.Places {
		if strings.Contains(text, strings.ToLower(p.Name)) {
			found = append(found, ExtractedLocation{
				Name:       p.Name,
				Point:      p.Point,
				Confidence: placeMatchConfidence,
			})
		}
	}
	if len(found) > 0 {
		return found
	}
	return []ExtractedLocation{{
		Name:       city.Name,
		Point:      city.Center,
		Confidence: cityCenterConfidence,
	}}
}
