package geocode

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/shenikar/geo_safety_system/internal/models"
)

var (
	ErrUnavailable = errors.New("geocoder is not configured")
	ErrNoResults   = errors.New("no geocoding results")
)

// ReverseGeocoder часть клиента Google Maps, нужная резолверу
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleResolver обратное геокодирование через Google Maps Geocoding API
type GoogleResolver struct {
	client ReverseGeocoder
}

func NewGoogleResolver(apiKey string) (*GoogleResolver, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("geocode: create maps client: %w", err)
	}
	return &GoogleResolver{client: client}, nil
}

func NewGoogleResolverWithClient(client ReverseGeocoder) *GoogleResolver {
	return &GoogleResolver{client: client}
}

func (r *GoogleResolver) ReverseGeocode(ctx context.Context, lat, lng float64) (models.LocationContext, error) {
	results, err := r.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return models.LocationContext{}, fmt.Errorf("geocode: reverse geocode: %w", err)
	}
	if len(results) == 0 {
		return models.LocationContext{}, ErrNoResults
	}

	// Первый результат самый точный; недостающие части добираем из остальных.
	loc := models.LocationContext{DisplayName: results[0].FormattedAddress}
	for _, res := range results {
		for _, c := range res.AddressComponents {
			for _, t := range c.Types {
				switch t {
				case "country":
					setOnce(&loc.Country, c.LongName)
				case "locality", "postal_town":
					setOnce(&loc.City, c.LongName)
				case "sublocality", "sublocality_level_1", "neighborhood":
					setOnce(&loc.Suburb, c.LongName)
				case "route":
					setOnce(&loc.Road, c.LongName)
				}
			}
		}
	}
	return loc, nil
}

func setOnce(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// Unavailable резолвер без ключа API, всегда возвращает ошибку
type Unavailable struct{}

func (Unavailable) ReverseGeocode(context.Context, float64, float64) (models.LocationContext, error) {
	return models.LocationContext{}, ErrUnavailable
}
