package news

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/metrics"
	"github.com/shenikar/geo_safety_system/internal/models"
)

var ErrUnknownCity = errors.New("unknown city")

// Extractor превращает новости города в опасные зоны и оценивает по ним маршруты
type Extractor struct {
	source    ArticleSource
	gazetteer Gazetteer
	cache     *ZoneCache
	logger    *logrus.Logger
	now       func() time.Time
}

func NewExtractor(source ArticleSource, gazetteer Gazetteer, cache *ZoneCache, logger *logrus.Logger) *Extractor {
	return &Extractor{
		source:    source,
		gazetteer: gazetteer,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

// Cities ключи городов, для которых доступны зоны
func (e *Extractor) Cities() []string {
	return e.gazetteer.Keys()
}

func (e *Extractor) loader(city City) ZoneLoader {
	return func(ctx context.Context) ([]models.DangerZone, error) {
		articles, err := e.source.FetchArticles(ctx, city)
		if err != nil {
			metrics.ZoneRefreshTotal.WithLabelValues(city.Key, "error").Inc()
			return nil, fmt.Errorf("news: fetch articles: %w", err)
		}
		zones := ToDangerZones(FilterRelevant(articles), city)
		metrics.ZoneRefreshTotal.WithLabelValues(city.Key, "ok").Inc()

		e.logger.WithFields(logrus.Fields{
			"component": "news",
			"city":      city.Key,
			"articles":  len(articles),
			"zones":     len(zones),
		}).Info("danger zones recomputed")
		return zones, nil
	}
}

// DangerZones зоны города из кэша. Если пересчет не удался, отдаются
// последние известные зоны (или пустой список), ошибка только логируется.
func (e *Extractor) DangerZones(ctx context.Context, cityKey string) ([]models.DangerZone, error) {
	city, ok := e.gazetteer.Lookup(cityKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, cityKey)
	}

	zones, err := e.cache.Get(ctx, city.Key, e.loader(city))
	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"component": "news",
			"method":    "DangerZones",
			"city":      city.Key,
		}).WithError(err).Warn("danger zone refresh failed, serving cached zones")
	}
	if zones == nil {
		zones = []models.DangerZone{}
	}
	return zones, nil
}

// Refresh принудительный пересчет зон города
func (e *Extractor) Refresh(ctx context.Context, cityKey string) error {
	city, ok := e.gazetteer.Lookup(cityKey)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCity, cityKey)
	}
	_, err := e.cache.Refresh(ctx, city.Key, e.loader(city))
	return err
}

// RouteRisk риск маршрута по опасным зонам города
func (e *Extractor) RouteRisk(ctx context.Context, cityKey string, points []geo.Point) (models.RouteRisk, error) {
	zones, err := e.DangerZones(ctx, cityKey)
	if err != nil {
		return models.RouteRisk{}, err
	}
	return RouteRisk(points, zones, e.now()), nil
}
