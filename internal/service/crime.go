package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/metrics"
	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/scoring"
)

const (
	// IncidentWindowDays в выдачу попадают инциденты не старше этого срока
	IncidentWindowDays = 30
	// IncidentLimit максимум записей из хранилища на один запрос
	IncidentLimit = 50

	defaultProviderTimeout = 3 * time.Second
	storeProviderName      = "local"
)

// storeProvider подключает хранилище как первый источник в общем слиянии
type storeProvider struct {
	store IncidentStore
}

func (p storeProvider) Name() string { return storeProviderName }

func (p storeProvider) Incidents(ctx context.Context, q models.IncidentQuery) ([]models.Incident, error) {
	return p.store.Find(ctx, q)
}

type crimeService struct {
	providers       []IncidentProvider
	store           IncidentStore
	resolver        LocationResolver
	providerTimeout time.Duration
	logger          *logrus.Logger
	now             func() time.Time
}

// NewCrimeService собирает сервис агрегации. Хранилище опрашивается первым,
// за ним дополнительные источники в порядке передачи.
func NewCrimeService(
	store IncidentStore,
	providers []IncidentProvider,
	resolver LocationResolver,
	providerTimeout time.Duration,
	logger *logrus.Logger,
) CrimeService {
	if providerTimeout <= 0 {
		providerTimeout = defaultProviderTimeout
	}
	all := make([]IncidentProvider, 0, len(providers)+1)
	all = append(all, storeProvider{store: store})
	all = append(all, providers...)

	return &crimeService{
		providers:       all,
		store:           store,
		resolver:        resolver,
		providerTimeout: providerTimeout,
		logger:          logger,
		now:             time.Now,
	}
}

// IncidentsNear опрашивает все источники параллельно, каждый с ограничением по времени.
// Отказавший источник пропускается; результат объединяется без дублей.
func (s *crimeService) IncidentsNear(ctx context.Context, lat, lng, radiusDeg float64) []models.Incident {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "crime",
		"method":     "IncidentsNear",
		"lat":        lat,
		"lng":        lng,
		"radius_deg": radiusDeg,
	})

	q := models.IncidentQuery{
		Center:    geo.Point{Lat: lat, Lng: lng},
		RadiusDeg: radiusDeg,
		Box:       geo.BoxAround(lat, lng, radiusDeg),
		Since:     s.now().AddDate(0, 0, -IncidentWindowDays),
		Limit:     IncidentLimit,
	}

	results := make([][]models.Incident, len(s.providers))
	var g errgroup.Group
	for i, p := range s.providers {
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(ctx, s.providerTimeout)
			defer cancel()

			incidents, err := p.Incidents(pctx, q)
			if err != nil {
				metrics.ProviderRequestsTotal.WithLabelValues(p.Name(), "error").Inc()
				log.WithError(err).WithField("provider", p.Name()).Warn("Incident provider unavailable, continuing without it")
				return nil
			}
			metrics.ProviderRequestsTotal.WithLabelValues(p.Name(), "ok").Inc()
			results[i] = incidents
			return nil
		})
	}
	_ = g.Wait()

	merged := mergeIncidents(results)
	log.WithField("count", len(merged)).Debug("Incidents collected")
	return merged
}

// mergeIncidents объединяет списки в порядке источников, первая запись с ключом побеждает
func mergeIncidents(lists [][]models.Incident) []models.Incident {
	seen := make(map[string]struct{})
	out := make([]models.Incident, 0)
	for _, list := range lists {
		for _, inc := range list {
			key := inc.DedupKey()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, inc)
		}
	}
	return out
}

// LocationContext никогда не возвращает ошибку: при отказе геокодера отдается заглушка Unknown
func (s *crimeService) LocationContext(ctx context.Context, lat, lng float64) models.LocationContext {
	rctx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	loc, err := s.resolver.ReverseGeocode(rctx, lat, lng)
	if err != nil {
		metrics.LocationFallbackTotal.Inc()
		s.logger.WithFields(logrus.Fields{
			"service": "crime",
			"method":  "LocationContext",
			"lat":     lat,
			"lng":     lng,
		}).WithError(err).Warn("Reverse geocoding failed, using placeholder")
		return models.UnknownLocation()
	}
	return loc
}

// CrimeNear ранжированные инциденты, сводка и сведения о месте
func (s *crimeService) CrimeNear(ctx context.Context, lat, lng, radiusDeg float64) models.CrimeReport {
	var (
		incidents []models.Incident
		location  models.LocationContext
	)

	var g errgroup.Group
	g.Go(func() error {
		incidents = s.IncidentsNear(ctx, lat, lng, radiusDeg)
		return nil
	})
	g.Go(func() error {
		location = s.LocationContext(ctx, lat, lng)
		return nil
	})
	_ = g.Wait()

	now := s.now()
	ranked := scoring.Rank(incidents, now, &geo.Point{Lat: lat, Lng: lng})
	metrics.IncidentsScoredTotal.Add(float64(len(ranked)))

	return models.CrimeReport{
		Location:  location,
		Incidents: ranked,
		Stats:     scoring.Aggregate(incidents, now),
	}
}

func (s *crimeService) CrimeStats(ctx context.Context, lat, lng, radiusDeg float64) models.CrimeStats {
	incidents := s.IncidentsNear(ctx, lat, lng, radiusDeg)
	return scoring.Aggregate(incidents, s.now())
}

// ReportIncident путь записи: ошибки проверки и хранилища возвращаются вызывающему
func (s *crimeService) ReportIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "crime",
		"method":   "ReportIncident",
		"category": incident.Category,
	})
	log.Info("Attempting to report a new incident")

	now := s.now()
	if err := normalizeIncident(incident, now); err != nil {
		log.WithError(err).Warn("Incident rejected")
		return err
	}

	if err := s.store.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return nil
}

func normalizeIncident(inc *models.Incident, now time.Time) error {
	if !geo.ValidCoordinates(inc.Latitude, inc.Longitude) {
		return fmt.Errorf("%w: coordinates out of range", models.ErrInvalidIncident)
	}

	category, ok := scoring.ParseCategory(string(inc.Category))
	if !ok {
		return fmt.Errorf("%w: unknown category %q", models.ErrInvalidIncident, inc.Category)
	}
	inc.Category = category

	severity, ok := scoring.ParseSeverity(string(inc.Severity))
	if !ok {
		return fmt.Errorf("%w: unknown severity %q", models.ErrInvalidIncident, inc.Severity)
	}
	inc.Severity = severity

	if inc.OccurredAt.IsZero() {
		inc.OccurredAt = now
	}
	if inc.OccurredAt.After(now.Add(time.Minute)) {
		return fmt.Errorf("%w: occurred_at is in the future", models.ErrInvalidIncident)
	}

	inc.Source = models.SourceLocal
	inc.ExternalID = ""
	return nil
}
