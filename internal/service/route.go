package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/scoring"
)

type routeService struct {
	crime  CrimeService
	zones  ZoneSource
	logger *logrus.Logger
	now    func() time.Time
}

func NewRouteService(crime CrimeService, zones ZoneSource, logger *logrus.Logger) RouteService {
	return &routeService{
		crime:  crime,
		zones:  zones,
		logger: logger,
		now:    time.Now,
	}
}

func (s *routeService) RouteSafety(ctx context.Context, waypoints []geo.Point) (models.RouteSafety, error) {
	res, err := scoring.RouteSafetyScore(ctx, s.crime, waypoints, s.now())
	if err != nil {
		return models.RouteSafety{}, fmt.Errorf("service: route safety: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"service":      "route",
		"method":       "RouteSafety",
		"waypoints":    len(waypoints),
		"safety_score": res.SafetyScore,
	}).Debug("Route scored")
	return res, nil
}

func (s *routeService) RouteSegments(ctx context.Context, waypoints []geo.Point) ([]models.RouteSegment, error) {
	segments, err := scoring.SegmentAnalysis(ctx, s.crime, waypoints, s.now())
	if err != nil {
		return nil, fmt.Errorf("service: route segments: %w", err)
	}
	return segments, nil
}

// RouteRisk риск маршрута по опасным зонам из новостей города
func (s *routeService) RouteRisk(ctx context.Context, city string, waypoints []geo.Point) (models.RouteRisk, error) {
	res, err := s.zones.RouteRisk(ctx, city, waypoints)
	if err != nil {
		return models.RouteRisk{}, fmt.Errorf("service: route risk: %w", err)
	}
	return res, nil
}

func (s *routeService) DangerZones(ctx context.Context, city string) ([]models.DangerZone, error) {
	zones, err := s.zones.DangerZones(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("service: danger zones: %w", err)
	}
	return zones, nil
}

func (s *routeService) Cities() []string {
	return s.zones.Cities()
}
