package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/metrics"
	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/webhook"
)

// SOSRadiusDeg радиус сводки инцидентов вокруг точки SOS (~1.1 км)
const SOSRadiusDeg = 0.01

var (
	ErrInvalidSOS    = errors.New("invalid sos request")
	ErrInvalidShare  = errors.New("invalid location share")
	ErrShareNotFound = errors.New("location share not found")
	ErrShareOwner    = errors.New("location share belongs to another user")
)

type alertService struct {
	crime     CrimeService
	publisher webhook.WebhookPublisher
	shares    ShareStore
	logger    *logrus.Logger
	now       func() time.Time
}

func NewAlertService(crime CrimeService, publisher webhook.WebhookPublisher, shares ShareStore, logger *logrus.Logger) AlertService {
	return &alertService{
		crime:     crime,
		publisher: publisher,
		shares:    shares,
		logger:    logger,
		now:       time.Now,
	}
}

// TriggerSOS обогащает оповещение сведениями о месте и обстановке и ставит его в очередь доставки
func (s *alertService) TriggerSOS(ctx context.Context, req models.SOSRequest) (*models.SOSAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "TriggerSOS",
		"user_id": req.UserID,
	})

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidSOS)
	}
	if !geo.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrInvalidSOS)
	}

	stats := s.crime.CrimeStats(ctx, req.Latitude, req.Longitude, SOSRadiusDeg)
	alert := &models.SOSAlert{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Message:         req.Message,
		Location:        s.crime.LocationContext(ctx, req.Latitude, req.Longitude),
		NearbyIncidents: stats.Total,
		SafetyLevel:     stats.SafetyLevel,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.publisher.Publish(ctx, *alert); err != nil {
		metrics.SOSAlertsTotal.WithLabelValues("failed").Inc()
		log.WithError(err).Error("Failed to publish SOS alert")
		return nil, fmt.Errorf("service: could not publish sos alert: %w", err)
	}

	metrics.SOSAlertsTotal.WithLabelValues("published").Inc()
	log.WithFields(logrus.Fields{
		"alert_id":     alert.ID,
		"safety_level": alert.SafetyLevel,
	}).Info("SOS alert published")
	return alert, nil
}

// ShareLocation создает или обновляет запись живой геолокации. Обновить чужую запись нельзя.
func (s *alertService) ShareLocation(_ context.Context, share models.LocationShare) (models.LocationShare, error) {
	if share.UserID == "" {
		return models.LocationShare{}, fmt.Errorf("%w: user_id is required", ErrInvalidShare)
	}
	if !geo.ValidCoordinates(share.Latitude, share.Longitude) {
		return models.LocationShare{}, fmt.Errorf("%w: coordinates out of range", ErrInvalidShare)
	}

	if share.ID == "" {
		share.ID = uuid.NewString()
	}

	saved, ok := s.shares.PutIfOwner(share)
	if !ok {
		return models.LocationShare{}, ErrShareOwner
	}
	s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "ShareLocation",
		"share_id": saved.ID,
		"user_id":  saved.UserID,
	}).Debug("Location share updated")
	return saved, nil
}

func (s *alertService) GetSharedLocation(_ context.Context, id string) (models.LocationShare, error) {
	share, ok := s.shares.Get(id)
	if !ok {
		return models.LocationShare{}, ErrShareNotFound
	}
	return share, nil
}
