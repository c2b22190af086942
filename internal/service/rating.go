package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/heatmap"
	"github.com/shenikar/geo_safety_system/internal/models"
)

type ratingService struct {
	store      RatingStore
	resolution float64
	logger     *logrus.Logger
	now        func() time.Time
}

// NewRatingService resolution - шаг сетки тепловой карты по умолчанию
func NewRatingService(store RatingStore, resolution float64, logger *logrus.Logger) RatingService {
	if resolution < heatmap.MinResolution {
		resolution = heatmap.DefaultResolution
	}
	return &ratingService{
		store:      store,
		resolution: resolution,
		logger:     logger,
		now:        time.Now,
	}
}

// SubmitRating проверяет оценку, выводит время суток и день недели из часов сервера
func (s *ratingService) SubmitRating(ctx context.Context, rating *models.Rating) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "rating",
		"method":  "SubmitRating",
		"user_id": rating.UserID,
	})

	if err := validateRating(rating); err != nil {
		log.WithError(err).Warn("Rating rejected")
		return err
	}

	now := s.now()
	rating.TimeOfDay = models.TimeOfDayFor(now)
	rating.DayOfWeek = models.DayOfWeekFor(now)
	rating.CreatedAt = now

	if err := s.store.Create(ctx, rating); err != nil {
		log.WithError(err).Error("Failed to store rating")
		return fmt.Errorf("service: could not create rating: %w", err)
	}

	log.WithField("rating_id", rating.ID).Info("Rating submitted")
	return nil
}

func validateRating(r *models.Rating) error {
	switch {
	case r.UserID == "":
		return fmt.Errorf("%w: user_id is required", models.ErrInvalidRating)
	case !geo.ValidCoordinates(r.Latitude, r.Longitude):
		return fmt.Errorf("%w: coordinates out of range", models.ErrInvalidRating)
	case r.SafetyScore < 1 || r.SafetyScore > 5:
		return fmt.Errorf("%w: safety_score must be between 1 and 5", models.ErrInvalidRating)
	case utf8.RuneCountInString(r.Comment) > models.MaxCommentLength:
		return fmt.Errorf("%w: comment longer than %d characters", models.ErrInvalidRating, models.MaxCommentLength)
	}
	if r.RouteType == "" {
		r.RouteType = models.RouteWalking
	}
	if !r.RouteType.IsValid() {
		return fmt.Errorf("%w: unknown route_type %q", models.ErrInvalidRating, r.RouteType)
	}
	return nil
}

func (s *ratingService) recentRatings(ctx context.Context, method string, box geo.BoundingBox) []models.Rating {
	since := s.now().AddDate(0, 0, -heatmap.RatingWindowDays)
	ratings, err := s.store.Find(ctx, box, since)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "rating",
			"method":  method,
		}).WithError(err).Warn("Rating store unavailable, returning empty result")
		return []models.Rating{}
	}
	return ratings
}

// LocationRatings оценки за последние 90 дней вокруг точки
func (s *ratingService) LocationRatings(ctx context.Context, lat, lng, radiusDeg float64) models.LocationRatings {
	ratings := s.recentRatings(ctx, "LocationRatings", geo.BoxAround(lat, lng, radiusDeg))

	res := models.LocationRatings{Ratings: ratings, Count: len(ratings)}
	if len(ratings) > 0 {
		var sum int
		for _, r := range ratings {
			sum += r.SafetyScore
		}
		res.AverageScore = float64(sum) / float64(len(ratings))
	}
	return res
}

// Heatmap тепловая карта оценок за последние 90 дней внутри прямоугольника
func (s *ratingService) Heatmap(ctx context.Context, box geo.BoundingBox, resolution float64) []models.HeatmapPoint {
	if resolution < heatmap.MinResolution {
		resolution = s.resolution
	}
	ratings := s.recentRatings(ctx, "Heatmap", box)
	return heatmap.Build(ratings, resolution)
}
