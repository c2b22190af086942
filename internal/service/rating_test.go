package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/service/mocks"
)

func newTestRatingService(t *testing.T) (*ratingService, *mocks.MockRatingStore) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRatingStore(ctrl)
	svc := NewRatingService(store, 0, testLogger()).(*ratingService)
	svc.now = func() time.Time { return testNow }
	return svc, store
}

func TestSubmitRating_Success(t *testing.T) {
	// Подготовка
	svc, store := newTestRatingService(t)
	ctx := context.Background()
	rating := &models.Rating{
		UserID: "user-1", Latitude: 51.5, Longitude: -0.1, SafetyScore: 4,
		TimeOfDay: models.Night, DayOfWeek: "monday",
	}

	// Ожидания
	store.EXPECT().
		Create(ctx, rating).
		DoAndReturn(func(_ context.Context, r *models.Rating) error {
			r.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	err := svc.SubmitRating(ctx, rating)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rating.ID)
	// Время суток и день недели берутся с часов сервера, а не из запроса
	assert.Equal(t, models.Afternoon, rating.TimeOfDay)
	assert.Equal(t, "saturday", rating.DayOfWeek)
	assert.Equal(t, models.RouteWalking, rating.RouteType)
	assert.Equal(t, testNow, rating.CreatedAt)
}

func TestSubmitRating_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		rating models.Rating
	}{
		{"no user", models.Rating{Latitude: 1, Longitude: 1, SafetyScore: 3}},
		{"score too low", models.Rating{UserID: "u", Latitude: 1, Longitude: 1, SafetyScore: 0}},
		{"score too high", models.Rating{UserID: "u", Latitude: 1, Longitude: 1, SafetyScore: 6}},
		{"bad longitude", models.Rating{UserID: "u", Latitude: 1, Longitude: 181, SafetyScore: 3}},
		{"long comment", models.Rating{UserID: "u", Latitude: 1, Longitude: 1, SafetyScore: 3, Comment: strings.Repeat("a", 301)}},
		{"bad route type", models.Rating{UserID: "u", Latitude: 1, Longitude: 1, SafetyScore: 3, RouteType: "flying"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestRatingService(t)
			r := tt.rating
			err := svc.SubmitRating(context.Background(), &r)
			assert.ErrorIs(t, err, models.ErrInvalidRating)
		})
	}
}

func TestSubmitRating_CommentAtLimit(t *testing.T) {
	// Подготовка
	svc, store := newTestRatingService(t)
	rating := &models.Rating{UserID: "u", Latitude: 1, Longitude: 1, SafetyScore: 5, Comment: strings.Repeat("ж", 300)}

	// Ожидания
	store.EXPECT().Create(gomock.Any(), rating).Return(nil).Times(1)

	// Действие
	err := svc.SubmitRating(context.Background(), rating)

	// Проверки
	assert.NoError(t, err)
}

func TestSubmitRating_StoreError(t *testing.T) {
	// Подготовка
	svc, store := newTestRatingService(t)

	// Ожидания
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)

	// Действие
	err := svc.SubmitRating(context.Background(), &models.Rating{UserID: "u", Latitude: 1, Longitude: 1, SafetyScore: 2})

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create rating")
}

func TestLocationRatings(t *testing.T) {
	// Подготовка
	svc, store := newTestRatingService(t)
	ratings := []models.Rating{{SafetyScore: 2}, {SafetyScore: 5}}

	// Ожидания
	store.EXPECT().
		Find(gomock.Any(), geo.BoxAround(51.5, -0.1, 0.01), testNow.AddDate(0, 0, -90)).
		Return(ratings, nil).
		Times(1)

	// Действие
	res := svc.LocationRatings(context.Background(), 51.5, -0.1, 0.01)

	// Проверки
	assert.Equal(t, 2, res.Count)
	assert.InDelta(t, 3.5, res.AverageScore, 1e-9)
	assert.Equal(t, ratings, res.Ratings)
}

func TestLocationRatings_StoreErrorDegrades(t *testing.T) {
	// Подготовка
	svc, store := newTestRatingService(t)

	// Ожидания
	store.EXPECT().Find(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

	// Действие
	res := svc.LocationRatings(context.Background(), 51.5, -0.1, 0.01)

	// Проверки
	assert.Zero(t, res.Count)
	assert.Zero(t, res.AverageScore)
	assert.NotNil(t, res.Ratings)
}

func TestHeatmap_DefaultResolution(t *testing.T) {
	// Подготовка
	svc, store := newTestRatingService(t)
	box := geo.BoundingBox{LatMin: 51.4, LatMax: 51.6, LngMin: -0.2, LngMax: 0}
	ratings := []models.Rating{
		{Latitude: 51.5001, Longitude: -0.1001, SafetyScore: 2},
		{Latitude: 51.5002, Longitude: -0.1002, SafetyScore: 4},
		{Latitude: 51.55, Longitude: -0.15, SafetyScore: 5},
	}

	// Ожидания
	store.EXPECT().Find(gomock.Any(), box, gomock.Any()).Return(ratings, nil).Times(1)

	// Действие
	points := svc.Heatmap(context.Background(), box, 0)

	// Проверки
	require.Len(t, points, 2)
	assert.Equal(t, 2, points[0].RatingCount)
	assert.InDelta(t, 3.0, points[0].AverageScore, 1e-9)
	assert.InDelta(t, 0.6, points[0].Intensity, 1e-9)
	assert.InDelta(t, 1.0, points[1].Intensity, 1e-9)
}

func TestHeatmap_StoreErrorDegrades(t *testing.T) {
	// Подготовка
	svc, store := newTestRatingService(t)

	// Ожидания
	store.EXPECT().Find(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

	// Действие
	points := svc.Heatmap(context.Background(), geo.BoxAround(0, 0, 1), 0.01)

	// Проверки
	assert.Empty(t, points)
}
