package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/news"
	"github.com/shenikar/geo_safety_system/internal/service/mocks"
)

func newTestRouteService(t *testing.T) (*routeService, *mocks.MockCrimeService, *mocks.MockZoneSource) {
	ctrl := gomock.NewController(t)
	crime := mocks.NewMockCrimeService(ctrl)
	zones := mocks.NewMockZoneSource(ctrl)
	svc := NewRouteService(crime, zones, testLogger()).(*routeService)
	svc.now = func() time.Time { return testNow }
	return svc, crime, zones
}

func TestRouteSafety_NoIncidents(t *testing.T) {
	// Подготовка
	svc, crime, _ := newTestRouteService(t)
	waypoints := []geo.Point{{Lat: 51.5, Lng: -0.1}, {Lat: 51.51, Lng: -0.11}, {Lat: 51.52, Lng: -0.12}}

	// Ожидания
	crime.EXPECT().
		IncidentsNear(gomock.Any(), gomock.Any(), gomock.Any(), 0.005).
		Return(nil).
		Times(3)

	// Действие
	res, err := svc.RouteSafety(context.Background(), waypoints)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 5, res.SafetyScore)
	assert.Zero(t, res.DangerScore)
	assert.Equal(t, 3, res.PointsAnalyzed)
}

func TestRouteSafety_DangerousArea(t *testing.T) {
	// Подготовка
	svc, crime, _ := newTestRouteService(t)
	critical := models.Incident{ID: uuid.New(), Severity: models.SeverityCritical, OccurredAt: testNow}

	// Ожидания
	crime.EXPECT().
		IncidentsNear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.Incident{critical}).
		AnyTimes()

	// Действие
	res, err := svc.RouteSafety(context.Background(), []geo.Point{{Lat: 1, Lng: 1}, {Lat: 1.001, Lng: 1.001}})

	// Проверки
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.DangerScore, 1e-9)
	assert.Equal(t, 1, res.SafetyScore)
}

func TestRouteSegments(t *testing.T) {
	// Подготовка
	svc, crime, _ := newTestRouteService(t)
	waypoints := []geo.Point{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.002}, {Lat: 0, Lng: 0.004}}

	// Ожидания
	crime.EXPECT().
		IncidentsNear(gomock.Any(), gomock.Any(), gomock.Any(), 0.002).
		Return([]models.Incident{{ID: uuid.New(), Severity: models.SeverityLow, OccurredAt: testNow}}).
		Times(2)

	// Действие
	segments, err := svc.RouteSegments(context.Background(), waypoints)

	// Проверки
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, waypoints[0], segments[0].Start)
	assert.Equal(t, waypoints[2], segments[1].End)
	assert.Equal(t, 1, segments[1].IncidentCount)
	assert.InDelta(t, 0.25*0.6+0.4, segments[0].DangerScore, 1e-9)
}

func TestRouteRisk_UnknownCity(t *testing.T) {
	// Подготовка
	svc, _, zones := newTestRouteService(t)

	// Ожидания
	zones.EXPECT().
		RouteRisk(gomock.Any(), "atlantis", gomock.Any()).
		Return(models.RouteRisk{}, news.ErrUnknownCity).
		Times(1)

	// Действие
	_, err := svc.RouteRisk(context.Background(), "atlantis", []geo.Point{{Lat: 1, Lng: 1}})

	// Проверки
	assert.ErrorIs(t, err, news.ErrUnknownCity)
}

func TestDangerZones(t *testing.T) {
	// Подготовка
	svc, _, zones := newTestRouteService(t)
	expected := []models.DangerZone{{ID: "a-0", City: "london", Severity: models.SeverityHigh}}

	// Ожидания
	zones.EXPECT().DangerZones(gomock.Any(), "london").Return(expected, nil).Times(1)
	zones.EXPECT().Cities().Return([]string{"london", "mumbai"}).Times(1)

	// Действие
	got, err := svc.DangerZones(context.Background(), "london")
	cities := svc.Cities()

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	assert.Equal(t, []string{"london", "mumbai"}, cities)
}
