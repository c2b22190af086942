package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/geo_safety_system/internal/config"
	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/news"
	"github.com/shenikar/geo_safety_system/internal/service"
	"github.com/shenikar/geo_safety_system/internal/service/mocks"
)

const testAPIKey = "test-api-key"

var authHeader = map[string]string{"X-API-Key": testAPIKey}

type serviceMocks struct {
	crime  *mocks.MockCrimeService
	route  *mocks.MockRouteService
	rating *mocks.MockRatingService
	alert  *mocks.MockAlertService
}

// newTestHandler создает Handler с мокированными сервисами и gin-роутер для тестов
func newTestHandler(t *testing.T) (*Handler, serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		crime:  mocks.NewMockCrimeService(ctrl),
		route:  mocks.NewMockRouteService(ctrl),
		rating: mocks.NewMockRatingService(ctrl),
		alert:  mocks.NewMockAlertService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:           []string{testAPIKey},
		HeatmapResolution: 0.001,
		CORSOrigins:       []string{"*"},
	}

	handler := NewHandler(m.crime, m.route, m.rating, m.alert, logger, cfg)
	handler.streamInterval = 10 * time.Millisecond

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func ptr(v float64) *float64 { return &v }

func TestCrimeNear_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	dist := 12.5
	report := models.CrimeReport{
		Location: models.LocationContext{City: "London"},
		Incidents: []models.ScoredIncident{
			{Incident: models.Incident{ID: uuid.New(), Category: models.CategoryTheft}, DangerScore: 0.7, DistanceMeters: &dist},
			{Incident: models.Incident{ID: uuid.New(), Category: models.CategoryAssault}, DangerScore: 0.45},
		},
		Stats: models.CrimeStats{Total: 2, SafetyLevel: models.SafetyModerate},
	}

	m.crime.EXPECT().CrimeNear(gomock.Any(), 51.5, -0.1, DefaultRadiusDeg).Return(report).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crime/near?lat=51.5&lng=-0.1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CrimeNearResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Incidents, 2)
	assert.Equal(t, report.Incidents[0].ID, resp.Incidents[0].ID)
	assert.Equal(t, "theft", resp.Incidents[0].Category)
	assert.InDelta(t, 12.5, *resp.Incidents[0].DistanceMeters, 1e-9)
	assert.Equal(t, "London", resp.Location.City)
	assert.Equal(t, models.SafetyModerate, resp.Stats.SafetyLevel)
}

func TestCrimeNear_ZeroCoordinatesAccepted(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.crime.EXPECT().CrimeNear(gomock.Any(), 0.0, 0.0, 0.05).Return(models.CrimeReport{}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crime/near?lat=0&lng=0&radius=0.05", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCrimeNear_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing lng", "lat=51.5"},
		{"latitude out of range", "lat=95&lng=0"},
		{"not a number", "lat=abc&lng=0"},
		{"radius too large", "lat=1&lng=1&radius=5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.crime.EXPECT().CrimeNear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

			w := makeRequest(router, "GET", "/api/v1/crime/near?"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCrimeStats_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	stats := models.CrimeStats{Total: 3, ByCategory: map[models.Category]int{models.CategoryTheft: 3}, SafetyLevel: models.SafetySafe}

	m.crime.EXPECT().CrimeStats(gomock.Any(), 40.7, -74.0, 0.02).Return(stats).Times(1)

	w := makeRequest(router, "GET", "/api/v1/crime/stats?lat=40.7&lng=-74.0&radius=0.02", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":3`)
}

func TestLocationContext_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.crime.EXPECT().LocationContext(gomock.Any(), 51.5, -0.1).Return(models.UnknownLocation()).Times(1)

	w := makeRequest(router, "GET", "/api/v1/location/context?lat=51.5&lng=-0.1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"city":"Unknown"`)
}

func TestReportIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := CreateIncidentRequest{
		Latitude:    ptr(51.5),
		Longitude:   ptr(-0.1),
		Category:    "theft",
		Description: "phone snatched",
	}

	m.crime.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, models.CategoryTheft, inc.Category)
			inc.ID = incidentID
			inc.Severity = models.SeverityMedium
			inc.Source = models.SourceLocal
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "medium", resp.Severity)
	assert.Equal(t, models.SourceLocal, resp.Source)
}

func TestReportIncident_Unauthorized(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.crime.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0)

	body := `{"latitude":1,"longitude":1,"category":"theft"}`

	w := makeRequest(router, "POST", "/api/v1/incidents", strings.NewReader(body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "POST", "/api/v1/incidents", strings.NewReader(body), map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestReportIncident_BearerToken(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.crime.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	body := `{"latitude":1,"longitude":1,"category":"vandalism"}`
	w := makeRequest(router, "POST", "/api/v1/incidents", strings.NewReader(body), map[string]string{"Authorization": "Bearer " + testAPIKey})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReportIncident_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.crime.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"category": "theft"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestReportIncident_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.crime.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	body := `{"latitude":1,"longitude":1,"category":"arson"}`
	w := makeRequest(router, "POST", "/api/v1/incidents", strings.NewReader(body), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Category' failed on the 'oneof' tag")
}

func TestReportIncident_ServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid", errors.Join(models.ErrInvalidIncident, errors.New("occurred_at is in the future")), http.StatusBadRequest},
		{"storage", errors.New("service: could not create incident: db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.crime.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Return(tt.err).Times(1)

			body := `{"latitude":1,"longitude":1,"category":"theft"}`
			w := makeRequest(router, "POST", "/api/v1/incidents", strings.NewReader(body), authHeader)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestRouteSafety_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := models.RouteSafety{SafetyScore: 4, DangerScore: 0.2, PointsAnalyzed: 2}

	m.route.EXPECT().
		RouteSafety(gomock.Any(), []geo.Point{{Lat: 51.5, Lng: -0.1}, {Lat: 51.51, Lng: -0.11}}).
		Return(expected, nil).
		Times(1)

	body := `{"waypoints":[{"latitude":51.5,"longitude":-0.1},{"latitude":51.51,"longitude":-0.11}]}`
	w := makeRequest(router, "POST", "/api/v1/routes/safety", strings.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.RouteSafety
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected, resp)
}

func TestRouteSafety_EmptyWaypoints(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.route.EXPECT().RouteSafety(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/routes/safety", strings.NewReader(`{"waypoints":[]}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouteSafety_InvalidWaypoint(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.route.EXPECT().RouteSafety(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/routes/safety", strings.NewReader(`{"waypoints":[{"latitude":51.5,"longitude":-190}]}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouteSegments_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	segments := []models.RouteSegment{{IncidentCount: 2, DangerScore: 0.5}}

	m.route.EXPECT().RouteSegments(gomock.Any(), gomock.Any()).Return(segments, nil).Times(1)

	body := `{"waypoints":[{"latitude":0,"longitude":0},{"latitude":0,"longitude":0.01}]}`
	w := makeRequest(router, "POST", "/api/v1/routes/segments", strings.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"incident_count":2`)
}

func TestRouteRisk_UnknownCity(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.route.EXPECT().
		RouteRisk(gomock.Any(), "atlantis", gomock.Any()).
		Return(models.RouteRisk{}, news.ErrUnknownCity).
		Times(1)

	body := `{"city":" Atlantis ","waypoints":[{"latitude":1,"longitude":1}]}`
	w := makeRequest(router, "POST", "/api/v1/routes/risk", strings.NewReader(body))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown city")
}

func TestRouteRisk_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	risk := models.RouteRisk{SafetyScore: 3.2, TotalRisk: 0.9, RiskFactors: []models.RiskFactor{{ZoneID: "a-0", Risk: 0.9}}}

	m.route.EXPECT().RouteRisk(gomock.Any(), "london", gomock.Any()).Return(risk, nil).Times(1)

	body := `{"city":"london","waypoints":[{"latitude":51.5136,"longitude":-0.1365}]}`
	w := makeRequest(router, "POST", "/api/v1/routes/risk", strings.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.RouteRisk
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, risk, resp)
}

func TestDangerZones(t *testing.T) {
	zones := []models.DangerZone{{ID: "a-0", City: "london", Latitude: 51.5, Longitude: -0.1, Severity: models.SeverityHigh, RadiusKm: 1.5}}

	t.Run("json", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.route.EXPECT().DangerZones(gomock.Any(), "london").Return(zones, nil).Times(1)

		w := makeRequest(router, "GET", "/api/v1/danger-zones?city=London", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp DangerZonesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "london", resp.City)
	})

	t.Run("geojson", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.route.EXPECT().DangerZones(gomock.Any(), "london").Return(zones, nil).Times(1)

		w := makeRequest(router, "GET", "/api/v1/danger-zones?city=london&format=geojson", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"FeatureCollection"`)
		assert.Contains(t, w.Body.String(), `"radius_km":1.5`)
	})

	t.Run("missing city", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.route.EXPECT().Cities().Return([]string{"london"}).Times(1)

		w := makeRequest(router, "GET", "/api/v1/danger-zones", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "london")
	})
}

func TestSubmitRating_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.rating.EXPECT().
		SubmitRating(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Rating) error {
			r.ID = uuid.New()
			r.TimeOfDay = models.Evening
			return nil
		}).Times(1)

	body := `{"user_id":"u1","latitude":51.5,"longitude":-0.1,"safety_score":4,"route_type":"cycling"}`
	w := makeRequest(router, "POST", "/api/v1/ratings", strings.NewReader(body), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"time_of_day":"evening"`)
	assert.Contains(t, w.Body.String(), `"route_type":"cycling"`)
}

func TestSubmitRating_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.rating.EXPECT().SubmitRating(gomock.Any(), gomock.Any()).Times(0)

	body := `{"user_id":"u1","latitude":51.5,"longitude":-0.1,"safety_score":6}`
	w := makeRequest(router, "POST", "/api/v1/ratings", strings.NewReader(body), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "SafetyScore")
}

func TestLocationRatings(t *testing.T) {
	_, m, router := newTestHandler(t)
	res := models.LocationRatings{Ratings: []models.Rating{{SafetyScore: 3}}, AverageScore: 3, Count: 1}

	m.rating.EXPECT().LocationRatings(gomock.Any(), 51.5, -0.1, DefaultRadiusDeg).Return(res).Times(1)

	w := makeRequest(router, "GET", "/api/v1/ratings?lat=51.5&lng=-0.1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestRatingsHeatmap(t *testing.T) {
	points := []models.HeatmapPoint{{Latitude: 51.5, Longitude: -0.1, AverageScore: 4, Intensity: 0.8, RatingCount: 2}}
	box := geo.BoundingBox{LatMin: 51.4, LatMax: 51.6, LngMin: -0.2, LngMax: 0}

	t.Run("json uses configured resolution", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.rating.EXPECT().Heatmap(gomock.Any(), box, 0.001).Return(points).Times(1)

		w := makeRequest(router, "GET", "/api/v1/ratings/heatmap?lat_min=51.4&lat_max=51.6&lng_min=-0.2&lng_max=0", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp HeatmapResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, points, resp.Points)
		assert.Equal(t, 0.001, resp.Resolution)
	})

	t.Run("geojson", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.rating.EXPECT().Heatmap(gomock.Any(), box, 0.01).Return(points).Times(1)

		w := makeRequest(router, "GET", "/api/v1/ratings/heatmap/geojson?lat_min=51.4&lat_max=51.6&lng_min=-0.2&lng_max=0&resolution=0.01", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"FeatureCollection"`)
		assert.Contains(t, w.Body.String(), `"intensity":0.8`)
	})

	t.Run("inverted box", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.rating.EXPECT().Heatmap(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "GET", "/api/v1/ratings/heatmap?lat_min=51.6&lat_max=51.4&lng_min=-0.2&lng_max=0", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("resolution below grid minimum", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.rating.EXPECT().Heatmap(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "GET", "/api/v1/ratings/heatmap?lat_min=51.4&lat_max=51.6&lng_min=-0.2&lng_max=0&resolution=1e-19", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTriggerSOS_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	alert := &models.SOSAlert{ID: "alert-1", UserID: "u1", SafetyLevel: models.SafetyDangerous}

	m.alert.EXPECT().
		TriggerSOS(gomock.Any(), models.SOSRequest{UserID: "u1", Latitude: 51.5, Longitude: -0.1, Message: "help"}).
		Return(alert, nil).
		Times(1)

	body := `{"user_id":"u1","latitude":51.5,"longitude":-0.1,"message":"help"}`
	w := makeRequest(router, "POST", "/api/v1/sos", strings.NewReader(body), authHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"alert-1"`)
}

func TestTriggerSOS_PublishFailure(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.alert.EXPECT().TriggerSOS(gomock.Any(), gomock.Any()).Return(nil, errors.New("service: could not publish sos alert")).Times(1)

	body := `{"user_id":"u1","latitude":51.5,"longitude":-0.1}`
	w := makeRequest(router, "POST", "/api/v1/sos", strings.NewReader(body), authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestShareLocation(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.alert.EXPECT().
			ShareLocation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s models.LocationShare) (models.LocationShare, error) {
				s.ID = "share-1"
				return s, nil
			}).Times(1)

		body := `{"user_id":"u1","latitude":51.5,"longitude":-0.1}`
		w := makeRequest(router, "POST", "/api/v1/location/share", strings.NewReader(body), authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"share-1"`)
	})

	t.Run("other owner", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.alert.EXPECT().ShareLocation(gomock.Any(), gomock.Any()).Return(models.LocationShare{}, service.ErrShareOwner).Times(1)

		body := `{"id":"share-1","user_id":"intruder","latitude":51.5,"longitude":-0.1}`
		w := makeRequest(router, "POST", "/api/v1/location/share", strings.NewReader(body), authHeader)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetSharedLocation_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.alert.EXPECT().GetSharedLocation(gomock.Any(), "missing").Return(models.LocationShare{}, service.ErrShareNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/location/share/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamSharedLocation(t *testing.T) {
	_, m, router := newTestHandler(t)
	first := models.LocationShare{ID: "share-1", UserID: "u1", Latitude: 51.5, Longitude: -0.1, UpdatedAt: time.Unix(100, 0).UTC()}
	moved := first
	moved.Latitude = 51.6
	moved.UpdatedAt = time.Unix(200, 0).UTC()

	gomock.InOrder(
		m.alert.EXPECT().GetSharedLocation(gomock.Any(), "share-1").Return(first, nil).Times(1),
		m.alert.EXPECT().GetSharedLocation(gomock.Any(), "share-1").Return(moved, nil).Times(1),
		m.alert.EXPECT().GetSharedLocation(gomock.Any(), "share-1").Return(models.LocationShare{}, service.ErrShareNotFound).AnyTimes(),
	)

	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/location/share/share-1/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	var got models.LocationShare
	require.NoError(t, wsjson.Read(ctx, conn, &got))
	assert.InDelta(t, 51.5, got.Latitude, 1e-9)

	require.NoError(t, wsjson.Read(ctx, conn, &got))
	assert.InDelta(t, 51.6, got.Latitude, 1e-9)

	// После истечения записи сервер закрывает поток
	err = wsjson.Read(ctx, conn, &got)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
