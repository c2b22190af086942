package feed

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
)

const streetCrimes = `[
  {"id": 101, "category": "violent-crime", "month": "2024-05",
   "location": {"latitude": "51.5080", "longitude": "-0.1280", "street": {"name": "On or near Strand"}}},
  {"id": 102, "category": "bicycle-theft", "month": "2024-05",
   "location": {"latitude": "51.5070", "longitude": "-0.1270", "street": {"name": "On or near Parking Area"}}},
  {"id": 103, "category": "something-new", "month": "2024-05",
   "location": {"latitude": "51.5071", "longitude": "-0.1271", "street": {"name": "On or near Mall"}}},
  {"id": 104, "category": "robbery", "month": "2024-05",
   "location": {"latitude": "51.6000", "longitude": "-0.1278", "street": {"name": "Far away"}}},
  {"id": 105, "category": "robbery", "month": "bad",
   "location": {"latitude": "51.5074", "longitude": "-0.1278", "street": {"name": "Broken"}}}
]`

func londonQuery(radiusDeg float64) models.IncidentQuery {
	center := geo.Point{Lat: 51.5074, Lng: -0.1278}
	return models.IncidentQuery{
		Center:    center,
		RadiusDeg: radiusDeg,
		Box:       geo.BoxAround(center.Lat, center.Lng, radiusDeg),
		Limit:     50,
	}
}

func TestPoliceFeed_Incidents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crimes-street/all-crime", r.URL.Path)
		assert.Equal(t, "51.507400", r.URL.Query().Get("lat"))
		assert.Equal(t, "-0.127800", r.URL.Query().Get("lng"))
		_, _ = io.WriteString(w, streetCrimes)
	}))
	defer srv.Close()

	f := NewPoliceFeed("police-uk", srv.URL, time.Second)
	incidents, err := f.Incidents(context.Background(), londonQuery(0.01))
	require.NoError(t, err)
	require.Len(t, incidents, 3)

	first := incidents[0]
	assert.Equal(t, "101", first.ExternalID)
	assert.Equal(t, models.CategoryAssault, first.Category)
	assert.Equal(t, models.SeverityHigh, first.Severity)
	assert.Equal(t, "police-uk", first.Source)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), first.OccurredAt)
	assert.Equal(t, "police-uk:101", first.DedupKey())

	assert.Equal(t, models.CategoryOther, incidents[2].Category)
	assert.Equal(t, models.SeverityLow, incidents[2].Severity)
	for _, inc := range incidents {
		assert.True(t, inc.Category.IsValid())
	}
}

func TestPoliceFeed_Limit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, streetCrimes)
	}))
	defer srv.Close()

	q := londonQuery(0.01)
	q.Limit = 1
	incidents, err := NewPoliceFeed("police-uk", srv.URL, time.Second).Incidents(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, incidents, 1)
}

func TestPoliceFeed_SkipsMonthsBeforeWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, streetCrimes)
	}))
	defer srv.Close()
	f := NewPoliceFeed("police-uk", srv.URL, time.Second)

	q := londonQuery(0.01)
	q.Since = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	incidents, err := f.Incidents(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, incidents, 3)

	q.Since = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	incidents, err = f.Incidents(context.Background(), q)
	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestPoliceFeed_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewPoliceFeed("police-uk", srv.URL, time.Second).Incidents(context.Background(), londonQuery(0.01))
	assert.Error(t, err)
}

func TestSynthetic_DeterministicAndInsideBox(t *testing.T) {
	s := NewSynthetic()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	q := londonQuery(0.01)
	first, err := s.Incidents(context.Background(), q)
	require.NoError(t, err)
	second, err := s.Incidents(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for _, inc := range first {
		assert.True(t, q.Box.Contains(inc.Latitude, inc.Longitude))
		assert.Equal(t, models.SourceGlobalSynthetic, inc.Source)
		assert.True(t, inc.Category.IsValid())
		assert.True(t, inc.Severity.IsValid())
		assert.False(t, inc.OccurredAt.After(now))
		assert.True(t, inc.OccurredAt.After(now.Add(-30*24*time.Hour)))
	}
}

func TestSynthetic_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSynthetic().Incidents(ctx, londonQuery(0.01))
	assert.ErrorIs(t, err, context.Canceled)
}
