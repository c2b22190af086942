package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/geo_safety_system/internal/config"
	"github.com/shenikar/geo_safety_system/internal/models"
)

func testWorker(url string) *WebhookWorker {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewWebhookWorker(nil, log, &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})
}

func samplePayload(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(WebhookEvent{
		Type:  EventTypeSOS,
		Alert: models.SOSAlert{ID: "a1", UserID: "u1", Latitude: 51.5, Longitude: -0.1},
	})
	require.NoError(t, err)
	return string(raw)
}

func TestProcessWebhookEvent_DeliversSigned(t *testing.T) {
	payload := samplePayload(t)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, payload, string(body))
		assert.Equal(t, generateHMACSHA256(payload, "s3cret"), r.Header.Get(signatureHeader))
		assert.Equal(t, EventTypeSOS, r.Header.Get(eventTypeHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	testWorker(srv.URL).processWebhookEvent(context.Background(), payload)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestProcessWebhookEvent_RetriesThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	testWorker(srv.URL).processWebhookEvent(context.Background(), samplePayload(t))
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestDeliver_GivesUp(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := testWorker(srv.URL)
	err := w.deliver(context.Background(), logrus.NewEntry(w.logger), EventTypeSOS, samplePayload(t))
	assert.ErrorIs(t, err, errNotDelivered)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestDeliver_StopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := testWorker(srv.URL)
	w.cfg.WebhookBaseDelay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := w.deliver(ctx, logrus.NewEntry(w.logger), EventTypeSOS, samplePayload(t))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcessWebhookEvent_NoURLSkips(t *testing.T) {
	// без URL запрос не отправляется и паники нет
	testWorker("").processWebhookEvent(context.Background(), samplePayload(t))
	testWorker("").processWebhookEvent(context.Background(), "not json")
}

func TestGenerateHMACSHA256(t *testing.T) {
	assert.Equal(t,
		"f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
		generateHMACSHA256("The quick brown fox jumps over the lazy dog", "key"),
	)
}
