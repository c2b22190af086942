package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// ProviderRequestsTotal запросы к источникам инцидентов по результату
	ProviderRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geosafety",
		Subsystem: "aggregation",
		Name:      "provider_requests_total",
		Help:      "Incident provider calls, labeled by provider and result (ok, error).",
	}, []string{"provider", "result"})

	// IncidentsScoredTotal сколько инцидентов прошло через скоринг
	IncidentsScoredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "geosafety",
		Subsystem: "scoring",
		Name:      "incidents_scored_total",
		Help:      "Total number of incidents scored for responses.",
	})

	// LocationFallbackTotal отказы геокодера, замененные заглушкой
	LocationFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "geosafety",
		Subsystem: "aggregation",
		Name:      "location_fallback_total",
		Help:      "Reverse geocoding failures answered with the Unknown placeholder.",
	})

	// ZoneRefreshTotal пересчеты опасных зон по городу
	ZoneRefreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geosafety",
		Subsystem: "news",
		Name:      "zone_refresh_total",
		Help:      "Danger zone recomputations, labeled by city and result.",
	}, []string{"city", "result"})

	// SOSAlertsTotal опубликованные SOS-оповещения
	SOSAlertsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geosafety",
		Subsystem: "alerts",
		Name:      "sos_total",
		Help:      "SOS alerts, labeled by result (published, failed).",
	}, []string{"result"})

	// WebhookDeliveriesTotal результаты доставки вебхуков
	WebhookDeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geosafety",
		Subsystem: "alerts",
		Name:      "webhook_deliveries_total",
		Help:      "Webhook delivery outcomes (delivered, failed, skipped).",
	}, []string{"result"})
)

// Register регистрирует метрики в реестре по умолчанию. Повторный вызов безопасен.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			ProviderRequestsTotal,
			IncidentsScoredTotal,
			LocationFallbackTotal,
			ZoneRefreshTotal,
			SOSAlertsTotal,
			WebhookDeliveriesTotal,
		)
	})
}
