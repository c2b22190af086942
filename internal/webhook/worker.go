package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_safety_system/internal/config"
	"github.com/shenikar/geo_safety_system/internal/metrics"
)

const (
	signatureHeader = "X-Webhook-Signature"
	eventTypeHeader = "X-Webhook-Event"
	popTimeout      = 5 * time.Second
)

var errNotDelivered = errors.New("webhook not delivered")

// WebhookWorker - забирает события из очереди Redis и доставляет их на WEBHOOK_URL
type WebhookWorker struct {
	redisClient redis.Cmdable
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewWebhookWorker(redisClient redis.Cmdable, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди; останавливается по отмене ctx.
// Возвращенный канал закрывается после выхода горутины.
func (w *WebhookWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.Info("Starting webhook worker...")
	go func() {
		defer close(done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping webhook worker.")
				return
			}

			// BRPOP с таймаутом, чтобы периодически проверять ctx
			result, err := w.redisClient.BRPop(ctx, popTimeout, webhookQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
				sleep(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.processWebhookEvent(ctx, result[1])
		}
	}()
	return done
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, payload string) {
	var event WebhookEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
		metrics.WebhookDeliveriesTotal.WithLabelValues("invalid").Inc()
		return
	}

	log := w.logger.WithFields(logrus.Fields{
		"event_type":    event.Type,
		"alert_id":      event.Alert.ID,
		"event_user_id": event.Alert.UserID,
	})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		metrics.WebhookDeliveriesTotal.WithLabelValues("skipped").Inc()
		return
	}

	if err := w.deliver(ctx, log, event.Type, payload); err != nil {
		log.WithError(err).Errorf("Failed to deliver webhook after %d attempts.", w.cfg.WebhookMaxRetries)
		metrics.WebhookDeliveriesTotal.WithLabelValues("failed").Inc()
		return
	}
	metrics.WebhookDeliveriesTotal.WithLabelValues("delivered").Inc()
}

// deliver отправляет payload с экспоненциальной задержкой между попытками
func (w *WebhookWorker) deliver(ctx context.Context, log *logrus.Entry, eventType, payload string) error {
	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			if !sleep(ctx, delay) {
				return ctx.Err()
			}
			delay *= 2
		}

		status, err := w.send(ctx, eventType, payload)
		if err == nil && status >= 200 && status < 300 {
			log.Info("Webhook delivered successfully.")
			return nil
		}
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retries left: %d", maxRetries-1-i)
		} else {
			log.Warnf("Webhook delivery failed with status code %d. Retries left: %d", status, maxRetries-1-i)
		}
	}
	return errNotDelivered
}

func (w *WebhookWorker) send(ctx context.Context, eventType, payload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(eventTypeHeader, eventType)

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// sleep ждет d или отмены ctx; false означает отмену
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
