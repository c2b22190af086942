package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/geo_safety_system/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "webhook_events"

	EventTypeSOS = "sos"
)

// WebhookEvent - событие в очереди доставки
type WebhookEvent struct {
	Type      string          `json:"type"`
	Alert     models.SOSAlert `json:"alert"`
	Timestamp time.Time       `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации SOS-оповещений
type WebhookPublisher interface {
	Publish(ctx context.Context, alert models.SOSAlert) error
}

// RedisWebhookPublisher - реализация WebhookPublisher поверх списка Redis
type RedisWebhookPublisher struct {
	redisClient redis.Cmdable
	now         func() time.Time
}

func NewRedisWebhookPublisher(client redis.Cmdable) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
		now:         time.Now,
	}
}

// Publish кладет событие в левую часть очереди, воркер забирает справа
func (p *RedisWebhookPublisher) Publish(ctx context.Context, alert models.SOSAlert) error {
	payload, err := json.Marshal(WebhookEvent{
		Type:      EventTypeSOS,
		Alert:     alert,
		Timestamp: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
