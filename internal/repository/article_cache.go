package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/geo_safety_system/internal/models"
)

// RedisArticleCache кэш новостей по городу и временному окну
type RedisArticleCache struct {
	redisClient redis.Cmdable
}

func NewRedisArticleCache(client redis.Cmdable) *RedisArticleCache {
	return &RedisArticleCache{redisClient: client}
}

// GetArticles возвращает (nil, false, nil), если ключа нет
func (c *RedisArticleCache) GetArticles(ctx context.Context, key string) ([]models.Article, bool, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get articles from cache: %w", err)
	}

	var articles []models.Article
	if err := json.Unmarshal(val, &articles); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal articles from cache: %w", err)
	}
	return articles, true, nil
}

func (c *RedisArticleCache) SetArticles(ctx context.Context, key string, articles []models.Article, ttl time.Duration) error {
	val, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("failed to marshal articles for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set articles in cache: %w", err)
	}
	return nil
}
