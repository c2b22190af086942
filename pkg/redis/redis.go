package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/geo_safety_system/internal/config"
)

// NewRedisClient создает клиент Redis для очереди SOS-оповещений и кэша новостей
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	poolSize := cfg.RedisPool
	if poolSize <= 0 {
		poolSize = 10
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: poolSize,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	return rdb, nil
}
