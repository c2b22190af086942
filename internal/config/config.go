package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string   `env:"DATABASE_URL"`
	DBMaxConns     int32    `env:"DB_MAX_CONNS" envDefault:"10"`
	MigrationsPath string   `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	StorageBackend string   `env:"STORAGE_BACKEND" envDefault:"postgres"`
	HTTPPort       string   `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string   `env:"LOG_FORMAT" envDefault:"json"`
	CORSOrigins    []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	RedisPool int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Webhook Config (доставка SOS-оповещений)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Внешние источники инцидентов
	ExternalFeedURL      string        `env:"EXTERNAL_FEED_URL" envDefault:"https://data.police.uk/api"`
	ExternalFeedName     string        `env:"EXTERNAL_FEED_NAME" envDefault:"police-uk"`
	ExternalFeedEnabled  bool          `env:"EXTERNAL_FEED_ENABLED" envDefault:"false"`
	ExternalFeedTimeout  time.Duration `env:"EXTERNAL_FEED_TIMEOUT" envDefault:"3s"`
	SyntheticDataEnabled bool          `env:"SYNTHETIC_DATA_ENABLED" envDefault:"false"`

	// Геокодирование
	GoogleMapsAPIKey string `env:"GOOGLE_MAPS_API_KEY"`

	// Новости и опасные зоны
	NewsAPIURL          string        `env:"NEWS_API_URL" envDefault:"https://newsapi.org/v2"`
	NewsAPIKey          string        `env:"NEWS_API_KEY"`
	NewsCities          []string      `env:"NEWS_CITIES" envSeparator:","`
	NewsCacheBucket     time.Duration `env:"NEWS_CACHE_BUCKET" envDefault:"15m"`
	ZoneRefreshInterval time.Duration `env:"ZONE_REFRESH_INTERVAL" envDefault:"30m"`

	// Живая геолокация
	ShareTTL           time.Duration `env:"LOCATION_SHARE_TTL" envDefault:"1h"`
	ShareSweepInterval time.Duration `env:"LOCATION_SHARE_SWEEP_INTERVAL" envDefault:"1m"`

	// Тепловая карта
	HeatmapResolution float64 `env:"HEATMAP_RESOLUTION" envDefault:"0.001"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS" envSeparator:","`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	for i, key := range cfg.APIKeys {
		cfg.APIKeys[i] = strings.TrimSpace(key)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StorageBackendMemory:
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q (must be 'postgres' or 'memory')", c.StorageBackend)
	}
	if c.HeatmapResolution <= 0 {
		return fmt.Errorf("HEATMAP_RESOLUTION must be positive")
	}
	return nil
}
