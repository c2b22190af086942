package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_safety_system/internal/config"
	"github.com/shenikar/geo_safety_system/internal/feed"
	"github.com/shenikar/geo_safety_system/internal/geocode"
	v1 "github.com/shenikar/geo_safety_system/internal/handler/http/v1"
	"github.com/shenikar/geo_safety_system/internal/livelocation"
	"github.com/shenikar/geo_safety_system/internal/metrics"
	"github.com/shenikar/geo_safety_system/internal/news"
	"github.com/shenikar/geo_safety_system/internal/repository"
	"github.com/shenikar/geo_safety_system/internal/service"
	"github.com/shenikar/geo_safety_system/internal/webhook"
	"github.com/shenikar/geo_safety_system/pkg/logger"
	"github.com/shenikar/geo_safety_system/pkg/postgres"
	redisclient "github.com/shenikar/geo_safety_system/pkg/redis"

	_ "github.com/shenikar/geo_safety_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Geo Safety System API
// @version 1.0
// @description Location safety service: crime aggregation, route scoring, news danger zones, ratings heatmap and SOS alerts.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// openStores выбирает хранилища по STORAGE_BACKEND. Для postgres возвращается пул,
// который вызывающий должен закрыть.
func openStores(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.IncidentStore, service.RatingStore, *pgxpool.Pool, error) {
	if cfg.StorageBackend == config.StorageBackendMemory {
		log.Warn("Using in-memory storage, data is lost on restart")
		return repository.NewMemoryIncidentStore(), repository.NewMemoryRatingStore(), nil, nil
	}

	if err := runMigrations(cfg, log); err != nil {
		return nil, nil, nil, err
	}
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("Successfully connected to PostgreSQL")
	return repository.NewIncidentRepository(dbpool), repository.NewRatingRepository(dbpool), dbpool, nil
}

// incidentProviders дополнительные источники инцидентов в порядке приоритета при слиянии
func incidentProviders(cfg *config.Config, log *logrus.Logger) []service.IncidentProvider {
	var providers []service.IncidentProvider
	if cfg.ExternalFeedEnabled {
		providers = append(providers, feed.NewPoliceFeed(cfg.ExternalFeedName, cfg.ExternalFeedURL, cfg.ExternalFeedTimeout))
		log.WithField("provider", cfg.ExternalFeedName).Info("External incident feed enabled")
	}
	if cfg.SyntheticDataEnabled {
		providers = append(providers, feed.NewSynthetic())
		log.Warn("Synthetic incident data enabled, responses include non-authoritative records")
	}
	return providers
}

func locationResolver(cfg *config.Config, log *logrus.Logger) service.LocationResolver {
	if cfg.GoogleMapsAPIKey == "" {
		log.Warn("GOOGLE_MAPS_API_KEY not set, location context will be Unknown")
		return geocode.Unavailable{}
	}
	resolver, err := geocode.NewGoogleResolver(cfg.GoogleMapsAPIKey)
	if err != nil {
		log.WithError(err).Error("Failed to create Google Maps client, location context will be Unknown")
		return geocode.Unavailable{}
	}
	return resolver
}

func articleSource(cfg *config.Config, log *logrus.Logger) news.ArticleSource {
	if cfg.NewsAPIKey == "" {
		log.Warn("NEWS_API_KEY not set, danger zones are built from synthetic articles")
		return news.NewSyntheticSource(cfg.NewsCacheBucket)
	}
	return news.NewNewsAPISource(cfg.NewsAPIURL, cfg.NewsAPIKey, cfg.ExternalFeedTimeout)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера и метрик
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	metrics.Register()

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	incidentStore, ratingStore, dbpool, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	if dbpool != nil {
		defer dbpool.Close()
	}

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Вебхуки SOS: издатель и воркер доставки
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	workerDone := webhookWorker.Start(ctx)

	// Живая геолокация
	shares := livelocation.NewStore(cfg.ShareTTL, log)
	go shares.Run(ctx, cfg.ShareSweepInterval)

	// Опасные зоны из новостей
	gazetteer := news.DefaultGazetteer()
	articles := news.NewCachedSource(articleSource(cfg, log), repository.NewRedisArticleCache(redisClient), cfg.NewsCacheBucket, log)
	extractor := news.NewExtractor(articles, gazetteer, news.NewZoneCache(cfg.ZoneRefreshInterval), log)

	cities := cfg.NewsCities
	if len(cities) == 0 {
		cities = gazetteer.Keys()
	}
	refresher := news.NewRefresher(extractor, cities, cfg.ZoneRefreshInterval, log)
	go refresher.RunOnce(ctx)
	if err := refresher.Start(ctx); err != nil {
		log.Fatalf("Failed to start zone refresher: %v", err)
	}

	// Инициализация сервисов
	crimeService := service.NewCrimeService(incidentStore, incidentProviders(cfg, log), locationResolver(cfg, log), cfg.ExternalFeedTimeout, log)
	routeService := service.NewRouteService(crimeService, extractor, log)
	ratingService := service.NewRatingService(ratingStore, cfg.HeatmapResolution, log)
	alertService := service.NewAlertService(crimeService, webhookPublisher, shares, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(crimeService, routeService, ratingService, alertService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		MaxAge:         300,
	})

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	cancel()
	refresher.Stop()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Webhook worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
