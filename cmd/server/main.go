package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/cache"
	"github.com/SAP-F-2025/question-delivery-service/internal/config"
	"github.com/SAP-F-2025/question-delivery-service/internal/handlers"
	"github.com/SAP-F-2025/question-delivery-service/internal/metrics"
	"github.com/SAP-F-2025/question-delivery-service/internal/repositories"
	mongorepo "github.com/SAP-F-2025/question-delivery-service/internal/repositories/mongo"
	"github.com/SAP-F-2025/question-delivery-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/question-delivery-service/internal/retrieval"
	"github.com/SAP-F-2025/question-delivery-service/internal/services"
	"github.com/SAP-F-2025/question-delivery-service/internal/utils"
	"github.com/SAP-F-2025/question-delivery-service/pkg"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Environment)
	slogger := utils.ToSlogLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	questions, closeStore, err := openQuestionStore(ctx, cfg)
	if err != nil {
		logger.LogError(err, "Failed to open question store", "store", cfg.QuestionStore)
		os.Exit(1)
	}
	defer closeStore()

	var sharedCache cache.CacheService
	if redisClient, err := pkg.NewRedisClient(ctx, cfg); err != nil {
		logger.Warn("Redis unavailable, serving batches without the shared tier", "error", err)
	} else {
		defer redisClient.Close()
		sharedCache = cache.NewRedisCache(redisClient, slogger)
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		logger.LogError(err, "Failed to create event publisher")
		os.Exit(1)
	}
	defer publisher.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	localCache := retrieval.NewCache(retrieval.WithCacheMetrics(collector))
	deps := services.Dependencies{
		Questions:   questions,
		SharedCache: sharedCache,
		LocalCache:  localCache,
		Publisher:   publisher,
		Metrics:     collector,
		Logger:      slogger,
		BatchTTL:    cfg.BatchCacheTTL,
	}
	if cfg.KnownUsersURL != "" {
		fetcher := retrieval.NewFetcher(&http.Client{Timeout: 30 * time.Second}, slogger, retrieval.WithFetchMetrics(collector))
		retry := retrieval.RetryOptions{MaxRetries: cfg.FetchMaxRetries, Delay: cfg.FetchDelay}
		deps.Directory = retrieval.NewDirectory(cfg.KnownUsersURL, fetcher, localCache, retry, slogger)
	}

	serviceManager := services.NewServiceManager(deps)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), utils.ContextLogger(logger), utils.LoggerMiddleware(logger))
	handlers.NewHandlerManager(serviceManager, registry, logger).SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting question delivery service", "port", cfg.Port, "store", cfg.QuestionStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.LogError(err, "HTTP server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.LogError(err, "Graceful shutdown failed")
	}
}

// openQuestionStore returns the repository selected by QUESTION_STORE and a
// function releasing its connection
func openQuestionStore(ctx context.Context, cfg *config.Config) (repositories.QuestionRepository, func(), error) {
	switch cfg.QuestionStore {
	case config.StoreMongo:
		client, db, err := pkg.NewMongoDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return mongorepo.NewQuestionMongo(db), func() { _ = client.Disconnect(context.Background()) }, nil
	default:
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.AutoMigrate(db); err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return postgres.NewQuestionPostgreSQL(db), closeDB, nil
	}
}
