package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"karla-connector/config"
	httpHandler "karla-connector/internal/adapter/http/handler"
	"karla-connector/internal/adapter/http/middleware"
	"karla-connector/internal/adapter/karla"
	"karla-connector/internal/adapter/metrics"
	pgStorage "karla-connector/internal/adapter/storage/postgres"
	redisStorage "karla-connector/internal/adapter/storage/redis"
	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"
	"karla-connector/internal/service"
	"karla-connector/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const syncStatePrefix = "karla:catalog"

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("KARLA_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.EffectiveLevel(), cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Karla connector")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories and stores
	catalogRepo := pgStorage.NewCatalogRepo(pool)
	webhookLogs := pgStorage.NewWebhookLogRepo(pool)
	settings := redisStorage.NewSettingsStore(rdb, domain.Settings{
		WebhookEnabled: cfg.Webhook.Enabled,
		CatalogEnabled: cfg.Catalog.Enabled,
		OrdersEnabled:  cfg.Orders.Enabled,
	})
	batchQueue := redisStorage.NewBatchQueue(rdb, cfg.Catalog.QueueKey)
	events := redisStorage.NewEventStream(rdb, cfg.Events.Stream, cfg.Events.MaxLen)

	// Karla API and metrics
	collector := metrics.New()
	karlaClient := karla.New(karla.Config{
		BaseURL:  cfg.API.BaseURL,
		ShopSlug: cfg.API.ShopSlug,
		Username: cfg.API.Username,
		Key:      cfg.API.Key,
		Timeout:  cfg.API.Timeout,
	}, karla.WithLogger(log))

	// Core services
	tokenSvc := service.NewJWTTokenService(cfg.Hooks.Secret, cfg.Hooks.Expiry, cfg.Hooks.Issuer)
	webhookSvc := service.NewWebhookService(service.WebhookDeps{
		Signatures: service.NewHMACSignatureService(),
		Settings:   settings,
		Dispatcher: events,
		Logs:       webhookLogs,
		Metrics:    collector,
		Logger:     log,
	}, service.WebhookConfig{Secret: cfg.Webhook.Secret, Tolerance: cfg.Webhook.Tolerance})
	catalogSvc := service.NewCatalogSyncService(service.CatalogSyncDeps{
		Repo:     catalogRepo,
		Sink:     karlaClient,
		Queue:    batchQueue,
		Status:   redisStorage.NewSyncStatusStore(rdb, syncStatePrefix),
		Cooldown: redisStorage.NewCooldownStore(rdb, syncStatePrefix),
		Settings: settings,
		Metrics:  collector,
		Logger:   log,
	}, service.CatalogSyncConfig{
		BatchSize: cfg.Catalog.BatchSize,
		Cooldown:  cfg.Catalog.Cooldown,
		Debug:     cfg.Log.Debug,
	})
	orderSvc := service.NewOrderService(karlaClient, settings, collector, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WebhookSvc:     webhookSvc,
		CatalogSvc:     catalogSvc,
		OrderSvc:       orderSvc,
		Settings:       settings,
		WebhookLogs:    webhookLogs,
		TokenSvc:       tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		WebhookLimit: middleware.RateLimitRule{
			Limit:  cfg.Webhook.RateLimit,
			Window: cfg.Webhook.RateWindow,
		},
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		},
		Metrics: collector.Handler(),
		Logger:  log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// The worker and the server stop together: a listener failure cancels
	// the worker and a signal shuts the server down.
	worker := service.NewBatchWorker(batchQueue, catalogSvc, log)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		worker.Run(gctx)
		return nil
	})
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
	}
	log.Info().Msg("Server exited")
}
