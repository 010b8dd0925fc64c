package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/backoffice/docs/swagger"
	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/pkg/cache"
	"github.com/ghuser/backoffice/pkg/config"
	"github.com/ghuser/backoffice/pkg/database"
	"github.com/ghuser/backoffice/pkg/events"
	"github.com/ghuser/backoffice/pkg/httpx"
	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/pkg/telemetry"
	salesApi "github.com/ghuser/backoffice/services/sales/application/api"
)

// @title					Back-office Sales API
// @version				1.0
// @description			Point-of-sale transactions and sales reporting.
// @contact.name			API Support
// @contact.email			support@example.com
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	salesMetrics, err := telemetry.NewSalesMetrics(nil)
	if err != nil {
		log.Error("failed to create sales metrics", "error", err)
		os.Exit(1)
	}

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Metrics:  salesMetrics,
	}
	health := httpx.HealthChecks{Database: pool, EventBus: eventBus}

	// Redis backs the report cache and sessions. An empty REDIS_URL runs
	// without both: reports hit the database and writes are unguarded.
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")

		appConfig.Redis = redisClient
		appConfig.SessionStore = auth.NewSessionStore(redisClient.Client(), auth.SessionOptions{
			AuthKey:       []byte(cfg.SessionAuthKey),
			EncryptionKey: []byte(cfg.SessionEncryptionKey),
			Secure:        cfg.Environment == config.EnvProduction,
			TTL:           cfg.SessionTTL,
		})
		health.Redis = redisClient
		log.Info("session store initialized", "backend", "redis")
	} else {
		log.Warn("REDIS_URL empty, report cache and session guard disabled")
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimit:          cfg.HTTPRateLimit,
			MaxBodyBytes:       cfg.HTTPMaxBodyBytes,
			HandlerTimeout:     cfg.HTTPHandlerTimeout,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(health))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r, cfg.HTTPHandlerTimeout)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	salesApi.SalesRoutes(r, a)
}
