package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/robfig/cron/v3"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/cache"
	"github.com/ghuser/backoffice/pkg/config"
	"github.com/ghuser/backoffice/pkg/database"
	"github.com/ghuser/backoffice/pkg/events"
	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/pkg/telemetry"
	appsvcs "github.com/ghuser/backoffice/services/sales/application/services"
	saleEvents "github.com/ghuser/backoffice/services/sales/domain/events"
	"github.com/ghuser/backoffice/services/sales/domain/models"
)

const dashboardRefreshTimeout = 30 * time.Second

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

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	// The worker only maintains the report cache, so Redis is mandatory here.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}
	svcs := appsvcs.New(appConfig)

	if err := registerSubscribers(ctx, appConfig, cache.NewReportCache(redisClient, cfg.ReportCacheTTL)); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	scheduler, err := startScheduler(cfg, log, svcs.Reports)
	if err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	<-scheduler.Stop().Done()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// reportInvalidator drops cached reports. Satisfied by *cache.ReportCache.
type reportInvalidator interface {
	Invalidate(ctx context.Context) error
}

// dashboardRefresher recomputes and re-caches the dashboard.
type dashboardRefresher interface {
	RefreshDashboard(ctx context.Context) (*models.DashboardStats, error)
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application, reports reportInvalidator) error {
	handler := handleSaleChanged(a.Logger, reports)
	for _, topic := range saleEvents.SaleTopics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", saleEvents.SaleTopics)
	return nil
}

// handleSaleChanged returns a handler for every sale.* event.
// Handlers must be idempotent; EventBus retries up to 3x on failure.
// Any committed sale write can move every report, so the whole report
// namespace is dropped and rebuilt lazily on the next read.
func handleSaleChanged(log logger.Logger, reports reportInvalidator) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt saleEvents.SaleChangedEvent
		if err := events.DecodeJSON(msg, &evt); err != nil {
			// A payload that cannot be decoded will never succeed; ack it.
			log.ErrorContext(ctx, "dropping malformed sale event", "message_id", msg.UUID, "error", err)
			return nil
		}

		if err := reports.Invalidate(ctx); err != nil {
			return err
		}
		log.InfoContext(ctx, "report cache invalidated",
			"event_id", evt.EventID,
			"sale_id", evt.SaleID,
			"client_id", evt.ClientID,
		)
		return nil
	}
}

// startScheduler warms the dashboard cache on cfg.DashboardRefreshSchedule.
// Overlapping runs are skipped and panics are recovered.
func startScheduler(cfg *config.Config, log logger.Logger, reports dashboardRefresher) (*cron.Cron, error) {
	loc, err := cfg.ReportLocation()
	if err != nil {
		return nil, err
	}
	cl := cronLogger{log: log}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(cfg.DashboardRefreshSchedule, refreshDashboard(log, reports)); err != nil {
		return nil, err
	}
	c.Start()
	log.Info("dashboard refresh scheduled", "schedule", cfg.DashboardRefreshSchedule)
	return c, nil
}

func refreshDashboard(log logger.Logger, reports dashboardRefresher) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), dashboardRefreshTimeout)
		defer cancel()

		if _, err := reports.RefreshDashboard(ctx); err != nil {
			log.ErrorContext(ctx, "dashboard refresh failed", "error", err)
			telemetry.CaptureError(ctx, err)
			return
		}
		log.DebugContext(ctx, "dashboard refreshed")
	}
}

// cronLogger adapts logger.Logger to cron.Logger.
type cronLogger struct{ log logger.Logger }

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
