package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/backoffice/pkg/cache"
	"github.com/ghuser/backoffice/pkg/config"
	"github.com/ghuser/backoffice/pkg/database"
	"github.com/ghuser/backoffice/pkg/events"
	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/pkg/telemetry"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to every service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "sale created", "sale_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus        // nil disables the sale event outbox
	Redis        *cache.RedisClient      // nil disables the report cache
	Metrics      *telemetry.SalesMetrics // nil-safe
	SessionStore sessions.Store          // Redis-backed session store; nil in worker process
}
