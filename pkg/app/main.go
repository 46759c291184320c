package app

import (
	"time"

	"github.com/ghuser/bizservices/pkg/cache"
	"github.com/ghuser/bizservices/pkg/database"
	"github.com/ghuser/bizservices/pkg/events"
	"github.com/ghuser/bizservices/pkg/logger"
)

// Application holds shared infrastructure dependencies for all bounded contexts.
// cmd/api passes it to every <Context>Routes call; cmd/worker passes it to
// every subscriber.
//
// Logging: app.Logger is backed by a trace-aware handler. Use the context
// methods and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "order created", "order_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	// Redis may be nil; every read-model cache then behaves as always empty.
	Redis    *cache.RedisClient
	CacheTTL time.Duration
}
