package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/ghuser/bizservices/pkg/cache"
	"github.com/ghuser/bizservices/pkg/config"
	"github.com/ghuser/bizservices/pkg/database"
	"github.com/ghuser/bizservices/pkg/events"
	"github.com/ghuser/bizservices/pkg/logger"
	"github.com/ghuser/bizservices/pkg/telemetry"
)

// Role selects how Start wires the event bus.
type Role string

const (
	// RoleAPI publishes through the forwarder queue and runs the forwarder.
	RoleAPI Role = "api"
	// RoleWorker consumes events directly.
	RoleWorker Role = "worker"
)

// Runtime is a started process: its Application plus what main needs to
// serve and stop.
type Runtime struct {
	*Application
	Config *config.Config
	// Metrics serves the Prometheus exposition of every OTel instrument.
	Metrics http.Handler

	closers []func(context.Context) error
}

// Start loads config and brings up telemetry, the database pool, the event
// bus and the cache, in that order. On error everything already started is
// closed again.
func Start(ctx context.Context, role Role) (_ *Runtime, err error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := config.ValidateForProduction(cfg); err != nil {
		return nil, err
	}

	log := logger.New(cfg).With("role", string(role))
	rt := &Runtime{Config: cfg, Application: &Application{Logger: log, CacheTTL: cfg.CacheTTL}}
	defer func() {
		if err != nil {
			_ = rt.Close(ctx)
		}
	}()

	otelShutdown, metrics, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("otel: %w", err)
	}
	rt.Metrics = metrics
	rt.onClose(otelShutdown)

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("sentry disabled", "error", err)
	}
	rt.onClose(func(context.Context) error { telemetry.SentryFlush(); return nil })

	if rt.Db, err = database.NewPool(ctx, cfg.DatabaseURL, log); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	rt.onClose(func(context.Context) error { rt.Db.Close(); return nil })
	log.Info("database pool connected")

	if rt.EventBus, err = newBus(ctx, cfg, log, role); err != nil {
		return nil, fmt.Errorf("event bus: %w", err)
	}
	rt.onClose(func(context.Context) error { return rt.EventBus.Close() })

	if rt.Redis, err = cache.NewRedisClient(cfg); err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	rt.onClose(func(context.Context) error { return rt.Redis.Close() })
	if rt.Redis.Enabled() {
		log.Info("redis connected", "cache_ttl", cfg.CacheTTL)
	} else {
		log.Warn("read-model cache disabled")
	}

	return rt, nil
}

func newBus(ctx context.Context, cfg *config.Config, log logger.Logger, role Role) (*events.EventBus, error) {
	if role != RoleAPI {
		return events.NewEventBus(cfg, log)
	}
	bus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := bus.StartForwarder(ctx); err != nil {
		_ = bus.Close()
		return nil, err
	}
	return bus, nil
}

func (rt *Runtime) onClose(fn func(context.Context) error) {
	rt.closers = append(rt.closers, fn)
}

// Close stops everything Start brought up, newest first.
func (rt *Runtime) Close(ctx context.Context) error {
	var errs []error
	for _, fn := range slices.Backward(rt.closers) {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	rt.closers = nil
	return errors.Join(errs...)
}
