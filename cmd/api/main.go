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

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/bizservices/docs/swagger"
	"github.com/ghuser/bizservices/pkg/app"
	"github.com/ghuser/bizservices/pkg/config"
	"github.com/ghuser/bizservices/pkg/httpx"
	"github.com/ghuser/bizservices/pkg/logger"
	"github.com/ghuser/bizservices/pkg/telemetry"
	departmentApi "github.com/ghuser/bizservices/services/department/application/api"
	employeeApi "github.com/ghuser/bizservices/services/employee/application/api"
	orderApi "github.com/ghuser/bizservices/services/order/application/api"
	productApi "github.com/ghuser/bizservices/services/product/application/api"
)

const shutdownTimeout = 30 * time.Second

// contexts lists the bounded contexts mounted under /api/v1.
var contexts = []string{"department", "employee", "order", "product"}

// @title			Business Services API
// @version		1.0
// @description	Department, employee, order and product services.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/api/v1
// @schemes		http https
func main() {
	ctx := context.Background()

	rt, err := app.Start(ctx, app.RoleAPI)
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer rt.Close(ctx) //nolint:errcheck

	srv := httpx.NewServer(rt.Config.HTTPAddr, newRouter(rt))

	serveErr := make(chan error, 1)
	go func() {
		rt.Logger.Info("server listening", "addr", srv.Addr, "env", rt.Config.Environment, "contexts", contexts)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serveErr:
		rt.Logger.Error("server error", "error", err)
	}

	rt.Logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		rt.Logger.Error("forced shutdown", "error", err)
	}
	rt.Logger.Info("server stopped")
}

func newRouter(rt *app.Runtime) http.Handler {
	cfg := rt.Config
	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimit:          cfg.HTTPRateLimit,
			MaxBodyBytes:       cfg.HTTPMaxBodyBytes,
			RequestTimeout:     cfg.HTTPRequestTimeout,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(rt.Logger),
			Sentry:   telemetry.SentryMiddleware(),
			Otel:     otelhttp.NewMiddleware(cfg.ServiceName),
			Logger:   logger.Middleware(rt.Logger),
		},
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database: rt.Db,
		Redis:    rt.Redis,
		EventBus: rt.EventBus,
	}))
	r.Get("/info", httpx.InfoHandler(httpx.ServiceInfo{
		Name:        cfg.ServiceName,
		Version:     cfg.ServiceVersion,
		Environment: cfg.Environment,
		Contexts:    contexts,
	}))
	r.Method(http.MethodGet, "/metrics", rt.Metrics)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api/v1", func(r chi.Router) {
		registerRoutes(r, rt.Application)
	})
	return r
}

// registerRoutes mounts every bounded context.
func registerRoutes(r chi.Router, a *app.Application) {
	departmentApi.DepartmentRoutes(r, a)
	employeeApi.EmployeeRoutes(r, a)
	orderApi.OrderRoutes(r, a)
	productApi.ProductRoutes(r, a)
}
