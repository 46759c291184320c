package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghuser/bizservices/pkg/app"
	"github.com/ghuser/bizservices/pkg/telemetry"
)

func main() {
	if err := run(); err != nil {
		slog.Error("worker failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := app.Start(ctx, app.RoleWorker)
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	// Close waits for in-flight handlers before the pools go away.
	defer rt.Close(context.Background()) //nolint:errcheck

	metrics, err := telemetry.NewEventMetrics()
	if err != nil {
		return err
	}
	if err := registerSubscribers(ctx, rt.Application, metrics); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	<-ctx.Done()
	rt.Logger.Info("worker stopping")
	return nil
}
