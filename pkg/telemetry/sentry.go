package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/bizservices/pkg/config"
)

// SetupSentry initializes the Sentry SDK when a DSN is configured. Events are
// tagged with the service name and sampled like traces.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		AttachStacktrace: true,
		TracesSampleRate: sentrySampleRate(cfg.Environment),
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("service", cfg.ServiceName)
	})
	return nil
}

func sentrySampleRate(environment string) float64 {
	if environment == config.EnvProduction {
		return productionSampleRatio
	}
	return 1.0
}

const sentryFlushTimeout = 2 * time.Second

// SentryFlush blocks until buffered events are sent or the timeout passes.
func SentryFlush() {
	sentry.Flush(sentryFlushTimeout)
}

// SentryMiddleware returns a net/http middleware that puts a request hub on
// the context and captures panics. Repanic lets logger.Recovery still write the 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}

// CaptureEventError reports a failed event handler with the topic as a tag.
// The request-scoped hub is used when ctx carries one.
func CaptureEventError(ctx context.Context, topic string, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("topic", topic)
		hub.CaptureException(err)
	})
}
