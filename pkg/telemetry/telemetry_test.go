package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/ghuser/bizservices/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "bizservices-test",
		ServiceVersion: "test",
		Environment:    config.EnvTesting,
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handler == nil {
		t.Fatal("expected non-nil metrics handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_InstallsTraceContextPropagator(t *testing.T) {
	shutdown, _, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	fields := otel.GetTextMapPropagator().Fields()
	if !contains(fields, "traceparent") || !contains(fields, "baggage") {
		t.Fatalf("unexpected propagator fields %v", fields)
	}
}

func TestSetup_MetricsHandlerServesEventCounter(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	m, err := NewEventMetrics()
	if err != nil {
		t.Fatalf("NewEventMetrics: %v", err)
	}
	m.Handled(context.Background(), "order.created", nil)
	m.Handled(context.Background(), "order.created", errors.New("boom"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "bizservices_events_handled") {
		t.Errorf("expected event counter in /metrics output")
	}
	if !strings.Contains(body, `outcome="error"`) {
		t.Errorf("expected error outcome label in /metrics output")
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{config.EnvDevelopment, sdktrace.AlwaysSample().Description()},
		{config.EnvProduction, sdktrace.ParentBased(sdktrace.TraceIDRatioBased(productionSampleRatio)).Description()},
	}
	for _, tt := range tests {
		if got := sampler(tt.env).Description(); got != tt.want {
			t.Errorf("sampler(%q) = %s, want %s", tt.env, got, tt.want)
		}
	}
}

func TestSetupSentry_EmptyDSNIsNoop(t *testing.T) {
	if err := SetupSentry(baseConfig()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	CaptureEventError(context.Background(), "order.created", errors.New("not sent"))
}

func TestSentrySampleRate(t *testing.T) {
	if got := sentrySampleRate(config.EnvProduction); got != productionSampleRatio {
		t.Errorf("production rate = %v", got)
	}
	if got := sentrySampleRate(config.EnvDevelopment); got != 1.0 {
		t.Errorf("development rate = %v", got)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
