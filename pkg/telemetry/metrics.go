package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/bizservices"

// Outcome values recorded by EventMetrics.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// EventMetrics counts domain events handled by the worker, labelled by topic
// and outcome.
type EventMetrics struct {
	handled metric.Int64Counter
}

// NewEventMetrics registers the counters on the global meter provider, so
// call it after Setup.
func NewEventMetrics() (*EventMetrics, error) {
	handled, err := otel.Meter(meterName).Int64Counter(
		"bizservices.events.handled",
		metric.WithDescription("Domain events processed by the worker"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("events.handled counter: %w", err)
	}
	return &EventMetrics{handled: handled}, nil
}

// Handled records one processed event on topic. A non-nil err counts as an error outcome.
func (m *EventMetrics) Handled(ctx context.Context, topic string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.handled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("topic", topic),
		attribute.String("outcome", outcome),
	))
}
