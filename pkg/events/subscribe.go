package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/bizservices/pkg/logger"
)

const errBuffer = 100

// instrumentationName names the consumer tracer. It is resolved per message so
// a provider installed after package init is honoured.
const instrumentationName = "github.com/ghuser/bizservices/pkg/events"

// Handler processes one message. It must be idempotent: delivery is
// at-least-once.
type Handler func(ctx context.Context, msg *message.Message) error

type retryPolicy struct {
	attempts int
	base     time.Duration
}

func newRetryPolicy(attempts int, base time.Duration) retryPolicy {
	if attempts < 1 {
		attempts = 1
	}
	if base <= 0 {
		base = time.Second
	}
	return retryPolicy{attempts: attempts, base: base}
}

// run calls h until it succeeds or the attempts are spent, doubling the wait
// after each failure.
func (p retryPolicy) run(ctx context.Context, msg *message.Message, h Handler, log logger.Logger) error {
	delay := p.base
	var err error
	for attempt := 1; ; attempt++ {
		if err = h(ctx, msg); err == nil {
			return nil
		}
		if attempt == p.attempts {
			return fmt.Errorf("events: handler failed after %d attempts: %w", p.attempts, err)
		}
		log.WarnContext(ctx, "handler failed, retrying",
			"attempt", attempt, "max_attempts", p.attempts, "next_delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// Subscribe consumes topic until ctx ends or the bus closes. Each message is
// handled in a consumer span that continues the publisher's trace. A message
// whose handler still fails after the retry policy is nacked and its error is
// sent on the returned channel, which the caller must drain.
func (q *EventBus) Subscribe(ctx context.Context, topic string, h Handler) (<-chan error, error) {
	msgs, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe %s: %w", topic, err)
	}

	errCh := make(chan error, errBuffer)
	log := q.log.With("topic", topic)

	q.inFlight.Add(1)
	go func() {
		defer q.inFlight.Done()
		defer close(errCh)

		for msg := range msgs {
			err := q.handle(ctx, topic, msg, h, log)
			if err == nil {
				msg.Ack()
				continue
			}
			msg.Nack()
			select {
			case errCh <- err:
			default:
				log.ErrorContext(ctx, "error channel full, dropping error", "error", err)
			}
		}
	}()
	return errCh, nil
}

func (q *EventBus) handle(ctx context.Context, topic string, msg *message.Message, h Handler, log logger.Logger) (err error) {
	ctx, span := otel.Tracer(instrumentationName).Start(extractTrace(ctx, msg), "consume "+topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "watermill"),
			attribute.String("messaging.destination.name", topic),
			attribute.String("messaging.message.id", msg.UUID),
			attribute.String("event.id", msg.Metadata.Get(MetadataEventID)),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	return q.retry.run(ctx, msg, h, log)
}
