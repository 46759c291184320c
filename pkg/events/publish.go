package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Metadata keys set on every domain event message.
const (
	MetadataEventID      = "event_id"
	MetadataEventVersion = "event_version"
)

// NewEventMessage encodes payload as JSON and tags it with the event id and
// schema version.
func NewEventMessage(eventID string, version int, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.Metadata.Set(MetadataEventID, eventID)
	msg.Metadata.Set(MetadataEventVersion, strconv.Itoa(version))
	return msg, nil
}

// PublishTx stores payload on topic inside tx. The trace in ctx travels in
// the message metadata so the consumer's span joins it.
func (q *EventBus) PublishTx(ctx context.Context, tx *sql.Tx, topic, eventID string, version int, payload any) error {
	msg, err := NewEventMessage(eventID, version, payload)
	if err != nil {
		return err
	}
	injectTrace(ctx, msg)

	pub, err := q.txPublisher(tx)
	if err != nil {
		return err
	}
	if err := pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("events: publish %s: %w", topic, err)
	}
	return nil
}

func (q *EventBus) txPublisher(tx *sql.Tx) (message.Publisher, error) {
	pub, err := q.newPublisher(tx)
	if err != nil {
		return nil, err
	}
	if q.forwarding {
		return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: forwarderTopic}), nil
	}
	return pub, nil
}

func injectTrace(ctx context.Context, msgs ...*message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
}

func extractTrace(ctx context.Context, msg *message.Message) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(msg.Metadata))
}
