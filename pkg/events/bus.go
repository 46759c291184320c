// Package events is the domain event bus shared by every bounded context.
// Repositories publish inside their write transaction with PublishTx, so an
// event exists only if the row change commits. cmd/worker subscribes to keep
// the Redis read models current.
//
// Transport is Watermill's SQL pub/sub on the service database. The API
// process publishes through a forwarder queue and runs the forwarder that
// moves envelopes onto their real topics. Workers sharing a consumer group
// split the messages between them; each message reaches one worker.
package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/bizservices/pkg/config"
	"github.com/ghuser/bizservices/pkg/logger"
)

const (
	forwarderTopic = "_forwarder_queue"
	forwarderGroup = "forwarder-consumer"
	drainTimeout   = 30 * time.Second
)

// EventBus publishes and consumes domain events over PostgreSQL.
type EventBus struct {
	db         *sql.DB
	subscriber *watermillsql.Subscriber
	fwd        *forwarder.Forwarder
	log        logger.Logger
	retry      retryPolicy
	poll       time.Duration

	// forwarding wraps every published message in a forwarder envelope.
	forwarding bool
	inFlight   sync.WaitGroup
}

// NewEventBus opens its own connection pool on cfg.DatabaseURL and
// subscribes in cfg.EventsConsumerGroup, defaulting to "<service>-consumer".
// Messages published through it go straight to their topic.
func NewEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return open(cfg, log, false)
}

// NewEventBusWithForwarder is NewEventBus with publishes routed through the
// forwarder queue. Call StartForwarder to deliver them.
func NewEventBusWithForwarder(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return open(cfg, log, true)
}

func open(cfg *config.Config, log logger.Logger, forwarding bool) (*EventBus, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}

	q := &EventBus{
		db:         db,
		log:        log.With("component", "events"),
		retry:      newRetryPolicy(cfg.EventsMaxRetries, cfg.EventsRetryDelay),
		poll:       cfg.EventsPollInterval,
		forwarding: forwarding,
	}

	group := cfg.EventsConsumerGroup
	if group == "" {
		group = cfg.ServiceName + "-consumer"
	}
	if q.subscriber, err = q.newSubscriber(group); err != nil {
		_ = db.Close()
		return nil, err
	}
	return q, nil
}

func (q *EventBus) newSubscriber(group string) (*watermillsql.Subscriber, error) {
	sub, err := watermillsql.NewSubscriber(q.db, watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
		PollInterval:     q.poll,
	}, &slogAdapter{log: q.log})
	if err != nil {
		return nil, fmt.Errorf("events: subscriber %s: %w", group, err)
	}
	return sub, nil
}

// newPublisher returns a SQL publisher on db. Only the long-lived pool
// creates schema; transactions rely on it existing.
func (q *EventBus) newPublisher(db watermillsql.ContextExecutor) (*watermillsql.Publisher, error) {
	_, initSchema := db.(*sql.DB)
	pub, err := watermillsql.NewPublisher(db, watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: initSchema,
	}, &slogAdapter{log: q.log})
	if err != nil {
		return nil, fmt.Errorf("events: publisher: %w", err)
	}
	return pub, nil
}

// StartForwarder runs the forwarder until ctx ends and returns once it is
// consuming. It may be called once, on a bus built by NewEventBusWithForwarder.
func (q *EventBus) StartForwarder(ctx context.Context) error {
	if !q.forwarding {
		return errors.New("events: StartForwarder called on non-forwarder EventBus")
	}
	if q.fwd != nil {
		return errors.New("events: forwarder already started")
	}

	sub, err := q.newSubscriber(forwarderGroup)
	if err != nil {
		return err
	}
	pub, err := q.newPublisher(q.db)
	if err != nil {
		_ = sub.Close()
		return err
	}
	fwd, err := forwarder.NewForwarder(sub, pub, &slogAdapter{log: q.log}, forwarder.Config{
		ForwarderTopic: forwarderTopic,
	})
	if err != nil {
		_ = pub.Close()
		_ = sub.Close()
		return fmt.Errorf("events: forwarder: %w", err)
	}
	q.fwd = fwd

	q.inFlight.Add(1)
	go func() {
		defer q.inFlight.Done()
		q.log.InfoContext(ctx, "forwarder started", "topic", forwarderTopic)
		if err := fwd.Run(ctx); err != nil {
			q.log.ErrorContext(ctx, "forwarder stopped", "error", err)
			return
		}
		q.log.InfoContext(ctx, "forwarder stopped")
	}()

	select {
	case <-fwd.Running():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: waiting for forwarder: %w", ctx.Err())
	}
}

// Ping checks the bus's database connection.
func (q *EventBus) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops consuming, waits up to 30s for in-flight handlers and closes
// the connection pool.
func (q *EventBus) Close() error {
	var errs []error
	if err := q.subscriber.Close(); err != nil {
		errs = append(errs, fmt.Errorf("events: close subscriber: %w", err))
	}
	if q.fwd != nil {
		if err := q.fwd.Close(); err != nil {
			errs = append(errs, fmt.Errorf("events: close forwarder: %w", err))
		}
	}

	done := make(chan struct{})
	go func() {
		q.inFlight.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(drainTimeout):
		q.log.Error("timed out waiting for in-flight handlers", "timeout", drainTimeout)
	}

	if err := q.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("events: close db: %w", err))
	}
	return errors.Join(errs...)
}
