package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/bizservices/pkg/app"
	"github.com/ghuser/bizservices/pkg/logger"
	"github.com/ghuser/bizservices/pkg/telemetry"
	departmentSvcs "github.com/ghuser/bizservices/services/department/application/services"
	departmentEvents "github.com/ghuser/bizservices/services/department/domain/events"
	employeeSvcs "github.com/ghuser/bizservices/services/employee/application/services"
	employeeEvents "github.com/ghuser/bizservices/services/employee/domain/events"
	orderSvcs "github.com/ghuser/bizservices/services/order/application/services"
	orderEvents "github.com/ghuser/bizservices/services/order/domain/events"
	productSvcs "github.com/ghuser/bizservices/services/product/application/services"
	productEvents "github.com/ghuser/bizservices/services/product/domain/events"
)

// errMalformedEvent marks payloads that can never be handled. They are acked
// so the subscriber does not redeliver them.
var errMalformedEvent = errors.New("malformed event payload")

// cacheTarget is the read-model cache maintained by each context's service.
type cacheTarget interface {
	WarmCache(ctx context.Context, id int64) error
	EvictCache(ctx context.Context, id int64) error
}

type subscription struct {
	topic  string
	idKey  string
	target cacheTarget
	evict  bool
}

func subscriptions(a *app.Application) []subscription {
	dept := departmentSvcs.New(a).Department
	emp := employeeSvcs.New(a).Employee
	ord := orderSvcs.New(a).Order
	prod := productSvcs.New(a).Product

	return []subscription{
		{topic: departmentEvents.TopicDepartmentCreated, idKey: "department_id", target: dept},
		{topic: departmentEvents.TopicDepartmentUpdated, idKey: "department_id", target: dept},
		{topic: departmentEvents.TopicDepartmentDeleted, idKey: "department_id", target: dept, evict: true},
		{topic: employeeEvents.TopicEmployeeCreated, idKey: "employee_id", target: emp},
		{topic: employeeEvents.TopicEmployeeUpdated, idKey: "employee_id", target: emp},
		{topic: employeeEvents.TopicEmployeeDeleted, idKey: "employee_id", target: emp, evict: true},
		{topic: orderEvents.TopicOrderCreated, idKey: "order_id", target: ord},
		{topic: orderEvents.TopicOrderUpdated, idKey: "order_id", target: ord},
		{topic: orderEvents.TopicOrderStatusChanged, idKey: "order_id", target: ord},
		{topic: orderEvents.TopicOrderDeleted, idKey: "order_id", target: ord, evict: true},
		{topic: productEvents.TopicProductCreated, idKey: "product_id", target: prod},
		{topic: productEvents.TopicProductUpdated, idKey: "product_id", target: prod},
		{topic: productEvents.TopicProductDeleted, idKey: "product_id", target: prod, evict: true},
	}
}

// registerSubscribers subscribes every topic and drains its error channel.
func registerSubscribers(ctx context.Context, a *app.Application, metrics *telemetry.EventMetrics) error {
	subs := subscriptions(a)
	topics := make([]string, 0, len(subs))

	for _, sub := range subs {
		errCh, err := a.EventBus.Subscribe(ctx, sub.topic, sub.handler(a.Logger, metrics))
		if err != nil {
			return err
		}
		go drain(ctx, a.Logger, sub.topic, errCh)
		topics = append(topics, sub.topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

func drain(ctx context.Context, log logger.Logger, topic string, errCh <-chan error) {
	for err := range errCh {
		log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
		telemetry.CaptureEventError(ctx, topic, err)
	}
}

// handler refreshes the cached entity named by the event. Handlers are
// idempotent: warming reloads from the database and eviction of a missing
// key is a no-op.
func (s subscription) handler(log logger.Logger, metrics *telemetry.EventMetrics) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		id, err := entityID(msg.Payload, s.idKey)
		if err != nil {
			metrics.Handled(ctx, s.topic, err)
			log.WarnContext(ctx, "dropping event", "topic", s.topic, "message_uuid", msg.UUID, "error", err)
			return nil
		}

		if s.evict {
			err = s.target.EvictCache(ctx, id)
		} else {
			err = s.target.WarmCache(ctx, id)
		}
		metrics.Handled(ctx, s.topic, err)
		if err != nil {
			return fmt.Errorf("%s %d: %w", s.topic, id, err)
		}

		log.DebugContext(ctx, "cache refreshed", "topic", s.topic, s.idKey, id, "evicted", s.evict)
		return nil
	}
}

// entityID reads the int64 stored under key in a JSON event payload.
func entityID(payload []byte, key string) (int64, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return 0, fmt.Errorf("%w: %v", errMalformedEvent, err)
	}
	raw, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", errMalformedEvent, key)
	}
	var id int64
	if err := json.Unmarshal(raw, &id); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", errMalformedEvent, key, err)
	}
	return id, nil
}
