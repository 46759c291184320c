package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the order repository.
const (
	TopicOrderCreated       = "order.created"
	TopicOrderUpdated       = "order.updated"
	TopicOrderDeleted       = "order.deleted"
	TopicOrderStatusChanged = "order.status_changed"
)

// EventVersion is the current schema version of every order event.
const EventVersion = 1

// OrderChangedEvent is published on order.created and order.updated.
type OrderChangedEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	Version       int       `json:"version"`
	OrderID       int64     `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	CustomerEmail string    `json:"customer_email"`
	Status        string    `json:"status"`
	TotalAmount   string    `json:"total_amount"`
	ItemCount     int       `json:"item_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// OrderStatusChangedEvent is published on order.status_changed.
type OrderStatusChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderDeletedEvent is published on order.deleted.
type OrderDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	OrderID    int64     `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
