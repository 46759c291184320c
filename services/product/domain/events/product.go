package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the product repository. Quantity changes
// are published as product.updated.
const (
	TopicProductCreated = "product.created"
	TopicProductUpdated = "product.updated"
	TopicProductDeleted = "product.deleted"
)

// EventVersion is the current schema version of every product event.
const EventVersion = 1

// ProductChangedEvent is published on product.created and product.updated.
type ProductChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ProductID  int64     `json:"product_id"`
	SKU        string    `json:"sku"`
	Price      string    `json:"price"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProductDeletedEvent is published on product.deleted.
type ProductDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ProductID  int64     `json:"product_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
